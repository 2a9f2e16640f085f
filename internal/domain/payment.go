package domain

import "context"

// PaymentProcessor settles and reverses booking payments. The default
// implementation only records a transaction reference; a real gateway can be
// plugged in without touching the booking protocol.
type PaymentProcessor interface {
	Charge(ctx context.Context, booking *Booking, user *User) (transactionID string, err error)
	Refund(ctx context.Context, booking *Booking) error
}
