package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserAlreadyExists       = errors.New("user already exists with this email")
	ErrRecordNotFound          = errors.New("record not found")
	ErrEditConflict            = errors.New("edit conflict")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCancellationWindow      = errors.New("cannot cancel booking within 2 hours of show time")
)

// SeatConflictError reports the subset of requested seats that are already
// booked for a show. The whole request is rejected; no partial bookings are
// created.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("Seats %s are already booked", strings.Join(e.Seats, ", "))
}
