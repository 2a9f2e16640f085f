package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CancellationCutoff is the boundary before showtime after which a booking can
// no longer be cancelled.
const CancellationCutoff = 2 * time.Hour

type SeatSelection struct {
	SeatNumber string
	Category   string
}

type BookingSeat struct {
	SeatNumber string
	Category   string
	Price      decimal.Decimal
}

type Booking struct {
	ID            int
	UserID        int
	ShowID        int
	Seats         []BookingSeat
	TotalAmount   decimal.Decimal
	PaymentMethod string
	PaymentStatus PaymentStatus
	Status        BookingStatus
	TransactionID string
	CreatedAt     time.Time
}

// NewBooking prices the selected seats against the show's price table and
// snapshots them into a confirmed booking. Prices are frozen here; later
// changes to the show's table do not affect existing bookings.
func NewBooking(userID int, show *Show, selections []SeatSelection, paymentMethod string) *Booking {
	seats := make([]BookingSeat, 0, len(selections))
	total := decimal.Zero

	for _, sel := range selections {
		price := show.PriceFor(sel.Category)
		seats = append(seats, BookingSeat{
			SeatNumber: sel.SeatNumber,
			Category:   sel.Category,
			Price:      price,
		})
		total = total.Add(price)
	}

	return &Booking{
		UserID:        userID,
		ShowID:        show.ID,
		Seats:         seats,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		PaymentStatus: PaymentStatusPending,
		Status:        BookingStatusConfirmed,
	}
}

// SeatNumbers returns the booking's seat numbers in order.
func (b *Booking) SeatNumbers() []string {
	numbers := make([]string, len(b.Seats))
	for i, seat := range b.Seats {
		numbers[i] = seat.SeatNumber
	}

	return numbers
}

// Cancellable reports whether the booking can still be cancelled at the given
// instant. A booking can be cancelled exactly once, and only while more than
// CancellationCutoff remains before the show starts.
func (b *Booking) Cancellable(show *Show, now time.Time) error {
	if b.Status != BookingStatusConfirmed {
		return ErrBookingAlreadyCancelled
	}

	startsAt, err := show.StartsAt()
	if err != nil {
		return err
	}

	if startsAt.Sub(now) < CancellationCutoff {
		return ErrCancellationWindow
	}

	return nil
}

// BookingDetails is a Booking joined with the show, movie and theater fields
// the booking views display.
type BookingDetails struct {
	Booking
	ShowDate       time.Time
	ShowStartTime  string
	ShowEndTime    string
	ScreenNumber   int
	MovieTitle     string
	MoviePosterUrl string
	TheaterName    string
	TheaterCity    string
}

type BookingRepository interface {
	// Create persists the booking and appends its seats to the show's booked
	// set in a single transaction. It returns a *SeatConflictError when any
	// requested seat is already taken, and ErrRecordNotFound when the show
	// does not exist.
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*BookingDetails, error)
	GetAllByUser(ctx context.Context, userID int) ([]*BookingDetails, error)
	GetAll(ctx context.Context, status BookingStatus, pagination Pagination) ([]*BookingDetails, *Metadata, error)
	// Cancel flips the booking to cancelled/refunded and releases its seats,
	// conditioned on the booking still being confirmed. ErrEditConflict is
	// returned when a concurrent cancellation won.
	Cancel(ctx context.Context, bookingID int) error
}
