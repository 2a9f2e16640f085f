package payment

import (
	"context"
	"log/slog"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/google/uuid"
)

// RecordingProcessor settles payments by recording a generated transaction
// reference. It stands in for a real gateway in development and in any
// deployment where payment collection happens out of band.
type RecordingProcessor struct {
	logger *slog.Logger
}

func NewRecordingProcessor(logger *slog.Logger) *RecordingProcessor {
	return &RecordingProcessor{
		logger: logger,
	}
}

func (r *RecordingProcessor) Charge(ctx context.Context, booking *domain.Booking, user *domain.User) (string, error) {
	transactionID := uuid.NewString()

	r.logger.InfoContext(ctx, "payment recorded",
		"transaction_id", transactionID,
		"user_id", user.ID,
		"show_id", booking.ShowID,
		"amount", booking.TotalAmount.String(),
		"method", booking.PaymentMethod,
	)

	return transactionID, nil
}

func (r *RecordingProcessor) Refund(ctx context.Context, booking *domain.Booking) error {
	r.logger.InfoContext(ctx, "refund recorded",
		"transaction_id", booking.TransactionID,
		"booking_id", booking.ID,
		"amount", booking.TotalAmount.String(),
	)

	return nil
}
