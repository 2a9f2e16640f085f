package payment

import (
	"context"
	"strconv"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/refund"
)

// StripeProcessor settles bookings through Stripe PaymentIntents. The intent
// ID becomes the booking's transaction reference, which is all a later refund
// needs.
type StripeProcessor struct {
	currency stripe.Currency
}

func NewStripeProcessor(apiKey string, currency stripe.Currency) *StripeProcessor {
	stripe.Key = apiKey

	return &StripeProcessor{
		currency: currency,
	}
}

func (s *StripeProcessor) Charge(ctx context.Context, booking *domain.Booking, user *domain.User) (string, error) {
	amountCents := booking.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(string(s.currency)),
		ReceiptEmail:  stripe.String(user.Email),
		PaymentMethod: stripe.String(booking.PaymentMethod),
		Confirm:       stripe.Bool(true),
		Metadata: map[string]string{
			"user_id": strconv.Itoa(user.ID),
			"show_id": strconv.Itoa(booking.ShowID),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}

	return intent.ID, nil
}

func (s *StripeProcessor) Refund(ctx context.Context, booking *domain.Booking) error {
	params := &stripe.RefundParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentIntent: stripe.String(booking.TransactionID),
	}

	_, err := refund.New(params)

	return err
}
