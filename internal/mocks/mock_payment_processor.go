package mocks

import (
	"context"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentProcessor struct {
	mock.Mock
	domain.PaymentProcessor
}

func (m *MockPaymentProcessor) Charge(ctx context.Context, booking *domain.Booking, user *domain.User) (string, error) {
	args := m.Called(ctx, booking, user)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProcessor) Refund(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
