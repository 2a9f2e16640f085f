package mocks

import (
	"context"

	"github.com/anshika-1705/movieapp/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc       func(ctx context.Context, booking *domain.Booking) error
	GetByIdFunc      func(ctx context.Context, id int) (*domain.BookingDetails, error)
	GetAllByUserFunc func(ctx context.Context, userID int) ([]*domain.BookingDetails, error)
	GetAllFunc       func(ctx context.Context, status domain.BookingStatus, pagination domain.Pagination) ([]*domain.BookingDetails, *domain.Metadata, error)
	CancelFunc       func(ctx context.Context, bookingID int) error
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.BookingDetails, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetAllByUser(ctx context.Context, userID int) ([]*domain.BookingDetails, error) {
	return m.GetAllByUserFunc(ctx, userID)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, status domain.BookingStatus, pagination domain.Pagination) ([]*domain.BookingDetails, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, status, pagination)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, bookingID int) error {
	return m.CancelFunc(ctx, bookingID)
}
