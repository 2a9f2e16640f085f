package mocks

import (
	"context"

	"github.com/anshika-1705/movieapp/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	GetByIdFunc func(ctx context.Context, id int) (*domain.Theater, error)
	CreateFunc  func(ctx context.Context, theater *domain.Theater) error
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	return m.CreateFunc(ctx, theater)
}
