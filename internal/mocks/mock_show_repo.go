package mocks

import (
	"context"
	"time"

	"github.com/anshika-1705/movieapp/internal/domain"
)

type MockShowRepo struct {
	domain.ShowRepository
	CreateFunc         func(ctx context.Context, show *domain.Show) error
	GetByIdFunc        func(ctx context.Context, id int) (*domain.Show, error)
	GetDetailsByIdFunc func(ctx context.Context, id int) (*domain.ShowDetails, error)
	GetAllFunc         func(ctx context.Context, filters domain.ShowFilters) ([]*domain.ShowDetails, *domain.Metadata, error)
	GetAllByMovieFunc  func(ctx context.Context, movieID int, date *time.Time) ([]*domain.ShowDetails, error)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetDetailsById(ctx context.Context, id int) (*domain.ShowDetails, error) {
	return m.GetDetailsByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetAll(ctx context.Context, filters domain.ShowFilters) ([]*domain.ShowDetails, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowRepo) GetAllByMovie(ctx context.Context, movieID int, date *time.Time) ([]*domain.ShowDetails, error) {
	return m.GetAllByMovieFunc(ctx, movieID, date)
}
