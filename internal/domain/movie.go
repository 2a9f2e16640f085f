package domain

import (
	"context"
	"time"
)

type CastMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Movie struct {
	ID          int
	Title       string
	Description string
	Genres      []string
	Duration    int
	Language    string
	Rating      string
	ReleaseDate time.Time
	PosterUrl   string
	ImageUrl    string
	TrailerUrl  string
	CastMembers []CastMember
	Director    string
	ShowTimings []string
	Info        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MovieFilters struct {
	Term     string
	Genre    string
	Language string
	Pagination
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetNowShowing(ctx context.Context, now time.Time) ([]*Movie, error)
	GetUpcoming(ctx context.Context, now time.Time) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
