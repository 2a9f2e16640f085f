package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Start and end times are kept as display strings ("8:30 PM"), exactly as the
// client submits them. They are only parsed when the cancellation cutoff needs
// a real timestamp.
var startTimeLayouts = []string{"3:04 PM", "15:04"}

type BookedSeat struct {
	SeatNumber string `json:"seatNumber"`
	Category   string `json:"category"`
}

type Show struct {
	ID           int
	MovieID      int
	TheaterID    int
	ScreenNumber int
	Date         time.Time
	StartTime    string
	EndTime      string
	Prices       map[string]decimal.Decimal
	TotalSeats   int
	BookedSeats  []BookedSeat
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PriceFor looks up the price for a seat category, case-insensitively. An
// unknown category prices at zero rather than failing; the price table is the
// single source of truth and unlisted categories are simply free tiers.
func (s *Show) PriceFor(category string) decimal.Decimal {
	price, ok := s.Prices[strings.ToLower(category)]
	if !ok {
		return decimal.Zero
	}

	return price
}

// StartsAt combines the show's calendar date with its start-time string into a
// single local timestamp.
func (s *Show) StartsAt() (time.Time, error) {
	raw := strings.TrimSpace(s.StartTime)

	for _, layout := range startTimeLayouts {
		clock, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		return time.Date(
			s.Date.Year(), s.Date.Month(), s.Date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.Local,
		), nil
	}

	return time.Time{}, fmt.Errorf("unparseable show start time %q", s.StartTime)
}

// ShowDetails is a Show joined with the movie and theater fields the listing
// and seat views display.
type ShowDetails struct {
	Show
	MovieTitle     string
	MoviePosterUrl string
	MovieDuration  int
	MovieRating    string
	TheaterName    string
	TheaterAddress string
	TheaterCity    string
	TheaterState   string
}

type ShowFilters struct {
	Date      *time.Time
	TheaterID int
	Pagination
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetById(ctx context.Context, id int) (*Show, error)
	GetDetailsById(ctx context.Context, id int) (*ShowDetails, error)
	GetAll(ctx context.Context, filters ShowFilters) ([]*ShowDetails, *Metadata, error)
	GetAllByMovie(ctx context.Context, movieID int, date *time.Time) ([]*ShowDetails, error)
}
