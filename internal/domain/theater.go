package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Theater struct {
	ID         int
	Name       string
	Address    string
	City       string
	State      string
	Pincode    string
	Screens    []Screen
	Facilities []string
	IsActive   bool
}

type Screen struct {
	ScreenNumber int         `json:"screenNumber"`
	ScreenName   string      `json:"screenName"`
	TotalSeats   int         `json:"totalSeats"`
	SeatLayout   []SeatBlock `json:"seatLayout,omitempty"`
}

// SeatBlock maps a pricing category to the physical rows it covers.
type SeatBlock struct {
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Rows     []string        `json:"rows"`
}

type TheaterRepository interface {
	GetById(ctx context.Context, id int) (*Theater, error)
	Create(ctx context.Context, theater *Theater) error
}
