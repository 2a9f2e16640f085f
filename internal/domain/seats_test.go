package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSeats(t *testing.T) {
	tests := []struct {
		name            string
		booked          []BookedSeat
		totalSeats      int
		wantTotal       int
		wantAvailable   int
		wantUnavailable []string
	}{
		{
			name:          "empty show",
			totalSeats:    20,
			wantTotal:     20,
			wantAvailable: 20,
		},
		{
			name:            "one booked seat in a 20 seat venue",
			booked:          []BookedSeat{{SeatNumber: "7", Category: "gold"}},
			totalSeats:      20,
			wantTotal:       20,
			wantAvailable:   19,
			wantUnavailable: []string{"7"},
		},
		{
			name: "category does not affect availability",
			booked: []BookedSeat{
				{SeatNumber: "1", Category: "premium"},
				{SeatNumber: "2", Category: "silver"},
			},
			totalSeats:      5,
			wantTotal:       5,
			wantAvailable:   3,
			wantUnavailable: []string{"1", "2"},
		},
		{
			name:          "zero total falls back to the default venue size",
			totalSeats:    0,
			wantTotal:     DefaultSeatCount,
			wantAvailable: DefaultSeatCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seats := AvailableSeats(tt.booked, tt.totalSeats)

			assert.Len(t, seats, tt.wantTotal)

			available := 0
			unavailable := []string{}
			for _, seat := range seats {
				if seat.Available {
					available++
				} else {
					unavailable = append(unavailable, seat.SeatNumber)
				}
			}

			assert.Equal(t, tt.wantAvailable, available)

			for _, number := range tt.wantUnavailable {
				assert.Contains(t, unavailable, number)
			}
		})
	}
}

func TestUnavailableSeats(t *testing.T) {
	booked := []BookedSeat{
		{SeatNumber: "A1", Category: "premium"},
		{SeatNumber: "B3", Category: "gold"},
	}

	tests := []struct {
		name      string
		requested []string
		want      []string
	}{
		{
			name:      "no collisions",
			requested: []string{"A2", "B4"},
			want:      nil,
		},
		{
			name:      "single collision",
			requested: []string{"A1", "A2"},
			want:      []string{"A1"},
		},
		{
			name:      "collisions preserve request order",
			requested: []string{"B3", "A1"},
			want:      []string{"B3", "A1"},
		},
		{
			name:      "empty request",
			requested: nil,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnavailableSeats(tt.requested, booked))
		})
	}
}
