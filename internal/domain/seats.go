package domain

import "strconv"

// DefaultSeatCount is the fallback venue size when a show carries no explicit
// seat count. It matches the 20-seat grid the web client renders.
const DefaultSeatCount = 20

type SeatAvailability struct {
	SeatNumber string
	Available  bool
}

// AvailableSeats derives the availability view for a show: one entry per seat
// number from "1" to totalSeats, available unless present in booked. The
// function is pure; it never fails.
func AvailableSeats(booked []BookedSeat, totalSeats int) []SeatAvailability {
	if totalSeats <= 0 {
		totalSeats = DefaultSeatCount
	}

	taken := make(map[string]bool, len(booked))
	for _, seat := range booked {
		taken[seat.SeatNumber] = true
	}

	seats := make([]SeatAvailability, 0, totalSeats)
	for i := 1; i <= totalSeats; i++ {
		number := strconv.Itoa(i)
		seats = append(seats, SeatAvailability{
			SeatNumber: number,
			Available:  !taken[number],
		})
	}

	return seats
}

// UnavailableSeats returns the requested seat numbers that are already booked,
// in request order. A non-empty result rejects the whole request.
func UnavailableSeats(requested []string, booked []BookedSeat) []string {
	taken := make(map[string]bool, len(booked))
	for _, seat := range booked {
		taken[seat.SeatNumber] = true
	}

	var unavailable []string
	for _, number := range requested {
		if taken[number] {
			unavailable = append(unavailable, number)
		}
	}

	return unavailable
}
