// Package api defines the wire types of the HTTP surface. Every response body
// uses the same envelope: {success, message?, data?, count?, total?}.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// --- auth ---

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// --- movies ---

type CastMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Movie struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Genres      []string     `json:"genre"`
	Duration    int          `json:"duration"`
	Language    string       `json:"language"`
	Rating      string       `json:"rating"`
	ReleaseDate time.Time    `json:"releaseDate"`
	Poster      string       `json:"poster"`
	Image       string       `json:"image"`
	Trailer     string       `json:"trailer,omitempty"`
	Cast        []CastMember `json:"cast,omitempty"`
	Director    string       `json:"director"`
	ShowTimings []string     `json:"showTimings,omitempty"`
	Info        string       `json:"info,omitempty"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type CreateMovieRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Genres      []string     `json:"genre" validate:"required,min=1"`
	Duration    int          `json:"duration" validate:"required,gt=0"`
	Language    string       `json:"language" validate:"required"`
	Rating      string       `json:"rating" validate:"required,oneof=U UA A S"`
	ReleaseDate time.Time    `json:"releaseDate" validate:"required"`
	Poster      string       `json:"poster" validate:"required,url"`
	Image       string       `json:"image" validate:"required,url"`
	Trailer     string       `json:"trailer" validate:"omitempty,url"`
	Cast        []CastMember `json:"cast"`
	Director    string       `json:"director" validate:"required"`
	ShowTimings []string     `json:"showTimings"`
	Info        string       `json:"info"`
}

// --- theaters ---

type TheaterSeatBlock struct {
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Rows     []string        `json:"rows"`
}

type TheaterScreen struct {
	ScreenNumber int                `json:"screenNumber" validate:"required,gt=0"`
	ScreenName   string             `json:"screenName"`
	TotalSeats   int                `json:"totalSeats" validate:"required,gt=0"`
	SeatLayout   []TheaterSeatBlock `json:"seatLayout,omitempty"`
}

type CreateTheaterRequest struct {
	Name       string          `json:"name" validate:"required"`
	Address    string          `json:"address" validate:"required"`
	City       string          `json:"city" validate:"required"`
	State      string          `json:"state" validate:"required"`
	Pincode    string          `json:"pincode" validate:"required"`
	Screens    []TheaterScreen `json:"screens" validate:"required,min=1,dive"`
	Facilities []string        `json:"facilities"`
}

type Theater struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Pincode    string          `json:"pincode"`
	Screens    []TheaterScreen `json:"screens"`
	Facilities []string        `json:"facilities"`
	IsActive   bool            `json:"isActive"`
}

// --- shows ---

type CreateShowRequest struct {
	MovieID      int                        `json:"movie" validate:"required,gt=0"`
	TheaterID    int                        `json:"theater" validate:"required,gt=0"`
	ScreenNumber int                        `json:"screenNumber" validate:"required,gt=0"`
	Date         time.Time                  `json:"date" validate:"required"`
	StartTime    string                     `json:"startTime" validate:"required"`
	EndTime      string                     `json:"endTime" validate:"required"`
	Price        map[string]decimal.Decimal `json:"price" validate:"required"`
	TotalSeats   int                        `json:"totalSeats" validate:"omitempty,gt=0"`
}

type ShowMovie struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Poster   string `json:"poster,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Rating   string `json:"rating,omitempty"`
}

type ShowTheater struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

type Show struct {
	ID           int                        `json:"id"`
	Movie        ShowMovie                  `json:"movie"`
	Theater      ShowTheater                `json:"theater"`
	ScreenNumber int                        `json:"screenNumber"`
	Date         time.Time                  `json:"date"`
	StartTime    string                     `json:"startTime"`
	EndTime      string                     `json:"endTime"`
	Price        map[string]decimal.Decimal `json:"price"`
	TotalSeats   int                        `json:"totalSeats"`
	IsActive     bool                       `json:"isActive"`
}

type Seat struct {
	SeatNumber  string `json:"seatNumber"`
	IsAvailable bool   `json:"isAvailable"`
}

type SeatMap struct {
	Show        Show     `json:"show"`
	Seats       []Seat   `json:"seats"`
	BookedSeats []string `json:"bookedSeats"`
}

// --- bookings ---

type SeatSelection struct {
	SeatNumber string `json:"seatNumber" validate:"required"`
	Category   string `json:"category" validate:"required"`
}

type CreateBookingRequest struct {
	ShowID        int             `json:"showId" validate:"required,gt=0"`
	Seats         []SeatSelection `json:"seats" validate:"required,min=1,dive"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
}

type BookingSeat struct {
	SeatNumber string          `json:"seatNumber"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
}

type BookingShow struct {
	ID           int       `json:"id"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime,omitempty"`
	ScreenNumber int       `json:"screenNumber,omitempty"`
	MovieTitle   string    `json:"movieTitle,omitempty"`
	MoviePoster  string    `json:"moviePoster,omitempty"`
	TheaterName  string    `json:"theaterName,omitempty"`
	TheaterCity  string    `json:"theaterCity,omitempty"`
}

type Booking struct {
	ID            int             `json:"id"`
	UserID        int             `json:"userId"`
	Show          BookingShow     `json:"show"`
	Seats         []BookingSeat   `json:"seats"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	BookingStatus string          `json:"bookingStatus"`
	TransactionID string          `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// --- health ---

type Health struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}
