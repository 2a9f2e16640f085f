package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/app"
	"github.com/anshika-1705/movieapp/internal/mailer"
	"github.com/anshika-1705/movieapp/internal/payment"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/stretchr/testify/suite"
)

type BookingFlowSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *pgxpool.Pool
	mailer    *mailer.MockMailer
	handler   http.Handler
}

func TestBookingFlowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(BookingFlowSuite))
}

func (s *BookingFlowSuite) SetupSuite() {
	ctx := context.Background()

	container, connStr, err := startDatabase(ctx)
	s.Require().NoError(err)
	s.container = container

	poolConfig, err := pgxpool.ParseConfig(connStr)
	s.Require().NoError(err)

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	s.db, err = pgxpool.NewWithConfig(ctx, poolConfig)
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.mailer = mailer.NewMockMailer()

	cfg := app.Config{Port: 3000, Env: "test"}
	cfg.JWT.Secret = "integration-secret"
	cfg.JWT.TTL = time.Hour

	application, err := app.New(cfg, logger, s.db, nil, s.mailer, payment.NewRecordingProcessor(logger))
	s.Require().NoError(err)

	s.handler = application.Routes()
}

func (s *BookingFlowSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		if err := testcontainers.TerminateContainer(s.container); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}
}

type flowEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Total   *int            `json:"total"`
	Token   string          `json:"token"`
	User    *api.User       `json:"user"`
	Data    json.RawMessage `json:"data"`
}

func (s *BookingFlowSuite) do(method, url, token string, body any) (int, flowEnvelope) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var resp flowEnvelope
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	}

	return rec.Code, resp
}

// seedShow inserts a movie, theater and show starting comfortably outside the
// cancellation window, and returns the show id.
func (s *BookingFlowSuite) seedShow() int {
	ctx := context.Background()

	var movieID, theaterID, showID int

	err := s.db.QueryRow(ctx, `
		INSERT INTO movies (title, description, genres, duration, language, rating, release_date,
			poster_url, image_url, cast_members, director, show_timings)
		VALUES ('Interstellar', 'A space epic', '{"Sci-Fi"}', 169, 'English', 'UA', now(),
			'https://example.com/poster.jpg', 'https://example.com/image.jpg', '[]', 'C. Nolan', '[]')
		RETURNING id
	`).Scan(&movieID)
	s.Require().NoError(err)

	err = s.db.QueryRow(ctx, `
		INSERT INTO theaters (name, address, city, state, pincode, screens, facilities)
		VALUES ('Galaxy Cinemas', '1 Main St', 'Pune', 'MH', '411001', '[]', '[]')
		RETURNING id
	`).Scan(&theaterID)
	s.Require().NoError(err)

	showDate := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	err = s.db.QueryRow(ctx, `
		INSERT INTO shows (movie_id, theater_id, screen_number, show_date, start_time, end_time, prices, total_seats)
		VALUES ($1, $2, 1, $3, '8:30 PM', '11:00 PM', '{"premium": 300, "standard": 150}', 20)
		RETURNING id
	`, movieID, theaterID, showDate).Scan(&showID)
	s.Require().NoError(err)

	return showID
}

func (s *BookingFlowSuite) registerUser(email string) string {
	status, resp := s.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
		Name:     "Anshika",
		Email:    email,
		Password: "pa55word",
		Phone:    "9876543210",
	})

	s.Require().Equal(http.StatusCreated, status)
	s.Require().NotEmpty(resp.Token)

	return resp.Token
}

func (s *BookingFlowSuite) availableSeatCount(showID int, token string) (int, map[string]bool) {
	status, resp := s.do(http.MethodGet, fmt.Sprintf("/api/shows/%d/seats", showID), token, nil)
	s.Require().Equal(http.StatusOK, status)

	var seatMap api.SeatMap
	s.Require().NoError(json.Unmarshal(resp.Data, &seatMap))

	available := 0
	unavailable := map[string]bool{}
	for _, seat := range seatMap.Seats {
		if seat.IsAvailable {
			available++
		} else {
			unavailable[seat.SeatNumber] = true
		}
	}

	return available, unavailable
}

func (s *BookingFlowSuite) TestBookingLifecycle() {
	showID := s.seedShow()
	token := s.registerUser("lifecycle@example.com")

	available, _ := s.availableSeatCount(showID, token)
	s.Equal(20, available)

	// Book two premium seats; category prices must sum up.
	status, resp := s.do(http.MethodPost, "/api/bookings", token, api.CreateBookingRequest{
		ShowID: showID,
		Seats: []api.SeatSelection{
			{SeatNumber: "5", Category: "premium"},
			{SeatNumber: "6", Category: "premium"},
		},
		PaymentMethod: "card",
	})
	s.Require().Equal(http.StatusCreated, status)

	var booking api.Booking
	s.Require().NoError(json.Unmarshal(resp.Data, &booking))
	s.Equal("600", booking.TotalAmount.String())
	s.Equal("confirmed", booking.BookingStatus)
	s.Equal("completed", booking.PaymentStatus)
	s.NotEmpty(booking.TransactionID)

	// A second booking for an overlapping seat is rejected whole.
	status, resp = s.do(http.MethodPost, "/api/bookings", token, api.CreateBookingRequest{
		ShowID:        showID,
		Seats:         []api.SeatSelection{{SeatNumber: "5", Category: "standard"}},
		PaymentMethod: "card",
	})
	s.Equal(http.StatusConflict, status)
	s.Equal("Seats 5 are already booked", resp.Message)

	available, unavailable := s.availableSeatCount(showID, token)
	s.Equal(18, available)
	s.True(unavailable["5"])
	s.True(unavailable["6"])

	status, resp = s.do(http.MethodGet, "/api/bookings/my-bookings", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotNil(resp.Count)
	s.Equal(1, *resp.Count)

	// Cancellation releases the seats and refunds the payment.
	status, resp = s.do(http.MethodPut, fmt.Sprintf("/api/bookings/%d/cancel", booking.ID), token, nil)
	s.Require().Equal(http.StatusOK, status)

	s.Require().NoError(json.Unmarshal(resp.Data, &booking))
	s.Equal("cancelled", booking.BookingStatus)
	s.Equal("refunded", booking.PaymentStatus)

	available, _ = s.availableSeatCount(showID, token)
	s.Equal(20, available)

	// Cancelling twice is a conflict.
	status, _ = s.do(http.MethodPut, fmt.Sprintf("/api/bookings/%d/cancel", booking.ID), token, nil)
	s.Equal(http.StatusConflict, status)
}

func (s *BookingFlowSuite) TestBookingSeatOrderPreserved() {
	showID := s.seedShow()
	token := s.registerUser("seatorder@example.com")

	status, resp := s.do(http.MethodPost, "/api/bookings", token, api.CreateBookingRequest{
		ShowID: showID,
		Seats: []api.SeatSelection{
			{SeatNumber: "A10", Category: "standard"},
			{SeatNumber: "A2", Category: "standard"},
			{SeatNumber: "A1", Category: "premium"},
		},
		PaymentMethod: "card",
	})
	s.Require().Equal(http.StatusCreated, status)

	var booking api.Booking
	s.Require().NoError(json.Unmarshal(resp.Data, &booking))

	got := make([]string, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		got = append(got, seat.SeatNumber)
	}

	// Request order, not lexicographic ("A10" sorts before "A2").
	s.Equal([]string{"A10", "A2", "A1"}, got)
}

func (s *BookingFlowSuite) TestBookingAuthorization() {
	showID := s.seedShow()
	ownerToken := s.registerUser("owner@example.com")
	otherToken := s.registerUser("other@example.com")

	status, resp := s.do(http.MethodPost, "/api/bookings", ownerToken, api.CreateBookingRequest{
		ShowID:        showID,
		Seats:         []api.SeatSelection{{SeatNumber: "1", Category: "standard"}},
		PaymentMethod: "card",
	})
	s.Require().Equal(http.StatusCreated, status)

	var booking api.Booking
	s.Require().NoError(json.Unmarshal(resp.Data, &booking))

	// Unauthenticated requests are rejected outright.
	status, _ = s.do(http.MethodGet, fmt.Sprintf("/api/bookings/%d", booking.ID), "", nil)
	s.Equal(http.StatusUnauthorized, status)

	// Another user cannot read someone else's booking.
	status, _ = s.do(http.MethodGet, fmt.Sprintf("/api/bookings/%d", booking.ID), otherToken, nil)
	s.Equal(http.StatusForbidden, status)

	// Nor cancel it.
	status, _ = s.do(http.MethodPut, fmt.Sprintf("/api/bookings/%d/cancel", booking.ID), otherToken, nil)
	s.Equal(http.StatusForbidden, status)

	// The admin list endpoint needs the admin role.
	status, _ = s.do(http.MethodGet, "/api/bookings", otherToken, nil)
	s.Equal(http.StatusForbidden, status)

	// Promote the other user and log in again for an admin token.
	_, err := s.db.Exec(context.Background(), `UPDATE users SET role = 'admin' WHERE email = 'other@example.com'`)
	s.Require().NoError(err)

	status, resp = s.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		Email:    "other@example.com",
		Password: "pa55word",
	})
	s.Require().Equal(http.StatusOK, status)
	adminToken := resp.Token

	// Admins can read any booking and the full list.
	status, _ = s.do(http.MethodGet, fmt.Sprintf("/api/bookings/%d", booking.ID), adminToken, nil)
	s.Equal(http.StatusOK, status)

	status, resp = s.do(http.MethodGet, "/api/bookings?status=confirmed", adminToken, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotNil(resp.Total)
	s.GreaterOrEqual(*resp.Total, 1)

	// But cancellation stays owner-only.
	status, _ = s.do(http.MethodPut, fmt.Sprintf("/api/bookings/%d/cancel", booking.ID), adminToken, nil)
	s.Equal(http.StatusForbidden, status)
}
