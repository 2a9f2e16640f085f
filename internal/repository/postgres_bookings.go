package repository

import (
	"context"
	"errors"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create runs the seat-reservation protocol. The show row is locked for the
// duration of the transaction, so the collision check and the seat append
// cannot interleave with a concurrent booking for the same show. The UNIQUE
// constraint on show_seats is the backstop.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var showID int

		query := `SELECT id FROM shows WHERE id = $1 AND is_active = true FOR UPDATE`

		err := tx.QueryRow(ctx, query, booking.ShowID).Scan(&showID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		booked, err := bookedSeatsForUpdate(ctx, tx, booking.ShowID)
		if err != nil {
			return err
		}

		if unavailable := domain.UnavailableSeats(booking.SeatNumbers(), booked); len(unavailable) > 0 {
			return &domain.SeatConflictError{Seats: unavailable}
		}

		query = `
			INSERT INTO bookings (user_id, show_id, total_amount, payment_method, payment_status, status, transaction_id)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query,
			booking.UserID,
			booking.ShowID,
			booking.TotalAmount,
			booking.PaymentMethod,
			booking.PaymentStatus,
			booking.Status,
			booking.TransactionID,
		).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		seatRows := make([][]any, 0, len(booking.Seats))
		for _, seat := range booking.Seats {
			seatRows = append(seatRows, []any{
				booking.ID,
				seat.SeatNumber,
				seat.Category,
				seat.Price,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "seat_number", "category", "price"},
			pgx.CopyFromRows(seatRows),
		)
		if err != nil {
			return err
		}

		showSeatRows := make([][]any, 0, len(booking.Seats))
		for _, seat := range booking.Seats {
			showSeatRows = append(showSeatRows, []any{
				booking.ShowID,
				seat.SeatNumber,
				seat.Category,
				booking.ID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"show_seats"},
			[]string{"show_id", "seat_number", "category", "booking_id"},
			pgx.CopyFromRows(showSeatRows),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return &domain.SeatConflictError{Seats: booking.SeatNumbers()}
			}

			return err
		}

		return nil
	})
}

func bookedSeatsForUpdate(ctx context.Context, tx pgx.Tx, showID int) ([]domain.BookedSeat, error) {
	query := `SELECT seat_number, category FROM show_seats WHERE show_id = $1`

	rows, err := tx.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []domain.BookedSeat{}

	for rows.Next() {
		var seat domain.BookedSeat

		err := rows.Scan(&seat.SeatNumber, &seat.Category)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

const bookingDetailsColumns = `
	b.id, b.user_id, b.show_id, b.total_amount, b.payment_method, b.payment_status,
	b.status, COALESCE(b.transaction_id, ''), b.created_at,
	s.show_date, s.start_time, s.end_time, s.screen_number,
	m.title, m.poster_url, t.name, t.city
`

const bookingDetailsJoins = `
	FROM bookings b
	JOIN shows s ON b.show_id = s.id
	JOIN movies m ON s.movie_id = m.id
	JOIN theaters t ON s.theater_id = t.id
`

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.BookingDetails, error) {
	query := `SELECT 0,` + bookingDetailsColumns + bookingDetailsJoins + `WHERE b.id = $1`

	var details domain.BookingDetails
	discard := 0

	err := scanBookingDetails(p.db.QueryRow(ctx, query, id), &details, &discard)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	details.Seats, err = p.getBookingSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (p *PostgresBookingRepository) GetAllByUser(ctx context.Context, userID int) ([]*domain.BookingDetails, error) {
	query := `SELECT 0,` + bookingDetailsColumns + bookingDetailsJoins + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings, err := p.collectBookings(ctx, rows, nil)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	status domain.BookingStatus,
	pagination domain.Pagination) ([]*domain.BookingDetails, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(),` + bookingDetailsColumns + bookingDetailsJoins + `
		WHERE ($1 = '' OR b.status = $1)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, string(status), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0

	bookings, err := p.collectBookings(ctx, rows, &totalRecords)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

// Cancel is conditioned on the booking still being confirmed, so concurrent
// cancellations of the same booking resolve deterministically: exactly one
// wins, the rest see ErrEditConflict.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE bookings
			SET status = $1, payment_status = $2
			WHERE id = $3 AND status = $4
		`

		tag, err := tx.Exec(ctx, query,
			domain.BookingStatusCancelled,
			domain.PaymentStatusRefunded,
			bookingID,
			domain.BookingStatusConfirmed,
		)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrEditConflict
		}

		_, err = tx.Exec(ctx, `DELETE FROM show_seats WHERE booking_id = $1`, bookingID)

		return err
	})
}

func (p *PostgresBookingRepository) collectBookings(
	ctx context.Context,
	rows pgx.Rows,
	totalRecords *int) ([]*domain.BookingDetails, error) {

	discard := 0
	if totalRecords == nil {
		totalRecords = &discard
	}

	bookings := []*domain.BookingDetails{}

	for rows.Next() {
		var details domain.BookingDetails

		err := scanBookingDetails(rows, &details, totalRecords)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, booking := range bookings {
		seats, err := p.getBookingSeats(ctx, booking.ID)
		if err != nil {
			return nil, err
		}

		booking.Seats = seats
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) getBookingSeats(ctx context.Context, bookingID int) ([]domain.BookingSeat, error) {
	// Seats come back in the order they were requested; id is the insertion
	// key. Sorting by seat_number would shuffle mixed labels ("A10" < "A2").
	query := `
		SELECT seat_number, category, price
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []domain.BookingSeat{}

	for rows.Next() {
		var seat domain.BookingSeat

		err := rows.Scan(&seat.SeatNumber, &seat.Category, &seat.Price)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func scanBookingDetails(row pgx.Row, details *domain.BookingDetails, totalRecords *int) error {
	return row.Scan(
		totalRecords,
		&details.ID,
		&details.UserID,
		&details.ShowID,
		&details.TotalAmount,
		&details.PaymentMethod,
		&details.PaymentStatus,
		&details.Status,
		&details.TransactionID,
		&details.CreatedAt,
		&details.ShowDate,
		&details.ShowStartTime,
		&details.ShowEndTime,
		&details.ScreenNumber,
		&details.MovieTitle,
		&details.MoviePosterUrl,
		&details.TheaterName,
		&details.TheaterCity,
	)
}
