package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	if show.TotalSeats <= 0 {
		show.TotalSeats = domain.DefaultSeatCount
	}

	query := `
		INSERT INTO shows (movie_id, theater_id, screen_number, show_date, start_time, end_time, prices, total_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_active, created_at, updated_at
	`

	return p.db.QueryRow(ctx, query,
		show.MovieID,
		show.TheaterID,
		show.ScreenNumber,
		show.Date,
		show.StartTime,
		show.EndTime,
		show.Prices,
		show.TotalSeats,
	).Scan(&show.ID, &show.IsActive, &show.CreatedAt, &show.UpdatedAt)
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT id, movie_id, theater_id, screen_number, show_date, start_time, end_time,
			prices, total_seats, is_active, created_at, updated_at
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.ScreenNumber,
		&show.Date,
		&show.StartTime,
		&show.EndTime,
		&show.Prices,
		&show.TotalSeats,
		&show.IsActive,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.BookedSeats, err = p.getBookedSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) GetDetailsById(ctx context.Context, id int) (*domain.ShowDetails, error) {
	query := `
		SELECT 0, s.id, s.movie_id, s.theater_id, s.screen_number, s.show_date,
			s.start_time, s.end_time, s.prices, s.total_seats, s.is_active,
			m.title, m.poster_url, m.duration, m.rating,
			t.name, t.address, t.city, t.state
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.id = $1
	`

	var details domain.ShowDetails
	discard := 0

	err := scanShowDetails(p.db.QueryRow(ctx, query, id), &details, &discard)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	details.BookedSeats, err = p.getBookedSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (p *PostgresShowRepository) GetAll(ctx context.Context, filters domain.ShowFilters) ([]*domain.ShowDetails, *domain.Metadata, error) {
	query := `
		SELECT count(*) OVER(), s.id, s.movie_id, s.theater_id, s.screen_number, s.show_date,
			s.start_time, s.end_time, s.prices, s.total_seats, s.is_active,
			m.title, m.poster_url, m.duration, m.rating,
			t.name, t.address, t.city, t.state
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.is_active = true
			AND ($1::date IS NULL OR s.show_date = $1)
			AND ($2 = 0 OR s.theater_id = $2)
		ORDER BY s.show_date ASC, s.start_time ASC, s.id ASC
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx, query,
		filters.Date,
		filters.TheaterID,
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	shows := []*domain.ShowDetails{}

	for rows.Next() {
		var details domain.ShowDetails

		err := scanShowDetails(rows, &details, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		shows = append(shows, &details)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return shows, metadata, nil
}

func (p *PostgresShowRepository) GetAllByMovie(ctx context.Context, movieID int, date *time.Time) ([]*domain.ShowDetails, error) {
	query := `
		SELECT 0, s.id, s.movie_id, s.theater_id, s.screen_number, s.show_date,
			s.start_time, s.end_time, s.prices, s.total_seats, s.is_active,
			m.title, m.poster_url, m.duration, m.rating,
			t.name, t.address, t.city, t.state
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.is_active = true
			AND s.movie_id = $1
			AND ($2::date IS NULL OR s.show_date = $2)
		ORDER BY s.show_date ASC, s.start_time ASC, s.id ASC
	`

	rows, err := p.db.Query(ctx, query, movieID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []*domain.ShowDetails{}
	discard := 0

	for rows.Next() {
		var details domain.ShowDetails

		err := scanShowDetails(rows, &details, &discard)
		if err != nil {
			return nil, err
		}

		shows = append(shows, &details)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) getBookedSeats(ctx context.Context, showID int) ([]domain.BookedSeat, error) {
	query := `
		SELECT seat_number, category
		FROM show_seats
		WHERE show_id = $1
		ORDER BY seat_number
	`

	rows, err := p.db.Query(ctx, query, showID)
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

func scanShowDetails(row pgx.Row, details *domain.ShowDetails, totalRecords *int) error {
	return row.Scan(
		totalRecords,
		&details.ID,
		&details.MovieID,
		&details.TheaterID,
		&details.ScreenNumber,
		&details.Date,
		&details.StartTime,
		&details.EndTime,
		&details.Prices,
		&details.TotalSeats,
		&details.IsActive,
		&details.MovieTitle,
		&details.MoviePosterUrl,
		&details.MovieDuration,
		&details.MovieRating,
		&details.TheaterName,
		&details.TheaterAddress,
		&details.TheaterCity,
		&details.TheaterState,
	)
}
