package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

const movieColumns = `
	id, title, description, genres, duration, language, rating, release_date,
	poster_url, image_url, COALESCE(trailer_url, ''), cast_members, director,
	show_timings, COALESCE(info, ''), is_active, created_at, updated_at
`

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := `
		SELECT count(*) OVER(),` + movieColumns + `
		FROM movies
		WHERE is_active = true
			AND (title ILIKE '%' || $1 || '%' OR $1 = '')
			AND ($2 = ANY(genres) OR $2 = '')
			AND (language = $3 OR $3 = '')
		ORDER BY created_at DESC, id DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := p.db.Query(ctx, query,
		filters.Term,
		filters.Genre,
		filters.Language,
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := scanMovie(rows, &movie, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetNowShowing(ctx context.Context, now time.Time) ([]*domain.Movie, error) {
	query := `
		SELECT 0,` + movieColumns + `
		FROM movies
		WHERE is_active = true AND release_date <= $1
		ORDER BY release_date DESC
	`

	return p.getMany(ctx, query, now)
}

func (p *PostgresMovieRepository) GetUpcoming(ctx context.Context, now time.Time) ([]*domain.Movie, error) {
	query := `
		SELECT 0,` + movieColumns + `
		FROM movies
		WHERE is_active = true AND release_date > $1
		ORDER BY release_date ASC
	`

	return p.getMany(ctx, query, now)
}

func (p *PostgresMovieRepository) getMany(ctx context.Context, query string, args ...any) ([]*domain.Movie, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}
	discard := 0

	for rows.Next() {
		var movie domain.Movie

		err := scanMovie(rows, &movie, &discard)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT 0,` + movieColumns + `
		FROM movies
		WHERE id = $1 AND is_active = true
	`

	var movie domain.Movie
	discard := 0

	err := scanMovie(p.db.QueryRow(ctx, query, id), &movie, &discard)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (
			title, description, genres, duration, language, rating, release_date,
			poster_url, image_url, trailer_url, cast_members, director, show_timings, info
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13, NULLIF($14, ''))
		RETURNING id, is_active, created_at, updated_at
	`

	return p.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Duration,
		movie.Language,
		movie.Rating,
		movie.ReleaseDate,
		movie.PosterUrl,
		movie.ImageUrl,
		movie.TrailerUrl,
		movie.CastMembers,
		movie.Director,
		movie.ShowTimings,
		movie.Info,
	).Scan(&movie.ID, &movie.IsActive, &movie.CreatedAt, &movie.UpdatedAt)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, description = $2, genres = $3, duration = $4, language = $5,
			rating = $6, release_date = $7, poster_url = $8, image_url = $9,
			trailer_url = NULLIF($10, ''), cast_members = $11, director = $12,
			show_timings = $13, info = NULLIF($14, ''), updated_at = now()
		WHERE id = $15 AND is_active = true
		RETURNING updated_at
	`

	err := p.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Duration,
		movie.Language,
		movie.Rating,
		movie.ReleaseDate,
		movie.PosterUrl,
		movie.ImageUrl,
		movie.TrailerUrl,
		movie.CastMembers,
		movie.Director,
		movie.ShowTimings,
		movie.Info,
		movie.ID,
	).Scan(&movie.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

// Delete soft-deletes: shows and bookings keep referencing the row.
func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE movies
		SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true
	`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanMovie(row pgx.Row, movie *domain.Movie, totalRecords *int) error {
	return row.Scan(
		totalRecords,
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genres,
		&movie.Duration,
		&movie.Language,
		&movie.Rating,
		&movie.ReleaseDate,
		&movie.PosterUrl,
		&movie.ImageUrl,
		&movie.TrailerUrl,
		&movie.CastMembers,
		&movie.Director,
		&movie.ShowTimings,
		&movie.Info,
		&movie.IsActive,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}
