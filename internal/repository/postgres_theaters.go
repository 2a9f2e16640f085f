package repository

import (
	"context"
	"errors"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `
		SELECT id, name, address, city, state, pincode, screens, facilities, is_active
		FROM theaters
		WHERE id = $1 AND is_active = true
	`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Address,
		&theater.City,
		&theater.State,
		&theater.Pincode,
		&theater.Screens,
		&theater.Facilities,
		&theater.IsActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name, address, city, state, pincode, screens, facilities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active
	`

	return p.db.QueryRow(ctx, query,
		theater.Name,
		theater.Address,
		theater.City,
		theater.State,
		theater.Pincode,
		theater.Screens,
		theater.Facilities,
	).Scan(&theater.ID, &theater.IsActive)
}
