package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fishtrade/internal/domain"
)

// VarietyRepository implements usecase.VarietyRepository.
type VarietyRepository struct {
	pool *pgxpool.Pool
}

// NewVarietyRepository creates a new VarietyRepository.
func NewVarietyRepository(pool *pgxpool.Pool) *VarietyRepository {
	return &VarietyRepository{pool: pool}
}

// Create inserts a registry entry.
func (r *VarietyRepository) Create(ctx context.Context, variety domain.FishVariety) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO fish_varieties (code, name) VALUES ($1, $2)`,
		variety.Code, variety.Name,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateVariety
		}
		return fmt.Errorf("insert variety: %w", err)
	}
	return nil
}

// List returns the registry ordered by name.
func (r *VarietyRepository) List(ctx context.Context) ([]domain.FishVariety, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, name FROM fish_varieties ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query varieties: %w", err)
	}
	defer rows.Close()

	var varieties []domain.FishVariety
	for rows.Next() {
		var variety domain.FishVariety
		if err := rows.Scan(&variety.Code, &variety.Name); err != nil {
			return nil, fmt.Errorf("scan variety: %w", err)
		}
		varieties = append(varieties, variety)
	}

	return varieties, rows.Err()
}
