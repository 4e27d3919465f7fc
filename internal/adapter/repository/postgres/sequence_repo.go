package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

// SequenceRepository implements usecase.SequenceRepository on a
// sequence_counters table keyed by (entity_type, year).
type SequenceRepository struct {
	pool *pgxpool.Pool
}

// NewSequenceRepository creates a new SequenceRepository.
func NewSequenceRepository(pool *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{pool: pool}
}

// The upsert reads and bumps the counter in one statement, so two concurrent
// allocations serialize on the row and never observe the same value.
const incrementSQL = `
	INSERT INTO sequence_counters (entity_type, year, last_value)
	VALUES ($1, $2, 1)
	ON CONFLICT (entity_type, year)
	DO UPDATE SET last_value = sequence_counters.last_value + 1
	RETURNING last_value`

// Get returns the last issued value for the counter, 0 if none exists.
func (r *SequenceRepository) Get(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
	var lastValue int64
	err := r.pool.QueryRow(ctx,
		`SELECT last_value FROM sequence_counters WHERE entity_type = $1 AND year = $2`,
		string(entityType), year,
	).Scan(&lastValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return lastValue, nil
}

// Increment atomically claims and returns the next value.
func (r *SequenceRepository) Increment(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
	var lastValue int64
	err := r.pool.QueryRow(ctx, incrementSQL, string(entityType), year).Scan(&lastValue)
	if err != nil {
		return 0, err
	}
	return lastValue, nil
}

// IncrementTx claims the next value inside the caller's transaction, holding
// the row lock until the transaction resolves.
func (r *SequenceRepository) IncrementTx(ctx context.Context, tx usecase.Transaction, entityType domain.EntityType, year int) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var lastValue int64
	err := pgxTx.QueryRow(ctx, incrementSQL, string(entityType), year).Scan(&lastValue)
	if err != nil {
		return 0, err
	}
	return lastValue, nil
}

// Seed raises the counter to at least value without ever lowering it.
func (r *SequenceRepository) Seed(ctx context.Context, entityType domain.EntityType, year int, value int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sequence_counters (entity_type, year, last_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (entity_type, year)
		DO UPDATE SET last_value = GREATEST(sequence_counters.last_value, EXCLUDED.last_value)`,
		string(entityType), year, value,
	)
	return err
}
