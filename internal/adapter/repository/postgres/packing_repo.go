package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

// PackingRepository implements usecase.PackingRepository.
type PackingRepository struct {
	pool *pgxpool.Pool
}

// NewPackingRepository creates a new PackingRepository.
func NewPackingRepository(pool *pgxpool.Pool) *PackingRepository {
	return &PackingRepository{pool: pool}
}

// Create inserts a packing record inside the caller's transaction.
func (r *PackingRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.PackingRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	var source *string
	if record.SourceRecordID != "" {
		source = &record.SourceRecordID
	}

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO packing_records (
			id, bill_no, sequence_no, mode, source_record_id,
			workers, temperature, total_amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID, record.BillNo, record.SequenceNo, string(record.Mode), source,
		record.Workers, record.Temperature, record.TotalAmount, record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateBillNo, record.BillNo)
		}
		return fmt.Errorf("insert packing record: %w", err)
	}
	return nil
}

// List returns packing records, newest first.
func (r *PackingRepository) List(ctx context.Context, limit, offset int) ([]*domain.PackingRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, bill_no, sequence_no, mode, COALESCE(source_record_id, ''),
			workers, temperature, total_amount, created_at
		FROM packing_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query packing records: %w", err)
	}
	defer rows.Close()

	var records []*domain.PackingRecord
	for rows.Next() {
		var record domain.PackingRecord
		var mode string
		if err := rows.Scan(
			&record.ID, &record.BillNo, &record.SequenceNo, &mode, &record.SourceRecordID,
			&record.Workers, &record.Temperature, &record.TotalAmount, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan packing record: %w", err)
		}
		record.Mode = domain.PackingMode(mode)
		records = append(records, &record)
	}

	return records, rows.Err()
}

// LastBillNo returns the most recently created bill number, "" if none.
func (r *PackingRepository) LastBillNo(ctx context.Context) (string, error) {
	var billNo string
	err := r.pool.QueryRow(ctx, `
		SELECT bill_no FROM packing_records
		ORDER BY created_at DESC
		LIMIT 1`,
	).Scan(&billNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last packing bill no: %w", err)
	}
	return billNo, nil
}
