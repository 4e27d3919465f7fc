package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// LoadingRepository implements usecase.LoadingRepository.
type LoadingRepository struct {
	pool *pgxpool.Pool
}

// NewLoadingRepository creates a new LoadingRepository.
func NewLoadingRepository(pool *pgxpool.Pool) *LoadingRepository {
	return &LoadingRepository{pool: pool}
}

// Create inserts a loading and its items inside the caller's transaction.
// A duplicate (entity_type, bill_no) maps to domain.ErrDuplicateBillNo so the
// caller can re-allocate and retry.
func (r *LoadingRepository) Create(ctx context.Context, tx usecase.Transaction, loading *domain.Loading) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO loadings (
			id, entity_type, party_id, party_name, bill_no, sequence_no,
			vehicle_no, village, fish_code, loading_date,
			total_trays, total_loose_kgs, total_tray_kgs, total_kgs, grand_total,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		loading.ID, string(loading.EntityType), loading.PartyID, loading.PartyName,
		loading.BillNo, loading.SequenceNo,
		loading.VehicleNo, loading.Village, loading.FishCode, loading.Date,
		loading.TotalTrays, loading.TotalLooseKgs, loading.TotalTrayKgs,
		loading.TotalKgs, loading.GrandTotal,
		loading.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateBillNo, loading.BillNo)
		}
		return fmt.Errorf("insert loading: %w", err)
	}

	for _, item := range loading.Items {
		_, err := pgxTx.Exec(ctx, `
			INSERT INTO loading_items (
				id, loading_id, variety_code, no_trays,
				tray_kgs, loose_kgs, total_kgs, price_per_kg, total_price
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.ID, item.LoadingID, item.VarietyCode, item.NoTrays,
			item.TrayKgs, item.LooseKgs, item.TotalKgs, item.PricePerKg, item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("insert loading item: %w", err)
		}
	}

	return nil
}

const loadingColumns = `
	id, entity_type, party_id, party_name, bill_no, sequence_no,
	vehicle_no, village, fish_code, loading_date,
	total_trays, total_loose_kgs, total_tray_kgs, total_kgs, grand_total,
	created_at`

func scanLoading(row pgx.Row) (*domain.Loading, error) {
	var loading domain.Loading
	var entityType string

	err := row.Scan(
		&loading.ID, &entityType, &loading.PartyID, &loading.PartyName,
		&loading.BillNo, &loading.SequenceNo,
		&loading.VehicleNo, &loading.Village, &loading.FishCode, &loading.Date,
		&loading.TotalTrays, &loading.TotalLooseKgs, &loading.TotalTrayKgs,
		&loading.TotalKgs, &loading.GrandTotal,
		&loading.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	loading.EntityType = domain.EntityType(entityType)
	return &loading, nil
}

// GetByID retrieves a loading with its items.
func (r *LoadingRepository) GetByID(ctx context.Context, id string) (*domain.Loading, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+loadingColumns+` FROM loadings WHERE id = $1`, id)

	loading, err := scanLoading(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoadingNotFound
		}
		return nil, fmt.Errorf("get loading: %w", err)
	}

	if err := r.loadItems(ctx, loading); err != nil {
		return nil, err
	}

	return loading, nil
}

func (r *LoadingRepository) loadItems(ctx context.Context, loading *domain.Loading) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, loading_id, variety_code, no_trays,
			tray_kgs, loose_kgs, total_kgs, price_per_kg, total_price
		FROM loading_items
		WHERE loading_id = $1
		ORDER BY id`,
		loading.ID,
	)
	if err != nil {
		return fmt.Errorf("query loading items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.LoadingItem
		if err := rows.Scan(
			&item.ID, &item.LoadingID, &item.VarietyCode, &item.NoTrays,
			&item.TrayKgs, &item.LooseKgs, &item.TotalKgs, &item.PricePerKg, &item.TotalPrice,
		); err != nil {
			return fmt.Errorf("scan loading item: %w", err)
		}
		loading.Items = append(loading.Items, item)
	}

	return rows.Err()
}

// List returns loadings of one entity type, newest first, without items.
func (r *LoadingRepository) List(ctx context.Context, entityType domain.EntityType, limit, offset int) ([]*domain.Loading, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+loadingColumns+`
		FROM loadings
		WHERE entity_type = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		string(entityType), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query loadings: %w", err)
	}
	defer rows.Close()

	var loadings []*domain.Loading
	for rows.Next() {
		loading, err := scanLoading(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loading: %w", err)
		}
		loadings = append(loadings, loading)
	}

	return loadings, rows.Err()
}

// LastBillNo returns the most recently created bill number, "" if none.
func (r *LoadingRepository) LastBillNo(ctx context.Context, entityType domain.EntityType) (string, error) {
	var billNo string
	err := r.pool.QueryRow(ctx, `
		SELECT bill_no FROM loadings
		WHERE entity_type = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		string(entityType),
	).Scan(&billNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last bill no: %w", err)
	}
	return billNo, nil
}

// SumGrandTotal sums grand totals over all loadings of one entity type.
func (r *LoadingRepository) SumGrandTotal(ctx context.Context, entityType domain.EntityType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(grand_total), 0)
		FROM loadings
		WHERE entity_type = $1`,
		string(entityType),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum grand total: %w", err)
	}
	return total, nil
}

// SumGrandTotalBetween sums grand totals over [from, to).
func (r *LoadingRepository) SumGrandTotalBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(grand_total), 0)
		FROM loadings
		WHERE entity_type = $1 AND loading_date >= $2 AND loading_date < $3`,
		string(entityType), from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum grand total between: %w", err)
	}
	return total, nil
}

// CountBetween counts loadings over [from, to).
func (r *LoadingRepository) CountBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM loadings
		WHERE entity_type = $1 AND loading_date >= $2 AND loading_date < $3`,
		string(entityType), from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count loadings: %w", err)
	}
	return count, nil
}

// ListDateTotals returns per-day grand totals over [from, to).
func (r *LoadingRepository) ListDateTotals(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.DateAmount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', loading_date), SUM(grand_total)
		FROM loadings
		WHERE entity_type = $1 AND loading_date >= $2 AND loading_date < $3
		GROUP BY 1
		ORDER BY 1`,
		string(entityType), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query date totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.DateAmount
	for rows.Next() {
		var row domain.DateAmount
		if err := rows.Scan(&row.Date, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan date total: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}

// ListItemKgsBetween returns per-variety weight totals over [from, to) for
// one loading type.
func (r *LoadingRepository) ListItemKgsBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.VarietyKgs, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT li.variety_code, SUM(li.total_kgs)
		FROM loading_items li
		JOIN loadings l ON li.loading_id = l.id
		WHERE l.entity_type = $1 AND l.loading_date >= $2 AND l.loading_date < $3
		GROUP BY li.variety_code
		ORDER BY 2 DESC, MIN(l.created_at)`,
		string(entityType), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query variety kgs: %w", err)
	}
	defer rows.Close()

	var totals []domain.VarietyKgs
	for rows.Next() {
		var row domain.VarietyKgs
		if err := rows.Scan(&row.Code, &row.Kgs); err != nil {
			return nil, fmt.Errorf("scan variety kgs: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}

// SumGrandTotalByParty returns billed totals grouped by party.
func (r *LoadingRepository) SumGrandTotalByParty(ctx context.Context, entityType domain.EntityType) ([]domain.PartyAmount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT party_id, party_name, SUM(grand_total)
		FROM loadings
		WHERE entity_type = $1
		GROUP BY party_id, party_name
		ORDER BY MIN(created_at)`,
		string(entityType),
	)
	if err != nil {
		return nil, fmt.Errorf("query party totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.PartyAmount
	for rows.Next() {
		var row domain.PartyAmount
		if err := rows.Scan(&row.PartyID, &row.PartyName, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan party total: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}

// ListForAgeing returns the (id, date, amount) slice of every loading of one
// entity type, oldest first.
func (r *LoadingRepository) ListForAgeing(ctx context.Context, entityType domain.EntityType) ([]domain.AgeingRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, loading_date, grand_total
		FROM loadings
		WHERE entity_type = $1
		ORDER BY loading_date`,
		string(entityType),
	)
	if err != nil {
		return nil, fmt.Errorf("query ageing records: %w", err)
	}
	defer rows.Close()

	var records []domain.AgeingRecord
	for rows.Next() {
		var rec domain.AgeingRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Amount); err != nil {
			return nil, fmt.Errorf("scan ageing record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
