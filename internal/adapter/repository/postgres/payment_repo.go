package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create inserts a payment. Payments are append-only.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	var appliedTo *string
	if payment.AppliedToID != "" {
		appliedTo = &payment.AppliedToID
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (
			id, party_type, party_id, party_name, applied_to_id,
			payment_date, amount, mode, reference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		payment.ID, string(payment.PartyType), payment.PartyID, payment.PartyName, appliedTo,
		payment.Date, payment.Amount, string(payment.Mode), payment.Reference, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// List returns payments of one party type, newest first.
func (r *PaymentRepository) List(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]*domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, party_type, party_id, party_name, COALESCE(applied_to_id, ''),
			payment_date, amount, mode, reference, created_at
		FROM payments
		WHERE party_type = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		string(partyType), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var payment domain.Payment
		var pType, mode string
		if err := rows.Scan(
			&payment.ID, &pType, &payment.PartyID, &payment.PartyName, &payment.AppliedToID,
			&payment.Date, &payment.Amount, &mode, &payment.Reference, &payment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payment.PartyType = domain.PartyType(pType)
		payment.Mode = domain.PaymentMode(mode)
		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}

// SumByParty returns paid totals grouped by party.
func (r *PaymentRepository) SumByParty(ctx context.Context, partyType domain.PartyType) ([]domain.PartyAmount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT party_id, party_name, SUM(amount)
		FROM payments
		WHERE party_type = $1
		GROUP BY party_id, party_name
		ORDER BY MIN(created_at)`,
		string(partyType),
	)
	if err != nil {
		return nil, fmt.Errorf("query payment sums: %w", err)
	}
	defer rows.Close()

	var totals []domain.PartyAmount
	for rows.Next() {
		var row domain.PartyAmount
		if err := rows.Scan(&row.PartyID, &row.PartyName, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan payment sum: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}

// SumAll returns the total paid across one party type.
func (r *PaymentRepository) SumAll(ctx context.Context, partyType domain.PartyType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE party_type = $1`,
		string(partyType),
	).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// ListApplied returns payment totals grouped by the record they were applied
// against. Unapplied payments are excluded.
func (r *PaymentRepository) ListApplied(ctx context.Context) ([]domain.AppliedAmount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT applied_to_id, SUM(amount)
		FROM payments
		WHERE applied_to_id IS NOT NULL
		GROUP BY applied_to_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query applied payments: %w", err)
	}
	defer rows.Close()

	var totals []domain.AppliedAmount
	for rows.Next() {
		var row domain.AppliedAmount
		if err := rows.Scan(&row.RecordID, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan applied payment: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}
