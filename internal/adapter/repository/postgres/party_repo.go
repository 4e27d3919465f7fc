package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/iho/fishtrade/internal/domain"
)

// PartyRepository implements usecase.PartyRepository. Parties are identified
// by (party_type, name); the row ID stays stable across renames of records
// that reference it.
type PartyRepository struct {
	pool *pgxpool.Pool
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{pool: pool}
}

// GetOrCreate resolves a name to its party row, inserting on first sight.
// The upsert makes concurrent first sights of the same name converge on one
// row instead of racing.
func (r *PartyRepository) GetOrCreate(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	var party domain.Party
	var pType string

	err := r.pool.QueryRow(ctx, `
		INSERT INTO parties (id, party_type, name, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (party_type, name)
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id, party_type, name, created_at`,
		ulid.Make().String(), string(partyType), name,
	).Scan(&party.ID, &pType, &party.Name, &party.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get or create party: %w", err)
	}

	party.Type = domain.PartyType(pType)
	return &party, nil
}

// GetByID retrieves a party by ID.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	var party domain.Party
	var pType string

	err := r.pool.QueryRow(ctx,
		`SELECT id, party_type, name, created_at FROM parties WHERE id = $1`, id,
	).Scan(&party.ID, &pType, &party.Name, &party.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("get party: %w", err)
	}

	party.Type = domain.PartyType(pType)
	return &party, nil
}

// List returns all parties of one type, alphabetically.
func (r *PartyRepository) List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, party_type, name, created_at
		FROM parties
		WHERE party_type = $1
		ORDER BY name`,
		string(partyType),
	)
	if err != nil {
		return nil, fmt.Errorf("query parties: %w", err)
	}
	defer rows.Close()

	var parties []*domain.Party
	for rows.Next() {
		var party domain.Party
		var pType string
		if err := rows.Scan(&party.ID, &pType, &party.Name, &party.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		party.Type = domain.PartyType(pType)
		parties = append(parties, &party)
	}

	return parties, rows.Err()
}
