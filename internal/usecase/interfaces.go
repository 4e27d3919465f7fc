package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
)

// SequenceRepository defines data access for bill-number counters.
// Increment must be a single atomic read-modify-write at the store: two
// concurrent calls for the same (entity type, year) must never observe the
// same value.
type SequenceRepository interface {
	// Get returns the last issued value, 0 if no counter row exists yet.
	Get(ctx context.Context, entityType domain.EntityType, year int) (int64, error)
	Increment(ctx context.Context, entityType domain.EntityType, year int) (int64, error)
	IncrementTx(ctx context.Context, tx Transaction, entityType domain.EntityType, year int) (int64, error)
	// Seed raises the counter to at least value; it never lowers it.
	Seed(ctx context.Context, entityType domain.EntityType, year int, value int64) error
}

// LoadingRepository defines data access for loadings and their items.
type LoadingRepository interface {
	Create(ctx context.Context, tx Transaction, loading *domain.Loading) error
	GetByID(ctx context.Context, id string) (*domain.Loading, error)
	List(ctx context.Context, entityType domain.EntityType, limit, offset int) ([]*domain.Loading, error)
	// LastBillNo returns the most recently created bill number, "" if none.
	LastBillNo(ctx context.Context, entityType domain.EntityType) (string, error)
	SumGrandTotal(ctx context.Context, entityType domain.EntityType) (decimal.Decimal, error)
	SumGrandTotalBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) (decimal.Decimal, error)
	CountBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) (int64, error)
	ListDateTotals(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.DateAmount, error)
	ListItemKgsBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.VarietyKgs, error)
	SumGrandTotalByParty(ctx context.Context, entityType domain.EntityType) ([]domain.PartyAmount, error)
	ListForAgeing(ctx context.Context, entityType domain.EntityType) ([]domain.AgeingRecord, error)
}

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]*domain.Payment, error)
	SumByParty(ctx context.Context, partyType domain.PartyType) ([]domain.PartyAmount, error)
	SumAll(ctx context.Context, partyType domain.PartyType) (decimal.Decimal, error)
	// ListApplied returns payment totals grouped by the record they were
	// applied against; payments with no applied record are excluded.
	ListApplied(ctx context.Context) ([]domain.AppliedAmount, error)
}

// PackingRepository defines data access for packing records.
type PackingRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.PackingRecord) error
	List(ctx context.Context, limit, offset int) ([]*domain.PackingRecord, error)
	LastBillNo(ctx context.Context) (string, error)
}

// PartyRepository defines data access for parties.
type PartyRepository interface {
	// GetOrCreate resolves a trimmed display name to a stable party,
	// creating it on first sight.
	GetOrCreate(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)
	GetByID(ctx context.Context, id string) (*domain.Party, error)
	List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error)
}

// VehicleRepository defines data access for fleet vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	// ExistsByNumber matches a vehicle number ignoring case and spacing.
	ExistsByNumber(ctx context.Context, vehicleNo string) (bool, error)
	// SetDriver assigns driverID to the vehicle; an empty driverID clears
	// the assignment.
	SetDriver(ctx context.Context, vehicleID, driverID string) error
}

// DriverRepository defines data access for drivers.
type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context) ([]*domain.Driver, error)
	// ListAvailable returns drivers with no vehicle assigned, by name.
	ListAvailable(ctx context.Context) ([]*domain.Driver, error)
}

// VarietyRepository defines data access for the fish variety registry.
type VarietyRepository interface {
	Create(ctx context.Context, variety domain.FishVariety) error
	List(ctx context.Context) ([]domain.FishVariety, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient persistence conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
