package usecase

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
)

// SequenceUseCase issues bill numbers. The persisted counter row keyed by
// (entity type, year) is the sole source of truth; the formatted bill number
// is a derived display artifact.
type SequenceUseCase struct {
	seqRepo  SequenceRepository
	loadings LoadingRepository
	packings PackingRepository
	retrier  Retrier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewSequenceUseCase creates a new SequenceUseCase.
func NewSequenceUseCase(
	seqRepo SequenceRepository,
	loadings LoadingRepository,
	packings PackingRepository,
	retrier Retrier,
	m *metrics.Metrics,
) *SequenceUseCase {
	return &SequenceUseCase{
		seqRepo:  seqRepo,
		loadings: loadings,
		packings: packings,
		retrier:  retrier,
		metrics:  m,
		logger:   slog.Default(),
	}
}

// PeekNext computes the bill number the next allocation would return, without
// reserving it. It is side-effect free and safe to call repeatedly. If the
// counter store is unreachable it degrades to a fresh sequence of 1 with a
// warning instead of failing the caller.
func (uc *SequenceUseCase) PeekNext(ctx context.Context, entityType domain.EntityType, at time.Time) (domain.BillNumber, error) {
	if !entityType.Valid() {
		return domain.BillNumber{}, domain.ErrUnknownEntityType
	}

	last, err := uc.seqRepo.Get(ctx, entityType, at.Year())
	if err != nil {
		uc.logger.Warn("sequence counter unavailable, previewing fresh sequence",
			"entity_type", entityType,
			"error", err,
		)
		uc.metrics.PeekFallbacks.Inc()
		last = 0
	}

	next := last + 1

	return domain.BillNumber{
		BillNo:   domain.FormatBillNo(entityType, at, next),
		Sequence: next,
	}, nil
}

// Allocate atomically claims the next sequence value and returns the
// formatted bill number. Transient store conflicts are retried a bounded
// number of times; concurrent callers never receive the same number.
func (uc *SequenceUseCase) Allocate(ctx context.Context, entityType domain.EntityType, at time.Time) (domain.BillNumber, error) {
	if !entityType.Valid() {
		return domain.BillNumber{}, domain.ErrUnknownEntityType
	}

	var seq int64

	attempt := 0
	err := uc.retrier.Retry(ctx, func() error {
		attempt++
		if attempt > 1 {
			uc.metrics.AllocationRetries.Inc()
		}

		value, err := uc.seqRepo.Increment(ctx, entityType, at.Year())
		if err != nil {
			return err
		}

		seq = value
		return nil
	})
	if err != nil {
		uc.metrics.AllocationErrors.WithLabelValues(string(entityType)).Inc()
		return domain.BillNumber{}, fmt.Errorf("allocate %s bill number: %w", entityType, err)
	}

	uc.metrics.BillsAllocated.WithLabelValues(string(entityType)).Inc()

	return domain.BillNumber{
		BillNo:   domain.FormatBillNo(entityType, at, seq),
		Sequence: seq,
	}, nil
}

// AllocateTx claims the next sequence value inside an open transaction, so a
// bill number becomes durable exactly when its parent record does. The caller
// owns commit, rollback, and any whole-transaction retry.
func (uc *SequenceUseCase) AllocateTx(ctx context.Context, tx Transaction, entityType domain.EntityType, at time.Time) (domain.BillNumber, error) {
	if !entityType.Valid() {
		return domain.BillNumber{}, domain.ErrUnknownEntityType
	}

	seq, err := uc.seqRepo.IncrementTx(ctx, tx, entityType, at.Year())
	if err != nil {
		return domain.BillNumber{}, fmt.Errorf("allocate %s bill number: %w", entityType, err)
	}

	return domain.BillNumber{
		BillNo:   domain.FormatBillNo(entityType, at, seq),
		Sequence: seq,
	}, nil
}

// SeedFromHistory raises counters from the newest bill numbers found on
// existing records. It exists for databases that predate the counters table;
// after it runs once the counters alone drive allocation. Malformed bill
// numbers are logged and skipped, leaving the sequence to start at 1.
func (uc *SequenceUseCase) SeedFromHistory(ctx context.Context, at time.Time) error {
	for _, entityType := range []domain.EntityType{
		domain.EntityFarmerLoading,
		domain.EntityAgentLoading,
		domain.EntityClientLoading,
		domain.EntityPacking,
	} {
		billNo, err := uc.lastBillNo(ctx, entityType)
		if err != nil {
			return fmt.Errorf("seed %s sequence: %w", entityType, err)
		}
		if billNo == "" {
			continue
		}

		year, seq, ok := domain.ParseBillNo(billNo)
		if !ok {
			uc.logger.Warn("ignoring malformed bill number while seeding, sequence starts fresh",
				"entity_type", entityType,
				"bill_no", billNo,
			)
			continue
		}

		if year != at.Year()%100 {
			// Counter rows are per-year; an old year's bill seeds nothing.
			continue
		}

		if err := uc.seqRepo.Seed(ctx, entityType, at.Year(), seq); err != nil {
			return fmt.Errorf("seed %s sequence: %w", entityType, err)
		}

		uc.logger.Info("seeded bill sequence from history",
			"entity_type", entityType,
			"last_value", seq,
		)
	}

	return nil
}

func (uc *SequenceUseCase) lastBillNo(ctx context.Context, entityType domain.EntityType) (string, error) {
	if entityType == domain.EntityPacking {
		return uc.packings.LastBillNo(ctx)
	}
	return uc.loadings.LastBillNo(ctx, entityType)
}
