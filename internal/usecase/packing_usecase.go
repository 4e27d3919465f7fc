package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
)

// PackingUseCase handles packing records.
type PackingUseCase struct {
	txManager TransactionManager
	packings  PackingRepository
	sequences *SequenceUseCase
	retrier   Retrier
	idGen     IDGenerator
	metrics   *metrics.Metrics

	// Now is the record clock; overridable in tests.
	Now func() time.Time
}

// NewPackingUseCase creates a new PackingUseCase.
func NewPackingUseCase(
	txManager TransactionManager,
	packings PackingRepository,
	sequences *SequenceUseCase,
	retrier Retrier,
	idGen IDGenerator,
	m *metrics.Metrics,
) *PackingUseCase {
	return &PackingUseCase{
		txManager: txManager,
		packings:  packings,
		sequences: sequences,
		retrier:   retrier,
		idGen:     idGen,
		metrics:   m,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// RecordPackingInput represents input for recording a packing operation.
type RecordPackingInput struct {
	Mode           domain.PackingMode
	SourceRecordID string
	Workers        int
	Temperature    decimal.Decimal
	TotalAmount    decimal.Decimal
}

func (in *RecordPackingInput) validate() error {
	if !in.Mode.Valid() {
		return domain.ErrInvalidPackingMode
	}

	if in.Workers <= 0 {
		return domain.ErrInvalidAmount
	}

	return domain.ValidateAmount(in.TotalAmount)
}

// RecordPacking validates and persists a packing record, allocating its
// RS-PACKING bill number in the same transaction.
func (uc *PackingUseCase) RecordPacking(ctx context.Context, input RecordPackingInput) (*domain.PackingRecord, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var created *domain.PackingRecord

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		bill, err := uc.sequences.AllocateTx(ctx, tx, domain.EntityPacking, uc.Now())
		if err != nil {
			return err
		}

		record := &domain.PackingRecord{
			ID:             uc.idGen.Generate(),
			BillNo:         bill.BillNo,
			SequenceNo:     bill.Sequence,
			Mode:           input.Mode,
			SourceRecordID: input.SourceRecordID,
			Workers:        input.Workers,
			Temperature:    input.Temperature,
			TotalAmount:    input.TotalAmount,
			CreatedAt:      uc.Now(),
		}

		if err := uc.packings.Create(ctx, tx, record); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.PackingCreated.Inc()
	uc.metrics.BillsAllocated.WithLabelValues(string(domain.EntityPacking)).Inc()

	return created, nil
}

// ListPackings lists packing records, newest first.
func (uc *PackingUseCase) ListPackings(ctx context.Context, limit, offset int) ([]*domain.PackingRecord, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.packings.List(ctx, limit, offset)
}
