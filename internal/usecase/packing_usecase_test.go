package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
	"github.com/iho/fishtrade/internal/usecase"
	"github.com/iho/fishtrade/internal/usecase/mocks"
)

func newPackingUseCase(packings *mocks.MockPackingRepository) *usecase.PackingUseCase {
	m := metrics.New(prometheus.NewRegistry())
	retrier := mocks.NewMockRetrier()
	sequences := usecase.NewSequenceUseCase(mocks.NewMockSequenceRepository(), mocks.NewMockLoadingRepository(), packings, retrier, m)

	uc := usecase.NewPackingUseCase(
		mocks.NewMockTransactionManager(),
		packings,
		sequences,
		retrier,
		mocks.NewMockIDGenerator(),
		m,
	)
	uc.Now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	return uc
}

func validPackingInput() usecase.RecordPackingInput {
	return usecase.RecordPackingInput{
		Mode:        domain.PackingLoading,
		Workers:     4,
		Temperature: decimal.NewFromInt(4),
		TotalAmount: decimal.NewFromInt(800),
	}
}

func TestPackingUseCase_RecordPacking(t *testing.T) {
	t.Run("allocates packing bill numbers in order", func(t *testing.T) {
		uc := newPackingUseCase(mocks.NewMockPackingRepository())

		first, err := uc.RecordPacking(context.Background(), validPackingInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.BillNo != "RS-PACKING-25-0001" {
			t.Errorf("expected RS-PACKING-25-0001, got %s", first.BillNo)
		}

		second, err := uc.RecordPacking(context.Background(), validPackingInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.BillNo != "RS-PACKING-25-0002" {
			t.Errorf("expected RS-PACKING-25-0002, got %s", second.BillNo)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*usecase.RecordPackingInput)
			wantErr error
		}{
			{
				name:    "bad mode",
				mutate:  func(in *usecase.RecordPackingInput) { in.Mode = "storage" },
				wantErr: domain.ErrInvalidPackingMode,
			},
			{
				name:    "no workers",
				mutate:  func(in *usecase.RecordPackingInput) { in.Workers = 0 },
				wantErr: domain.ErrInvalidAmount,
			},
			{
				name:    "zero amount",
				mutate:  func(in *usecase.RecordPackingInput) { in.TotalAmount = decimal.Zero },
				wantErr: domain.ErrInvalidAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newPackingUseCase(mocks.NewMockPackingRepository())

				input := validPackingInput()
				tt.mutate(&input)

				_, err := uc.RecordPacking(context.Background(), input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		packings := mocks.NewMockPackingRepository()
		packings.CreateFunc = func(ctx context.Context, tx usecase.Transaction, record *domain.PackingRecord) error {
			return errors.New("insert failed")
		}
		uc := newPackingUseCase(packings)

		if _, err := uc.RecordPacking(context.Background(), validPackingInput()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestPackingUseCase_ListPackings(t *testing.T) {
	packings := mocks.NewMockPackingRepository()
	uc := newPackingUseCase(packings)

	for i := 0; i < 2; i++ {
		if _, err := uc.RecordPacking(context.Background(), validPackingInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := uc.ListPackings(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].BillNo != "RS-PACKING-25-0002" {
		t.Errorf("expected newest first, got %s", records[0].BillNo)
	}
}
