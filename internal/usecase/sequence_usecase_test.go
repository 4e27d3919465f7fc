package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
	"github.com/iho/fishtrade/internal/usecase"
	"github.com/iho/fishtrade/internal/usecase/mocks"
)

func newSequenceUseCase(seqRepo *mocks.MockSequenceRepository, loadings *mocks.MockLoadingRepository, packings *mocks.MockPackingRepository) *usecase.SequenceUseCase {
	if seqRepo == nil {
		seqRepo = mocks.NewMockSequenceRepository()
	}
	if loadings == nil {
		loadings = mocks.NewMockLoadingRepository()
	}
	if packings == nil {
		packings = mocks.NewMockPackingRepository()
	}
	return usecase.NewSequenceUseCase(seqRepo, loadings, packings, mocks.NewMockRetrier(), metrics.New(prometheus.NewRegistry()))
}

func TestSequenceUseCase_PeekNext(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("fresh counter previews sequence 1", func(t *testing.T) {
		uc := newSequenceUseCase(nil, nil, nil)

		bill, err := uc.PeekNext(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-Client-25-0001" {
			t.Errorf("expected RS-Client-25-0001, got %s", bill.BillNo)
		}
	})

	t.Run("peek is repeatable and does not consume", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		uc := newSequenceUseCase(seqRepo, nil, nil)

		for i := 0; i < 3; i++ {
			bill, err := uc.PeekNext(context.Background(), domain.EntityFarmerLoading, at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bill.Sequence != 1 {
				t.Errorf("peek %d consumed the sequence: got %d", i, bill.Sequence)
			}
		}
	})

	t.Run("peek reflects allocated values", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		uc := newSequenceUseCase(seqRepo, nil, nil)

		if _, err := uc.Allocate(context.Background(), domain.EntityAgentLoading, at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bill, err := uc.PeekNext(context.Background(), domain.EntityAgentLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-Agent-25-0002" {
			t.Errorf("expected RS-Agent-25-0002, got %s", bill.BillNo)
		}
	})

	t.Run("counter store down degrades to sequence 1", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		seqRepo.GetFunc = func(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
			return 0, errors.New("connection refused")
		}
		uc := newSequenceUseCase(seqRepo, nil, nil)

		bill, err := uc.PeekNext(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("peek must not fail when the store is down: %v", err)
		}
		if bill.Sequence != 1 {
			t.Errorf("expected fallback sequence 1, got %d", bill.Sequence)
		}
	})

	t.Run("unknown entity type rejected", func(t *testing.T) {
		uc := newSequenceUseCase(nil, nil, nil)

		_, err := uc.PeekNext(context.Background(), domain.EntityType("supplier"), at)
		if !errors.Is(err, domain.ErrUnknownEntityType) {
			t.Errorf("expected ErrUnknownEntityType, got %v", err)
		}
	})
}

func TestSequenceUseCase_Allocate(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("sequential allocations are gapless", func(t *testing.T) {
		uc := newSequenceUseCase(nil, nil, nil)

		for want := int64(1); want <= 3; want++ {
			bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bill.Sequence != want {
				t.Errorf("expected sequence %d, got %d", want, bill.Sequence)
			}
		}
	})

	t.Run("entity types count independently", func(t *testing.T) {
		uc := newSequenceUseCase(nil, nil, nil)

		if _, err := uc.Allocate(context.Background(), domain.EntityFarmerLoading, at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bill, err := uc.Allocate(context.Background(), domain.EntityPacking, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-PACKING-25-0001" {
			t.Errorf("expected RS-PACKING-25-0001, got %s", bill.BillNo)
		}
	})

	t.Run("year rollover restarts at 1", func(t *testing.T) {
		uc := newSequenceUseCase(nil, nil, nil)

		dec := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
		jan := time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC)

		bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, dec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-Client-25-0001" {
			t.Errorf("expected RS-Client-25-0001, got %s", bill.BillNo)
		}

		bill, err = uc.Allocate(context.Background(), domain.EntityClientLoading, jan)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-Client-26-0001" {
			t.Errorf("expected RS-Client-26-0001, got %s", bill.BillNo)
		}
	})

	t.Run("concurrent allocations never collide", func(t *testing.T) {
		uc := newSequenceUseCase(nil, nil, nil)

		const n = 50
		var wg sync.WaitGroup
		results := make(chan int64, n)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				results <- bill.Sequence
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[int64]bool)
		for seq := range results {
			if seen[seq] {
				t.Errorf("sequence %d allocated twice", seq)
			}
			seen[seq] = true
		}
		if len(seen) != n {
			t.Errorf("expected %d distinct sequences, got %d", n, len(seen))
		}
	})

	t.Run("transient conflict retried then succeeds", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		calls := 0
		seqRepo.IncrementFunc = func(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("could not serialize access")
			}
			return 7, nil
		}

		retrier := mocks.NewMockRetrier()
		retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
			var err error
			for attempt := 0; attempt < 3; attempt++ {
				if err = operation(); err == nil {
					return nil
				}
			}
			return err
		}

		uc := usecase.NewSequenceUseCase(seqRepo, mocks.NewMockLoadingRepository(), mocks.NewMockPackingRepository(), retrier, metrics.New(prometheus.NewRegistry()))

		bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.Sequence != 7 {
			t.Errorf("expected sequence 7, got %d", bill.Sequence)
		}
		if calls != 3 {
			t.Errorf("expected 3 attempts, got %d", calls)
		}
	})

	t.Run("exhausted retries surface the error", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		seqRepo.IncrementFunc = func(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
			return 0, domain.ErrSequenceConflict
		}

		retrier := mocks.NewMockRetrier()
		retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
			var err error
			for attempt := 0; attempt < 3; attempt++ {
				err = operation()
			}
			return err
		}

		uc := usecase.NewSequenceUseCase(seqRepo, mocks.NewMockLoadingRepository(), mocks.NewMockPackingRepository(), retrier, metrics.New(prometheus.NewRegistry()))

		_, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
		if !errors.Is(err, domain.ErrSequenceConflict) {
			t.Errorf("expected ErrSequenceConflict, got %v", err)
		}
	})
}

func TestSequenceUseCase_SeedFromHistory(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("seeds from latest bill numbers", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		loadings := mocks.NewMockLoadingRepository()
		loadings.LastBillNoFunc = func(ctx context.Context, entityType domain.EntityType) (string, error) {
			if entityType == domain.EntityClientLoading {
				return "RS-Client-25-0042", nil
			}
			return "", nil
		}

		uc := newSequenceUseCaseWith(seqRepo, loadings)

		if err := uc.SeedFromHistory(context.Background(), at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-Client-25-0043" {
			t.Errorf("expected RS-Client-25-0043, got %s", bill.BillNo)
		}
	})

	t.Run("malformed bill number leaves counter fresh", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		loadings := mocks.NewMockLoadingRepository()
		loadings.LastBillNoFunc = func(ctx context.Context, entityType domain.EntityType) (string, error) {
			return "garbage", nil
		}

		uc := newSequenceUseCaseWith(seqRepo, loadings)

		if err := uc.SeedFromHistory(context.Background(), at); err != nil {
			t.Fatalf("seeding must skip malformed numbers, got: %v", err)
		}

		bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.Sequence != 1 {
			t.Errorf("expected fresh sequence 1, got %d", bill.Sequence)
		}
	})

	t.Run("previous year's bills seed nothing", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		loadings := mocks.NewMockLoadingRepository()
		loadings.LastBillNoFunc = func(ctx context.Context, entityType domain.EntityType) (string, error) {
			return "RS-Client-24-0099", nil
		}

		uc := newSequenceUseCaseWith(seqRepo, loadings)

		if err := uc.SeedFromHistory(context.Background(), at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNo != "RS-Client-25-0001" {
			t.Errorf("expected RS-Client-25-0001, got %s", bill.BillNo)
		}
	})

	t.Run("seeding never lowers an existing counter", func(t *testing.T) {
		seqRepo := mocks.NewMockSequenceRepository()
		if err := seqRepo.Seed(context.Background(), domain.EntityClientLoading, at.Year(), 100); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loadings := mocks.NewMockLoadingRepository()
		loadings.LastBillNoFunc = func(ctx context.Context, entityType domain.EntityType) (string, error) {
			return fmt.Sprintf("RS-Client-%02d-0005", at.Year()%100), nil
		}

		uc := newSequenceUseCaseWith(seqRepo, loadings)

		if err := uc.SeedFromHistory(context.Background(), at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bill, err := uc.Allocate(context.Background(), domain.EntityClientLoading, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.Sequence != 101 {
			t.Errorf("expected sequence 101, got %d", bill.Sequence)
		}
	})
}

func newSequenceUseCaseWith(seqRepo *mocks.MockSequenceRepository, loadings *mocks.MockLoadingRepository) *usecase.SequenceUseCase {
	return usecase.NewSequenceUseCase(seqRepo, loadings, mocks.NewMockPackingRepository(), mocks.NewMockRetrier(), metrics.New(prometheus.NewRegistry()))
}
