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

type loadingFixture struct {
	uc       *usecase.LoadingUseCase
	loadings *mocks.MockLoadingRepository
	seqRepo  *mocks.MockSequenceRepository
	parties  *mocks.MockPartyRepository
	vehicles *mocks.MockVehicleRepository
}

func newLoadingFixture() *loadingFixture {
	m := metrics.New(prometheus.NewRegistry())
	seqRepo := mocks.NewMockSequenceRepository()
	loadings := mocks.NewMockLoadingRepository()
	packings := mocks.NewMockPackingRepository()
	parties := mocks.NewMockPartyRepository()
	vehicles := mocks.NewMockVehicleRepository()
	retrier := mocks.NewMockRetrier()

	// Fixture fleet: the vehicle every valid input references.
	if err := vehicles.Create(context.Background(), &domain.Vehicle{
		ID:            "veh-1",
		VehicleNumber: "TS09AB1234",
		Ownership:     domain.OwnershipOwn,
	}); err != nil {
		panic(err)
	}

	sequences := usecase.NewSequenceUseCase(seqRepo, loadings, packings, retrier, m)

	uc := usecase.NewLoadingUseCase(
		mocks.NewMockTransactionManager(),
		loadings,
		parties,
		vehicles,
		sequences,
		retrier,
		mocks.NewMockIDGenerator(),
		m,
	)
	uc.Now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	return &loadingFixture{uc: uc, loadings: loadings, seqRepo: seqRepo, parties: parties, vehicles: vehicles}
}

func validLoadingInput(entityType domain.EntityType) usecase.CreateLoadingInput {
	return usecase.CreateLoadingInput{
		EntityType: entityType,
		PartyName:  "Ravi Traders",
		VehicleNo:  "ts 09 ab 1234",
		Village:    "Kolleru",
		FishCode:   "F12",
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Items: []usecase.LoadingItemInput{
			{VarietyCode: "ROHU", NoTrays: 3, LooseKgs: decimal.NewFromInt(12), PricePerKg: decimal.NewFromInt(80)},
		},
	}
}

func TestLoadingUseCase_CreateLoading(t *testing.T) {
	t.Run("sequential creates number bills 1 2 3", func(t *testing.T) {
		f := newLoadingFixture()

		want := []string{"RS-Client-25-0001", "RS-Client-25-0002", "RS-Client-25-0003"}
		for _, expected := range want {
			loading, err := f.uc.CreateLoading(context.Background(), validLoadingInput(domain.EntityClientLoading))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loading.BillNo != expected {
				t.Errorf("expected %s, got %s", expected, loading.BillNo)
			}
		}
	})

	t.Run("derives weights and totals from items", func(t *testing.T) {
		f := newLoadingFixture()

		loading, err := f.uc.CreateLoading(context.Background(), validLoadingInput(domain.EntityClientLoading))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 3 trays x 35kg + 12kg loose = 117kg at 80/kg
		if !loading.TotalKgs.Equal(decimal.NewFromInt(117)) {
			t.Errorf("expected 117 total kgs, got %s", loading.TotalKgs)
		}
		if !loading.GrandTotal.Equal(decimal.NewFromInt(9360)) {
			t.Errorf("expected grand total 9360, got %s", loading.GrandTotal)
		}
		if loading.VehicleNo != "TS09AB1234" {
			t.Errorf("expected normalized vehicle TS09AB1234, got %s", loading.VehicleNo)
		}
	})

	t.Run("unpriced items fall back to the form grand total", func(t *testing.T) {
		f := newLoadingFixture()

		input := validLoadingInput(domain.EntityFarmerLoading)
		input.Items = []usecase.LoadingItemInput{
			{VarietyCode: "KATLA", NoTrays: 2, LooseKgs: decimal.Zero},
		}
		input.GrandTotal = decimal.NewFromInt(5000)

		loading, err := f.uc.CreateLoading(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !loading.GrandTotal.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected grand total 5000, got %s", loading.GrandTotal)
		}
	})

	t.Run("same party name resolves to one party", func(t *testing.T) {
		f := newLoadingFixture()

		input := validLoadingInput(domain.EntityClientLoading)
		first, err := f.uc.CreateLoading(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input.PartyName = "  Ravi Traders  "
		second, err := f.uc.CreateLoading(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.PartyID != second.PartyID {
			t.Errorf("expected same party, got %s and %s", first.PartyID, second.PartyID)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*usecase.CreateLoadingInput)
			wantErr error
		}{
			{
				name:    "unknown entity type",
				mutate:  func(in *usecase.CreateLoadingInput) { in.EntityType = "invoice" },
				wantErr: domain.ErrUnknownEntityType,
			},
			{
				name:    "missing party",
				mutate:  func(in *usecase.CreateLoadingInput) { in.PartyName = "   " },
				wantErr: domain.ErrMissingParty,
			},
			{
				name:    "missing vehicle",
				mutate:  func(in *usecase.CreateLoadingInput) { in.VehicleNo = "" },
				wantErr: domain.ErrMissingVehicle,
			},
			{
				name:    "no items",
				mutate:  func(in *usecase.CreateLoadingInput) { in.Items = nil },
				wantErr: domain.ErrNoItems,
			},
			{
				name:    "missing date",
				mutate:  func(in *usecase.CreateLoadingInput) { in.Date = time.Time{} },
				wantErr: domain.ErrInvalidDate,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newLoadingFixture()

				input := validLoadingInput(domain.EntityClientLoading)
				tt.mutate(&input)

				_, err := f.uc.CreateLoading(context.Background(), input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})

	t.Run("client loading rejects an unregistered vehicle", func(t *testing.T) {
		f := newLoadingFixture()

		input := validLoadingInput(domain.EntityClientLoading)
		input.VehicleNo = "AP 01 ZZ 9999"

		if _, err := f.uc.CreateLoading(context.Background(), input); !errors.Is(err, domain.ErrUnknownVehicle) {
			t.Errorf("expected ErrUnknownVehicle, got %v", err)
		}
	})

	t.Run("agent loading rejects an unregistered vehicle", func(t *testing.T) {
		f := newLoadingFixture()

		input := validLoadingInput(domain.EntityAgentLoading)
		input.VehicleNo = "AP 01 ZZ 9999"

		if _, err := f.uc.CreateLoading(context.Background(), input); !errors.Is(err, domain.ErrUnknownVehicle) {
			t.Errorf("expected ErrUnknownVehicle, got %v", err)
		}
	})

	t.Run("farmer loading records any vehicle number as typed", func(t *testing.T) {
		f := newLoadingFixture()

		input := validLoadingInput(domain.EntityFarmerLoading)
		input.VehicleNo = "AP 01 ZZ 9999"

		loading, err := f.uc.CreateLoading(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loading.VehicleNo != "AP01ZZ9999" {
			t.Errorf("expected AP01ZZ9999, got %s", loading.VehicleNo)
		}
	})

	t.Run("create failure does not leak into listings", func(t *testing.T) {
		f := newLoadingFixture()
		f.loadings.CreateFunc = func(ctx context.Context, tx usecase.Transaction, loading *domain.Loading) error {
			return errors.New("insert failed")
		}

		if _, err := f.uc.CreateLoading(context.Background(), validLoadingInput(domain.EntityClientLoading)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestLoadingUseCase_ListLoadings(t *testing.T) {
	f := newLoadingFixture()

	for i := 0; i < 3; i++ {
		if _, err := f.uc.CreateLoading(context.Background(), validLoadingInput(domain.EntityClientLoading)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := f.uc.CreateLoading(context.Background(), validLoadingInput(domain.EntityFarmerLoading)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("filters by entity type newest first", func(t *testing.T) {
		loadings, err := f.uc.ListLoadings(context.Background(), usecase.ListLoadingsInput{
			EntityType: domain.EntityClientLoading,
			Limit:      10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loadings) != 3 {
			t.Fatalf("expected 3 loadings, got %d", len(loadings))
		}
		if loadings[0].BillNo != "RS-Client-25-0003" {
			t.Errorf("expected newest first, got %s", loadings[0].BillNo)
		}
	})

	t.Run("rejects unknown entity type", func(t *testing.T) {
		_, err := f.uc.ListLoadings(context.Background(), usecase.ListLoadingsInput{EntityType: "invoice"})
		if !errors.Is(err, domain.ErrUnknownEntityType) {
			t.Errorf("expected ErrUnknownEntityType, got %v", err)
		}
	})
}

func TestLoadingUseCase_GetLoading(t *testing.T) {
	f := newLoadingFixture()

	created, err := f.uc.CreateLoading(context.Background(), validLoadingInput(domain.EntityClientLoading))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loading, err := f.uc.GetLoading(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loading.BillNo != created.BillNo {
		t.Errorf("expected %s, got %s", created.BillNo, loading.BillNo)
	}

	if _, err := f.uc.GetLoading(context.Background(), "missing"); !errors.Is(err, domain.ErrLoadingNotFound) {
		t.Errorf("expected ErrLoadingNotFound, got %v", err)
	}
}
