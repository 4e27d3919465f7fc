package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
)

// LoadingUseCase handles loading business logic.
type LoadingUseCase struct {
	txManager TransactionManager
	loadings  LoadingRepository
	parties   PartyRepository
	vehicles  VehicleRepository
	sequences *SequenceUseCase
	retrier   Retrier
	idGen     IDGenerator
	metrics   *metrics.Metrics

	// Now is the allocation clock; overridable in tests.
	Now func() time.Time
}

// NewLoadingUseCase creates a new LoadingUseCase.
func NewLoadingUseCase(
	txManager TransactionManager,
	loadings LoadingRepository,
	parties PartyRepository,
	vehicles VehicleRepository,
	sequences *SequenceUseCase,
	retrier Retrier,
	idGen IDGenerator,
	m *metrics.Metrics,
) *LoadingUseCase {
	return &LoadingUseCase{
		txManager: txManager,
		loadings:  loadings,
		parties:   parties,
		vehicles:  vehicles,
		sequences: sequences,
		retrier:   retrier,
		idGen:     idGen,
		metrics:   m,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// LoadingItemInput is one item line on a loading request.
type LoadingItemInput struct {
	VarietyCode string
	NoTrays     int
	LooseKgs    decimal.Decimal
	PricePerKg  decimal.Decimal
}

// CreateLoadingInput represents input for creating a loading.
type CreateLoadingInput struct {
	EntityType domain.EntityType
	PartyName  string
	VehicleNo  string
	Village    string
	FishCode   string
	Date       time.Time
	GrandTotal decimal.Decimal
	Items      []LoadingItemInput
}

func (in *CreateLoadingInput) validate() error {
	switch in.EntityType {
	case domain.EntityFarmerLoading, domain.EntityAgentLoading, domain.EntityClientLoading:
	default:
		return domain.ErrUnknownEntityType
	}

	if err := domain.ValidatePartyName(in.PartyName); err != nil {
		return err
	}

	if err := domain.ValidateVehicleNo(in.VehicleNo); err != nil {
		return err
	}

	if len(in.Items) == 0 {
		return domain.ErrNoItems
	}

	if in.Date.IsZero() {
		return domain.ErrInvalidDate
	}

	return nil
}

// CreateLoading validates the input, allocates the bill number, and persists
// the loading with its items in one transaction. The bill number becomes
// durable if and only if the loading does; a lost sequence race retries the
// whole transaction.
func (uc *LoadingUseCase) CreateLoading(ctx context.Context, input CreateLoadingInput) (*domain.Loading, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Agent and client loadings must name a registered vehicle. Farmer
	// loadings record the number as typed.
	if input.EntityType != domain.EntityFarmerLoading {
		exists, err := uc.vehicles.ExistsByNumber(ctx, input.VehicleNo)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrUnknownVehicle
		}
	}

	party, err := uc.parties.GetOrCreate(ctx, partyTypeFor(input.EntityType), domain.NormalizePartyName(input.PartyName))
	if err != nil {
		return nil, err
	}

	var created *domain.Loading

	err = uc.retrier.Retry(ctx, func() error {
		loading, err := uc.createOnce(ctx, input, party)
		if err != nil {
			return err
		}

		created = loading
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.LoadingsCreated.WithLabelValues(string(input.EntityType)).Inc()
	uc.metrics.BillsAllocated.WithLabelValues(string(input.EntityType)).Inc()

	return created, nil
}

func (uc *LoadingUseCase) createOnce(ctx context.Context, input CreateLoadingInput, party *domain.Party) (*domain.Loading, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	bill, err := uc.sequences.AllocateTx(ctx, tx, input.EntityType, uc.Now())
	if err != nil {
		return nil, err
	}

	loading := uc.buildLoading(input, party, bill)

	if err := uc.loadings.Create(ctx, tx, loading); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return loading, nil
}

func (uc *LoadingUseCase) buildLoading(input CreateLoadingInput, party *domain.Party, bill domain.BillNumber) *domain.Loading {
	now := uc.Now()

	loading := &domain.Loading{
		ID:         uc.idGen.Generate(),
		EntityType: input.EntityType,
		PartyID:    party.ID,
		PartyName:  party.Name,
		BillNo:     bill.BillNo,
		SequenceNo: bill.Sequence,
		VehicleNo:  domain.NormalizeVehicleNo(input.VehicleNo),
		Village:    domain.NormalizePartyName(input.Village),
		FishCode:   input.FishCode,
		Date:       input.Date,
		CreatedAt:  now,
	}

	priceTotal := decimal.Zero

	for _, itemInput := range input.Items {
		item := domain.LoadingItem{
			ID:          uc.idGen.Generate(),
			LoadingID:   loading.ID,
			VarietyCode: itemInput.VarietyCode,
			NoTrays:     itemInput.NoTrays,
			LooseKgs:    itemInput.LooseKgs,
			PricePerKg:  itemInput.PricePerKg,
		}
		item.ComputeWeights()
		item.TotalPrice = item.PricePerKg.Mul(item.TotalKgs)

		loading.TotalTrays += item.NoTrays
		loading.TotalLooseKgs = loading.TotalLooseKgs.Add(item.LooseKgs)
		loading.TotalTrayKgs = loading.TotalTrayKgs.Add(item.TrayKgs)
		loading.TotalKgs = loading.TotalKgs.Add(item.TotalKgs)
		priceTotal = priceTotal.Add(item.TotalPrice)

		loading.Items = append(loading.Items, item)
	}

	// Farmer and agent loadings carry no line prices; the grand total comes
	// from the form. Client loadings derive it from the priced items.
	loading.GrandTotal = input.GrandTotal
	if priceTotal.IsPositive() {
		loading.GrandTotal = priceTotal
	}

	return loading
}

func partyTypeFor(entityType domain.EntityType) domain.PartyType {
	if entityType == domain.EntityClientLoading {
		return domain.PartyClient
	}
	return domain.PartyVendor
}

// GetLoading retrieves a loading by ID.
func (uc *LoadingUseCase) GetLoading(ctx context.Context, id string) (*domain.Loading, error) {
	return uc.loadings.GetByID(ctx, id)
}

// ListLoadingsInput represents input for listing loadings.
type ListLoadingsInput struct {
	EntityType domain.EntityType
	Limit      int
	Offset     int
}

// ListLoadings lists loadings of one entity type, newest first.
func (uc *LoadingUseCase) ListLoadings(ctx context.Context, input ListLoadingsInput) ([]*domain.Loading, error) {
	switch input.EntityType {
	case domain.EntityFarmerLoading, domain.EntityAgentLoading, domain.EntityClientLoading:
	default:
		return nil, domain.ErrUnknownEntityType
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.loadings.List(ctx, input.EntityType, limit, offset)
}
