package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
)

// PaymentUseCase handles payment recording and balance aggregation.
type PaymentUseCase struct {
	payments PaymentRepository
	loadings LoadingRepository
	parties  PartyRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics

	// Now is the record clock; overridable in tests.
	Now func() time.Time
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	payments PaymentRepository,
	loadings LoadingRepository,
	parties PartyRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		loadings: loadings,
		parties:  parties,
		idGen:    idGen,
		metrics:  m,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// RecordPaymentInput represents input for recording a payment.
type RecordPaymentInput struct {
	PartyType   domain.PartyType
	PartyName   string
	AppliedToID string
	Date        time.Time
	Amount      decimal.Decimal
	Mode        domain.PaymentMode
	Reference   string
}

func (in *RecordPaymentInput) validate() error {
	if !in.PartyType.Valid() {
		return domain.ErrInvalidPartyType
	}

	if err := domain.ValidatePartyName(in.PartyName); err != nil {
		return err
	}

	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}

	if !in.Mode.Valid() {
		return domain.ErrInvalidPaymentMode
	}

	if in.Date.IsZero() {
		return domain.ErrInvalidDate
	}

	return nil
}

// RecordPayment validates and persists a payment against a stable party.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	party, err := uc.parties.GetOrCreate(ctx, input.PartyType, domain.NormalizePartyName(input.PartyName))
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:          uc.idGen.Generate(),
		PartyType:   input.PartyType,
		PartyID:     party.ID,
		PartyName:   party.Name,
		AppliedToID: input.AppliedToID,
		Date:        input.Date,
		Amount:      input.Amount,
		Mode:        input.Mode,
		Reference:   input.Reference,
		CreatedAt:   uc.Now(),
	}

	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	uc.metrics.PaymentsCreated.WithLabelValues(string(input.PartyType), string(input.Mode)).Inc()

	return payment, nil
}

// ListPaymentsInput represents input for listing payments.
type ListPaymentsInput struct {
	PartyType domain.PartyType
	Limit     int
	Offset    int
}

// ListPayments lists payments for one party type, newest first.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, input ListPaymentsInput) ([]*domain.Payment, error) {
	if !input.PartyType.Valid() {
		return nil, domain.ErrInvalidPartyType
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.payments.List(ctx, input.PartyType, limit, offset)
}

// PartyBalances computes billed, paid, and due per party of the given type.
// Due is floored at zero. Employee parties have no billed side; their rows
// report paid salary only.
func (uc *PaymentUseCase) PartyBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PartyBalance, error) {
	if !partyType.Valid() {
		return nil, domain.ErrInvalidPartyType
	}

	billed, err := uc.billedByParty(ctx, partyType)
	if err != nil {
		return nil, err
	}

	paid, err := uc.payments.SumByParty(ctx, partyType)
	if err != nil {
		return nil, err
	}

	return mergeBalances(billed, paid), nil
}

func (uc *PaymentUseCase) billedByParty(ctx context.Context, partyType domain.PartyType) ([]domain.PartyAmount, error) {
	switch partyType {
	case domain.PartyClient:
		return uc.loadings.SumGrandTotalByParty(ctx, domain.EntityClientLoading)
	case domain.PartyVendor:
		farmer, err := uc.loadings.SumGrandTotalByParty(ctx, domain.EntityFarmerLoading)
		if err != nil {
			return nil, err
		}
		agent, err := uc.loadings.SumGrandTotalByParty(ctx, domain.EntityAgentLoading)
		if err != nil {
			return nil, err
		}
		return append(farmer, agent...), nil
	default:
		// Employees are paid, never billed.
		return nil, nil
	}
}

// mergeBalances joins billed and paid sums on the stable party ID, preserving
// the order parties were first seen (billed rows first).
func mergeBalances(billed, paid []domain.PartyAmount) []domain.PartyBalance {
	index := make(map[string]int)
	balances := make([]domain.PartyBalance, 0, len(billed))

	add := func(row domain.PartyAmount) *domain.PartyBalance {
		if i, ok := index[row.PartyID]; ok {
			return &balances[i]
		}
		index[row.PartyID] = len(balances)
		balances = append(balances, domain.PartyBalance{
			PartyID:   row.PartyID,
			PartyName: row.PartyName,
			Billed:    decimal.Zero,
			Paid:      decimal.Zero,
		})
		return &balances[len(balances)-1]
	}

	for _, row := range billed {
		b := add(row)
		b.Billed = b.Billed.Add(row.Amount)
	}

	for _, row := range paid {
		b := add(row)
		b.Paid = b.Paid.Add(row.Amount)
	}

	for i := range balances {
		balances[i].Due = domain.ComputeDue(balances[i].Billed, balances[i].Paid)
	}

	return balances
}
