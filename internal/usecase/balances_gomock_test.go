package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
	"github.com/iho/fishtrade/internal/usecase"
	"github.com/iho/fishtrade/internal/usecase/gomocks"
)

func newGomockPaymentUseCase(ctrl *gomock.Controller) (*usecase.PaymentUseCase, *gomocks.MockLoadingRepository, *gomocks.MockPaymentRepository) {
	loadings := gomocks.NewMockLoadingRepository(ctrl)
	payments := gomocks.NewMockPaymentRepository(ctrl)
	parties := gomocks.NewMockPartyRepository(ctrl)
	idGen := gomocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewPaymentUseCase(payments, loadings, parties, idGen, metrics.New(prometheus.NewRegistry()))
	return uc, loadings, payments
}

func TestPartyBalancesQueriesBothLoadingTypesForVendors(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, loadings, payments := newGomockPaymentUseCase(ctrl)

	loadings.EXPECT().
		SumGrandTotalByParty(gomock.Any(), domain.EntityFarmerLoading).
		Return([]domain.PartyAmount{{PartyID: "p-1", PartyName: "Krishna Fisheries", Amount: decimal.NewFromInt(3000)}}, nil)
	loadings.EXPECT().
		SumGrandTotalByParty(gomock.Any(), domain.EntityAgentLoading).
		Return([]domain.PartyAmount{{PartyID: "p-1", PartyName: "Krishna Fisheries", Amount: decimal.NewFromInt(2000)}}, nil)
	payments.EXPECT().
		SumByParty(gomock.Any(), domain.PartyVendor).
		Return([]domain.PartyAmount{{PartyID: "p-1", PartyName: "Krishna Fisheries", Amount: decimal.NewFromInt(1500)}}, nil)

	balances, err := uc.PartyBalances(context.Background(), domain.PartyVendor)
	if err != nil {
		t.Fatalf("PartyBalances failed: %v", err)
	}

	if len(balances) != 1 {
		t.Fatalf("expected one merged row, got %d", len(balances))
	}
	if !balances[0].Billed.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected farmer and agent bills merged to 5000, got %s", balances[0].Billed)
	}
	if !balances[0].Due.Equal(decimal.NewFromInt(3500)) {
		t.Fatalf("expected due 3500, got %s", balances[0].Due)
	}
}

func TestPartyBalancesBilledQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, loadings, _ := newGomockPaymentUseCase(ctrl)

	loadings.EXPECT().
		SumGrandTotalByParty(gomock.Any(), domain.EntityClientLoading).
		Return(nil, errors.New("connection refused"))

	if _, err := uc.PartyBalances(context.Background(), domain.PartyClient); err == nil {
		t.Fatalf("expected billed query error to surface")
	}
}

func TestPartyBalancesPaidQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, loadings, payments := newGomockPaymentUseCase(ctrl)

	loadings.EXPECT().
		SumGrandTotalByParty(gomock.Any(), domain.EntityClientLoading).
		Return([]domain.PartyAmount{}, nil)
	payments.EXPECT().
		SumByParty(gomock.Any(), domain.PartyClient).
		Return(nil, errors.New("connection refused"))

	if _, err := uc.PartyBalances(context.Background(), domain.PartyClient); err == nil {
		t.Fatalf("expected paid query error to surface")
	}
}
