package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
)

func TestCreateLoadingRequestToUseCaseInput(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	req := CreateLoadingRequest{
		PartyName:  "Ravi Traders",
		VehicleNo:  "TS09AB1234",
		Village:    "Kaikalur",
		FishCode:   "F-12",
		Date:       date,
		GrandTotal: decimal.NewFromInt(5000),
		Items: []LoadingItemRequest{
			{VarietyCode: "ROHU", NoTrays: 3, LooseKgs: decimal.NewFromInt(12), PricePerKg: decimal.NewFromInt(80)},
			{VarietyCode: "KATLA", NoTrays: 1, LooseKgs: decimal.Zero, PricePerKg: decimal.NewFromInt(95)},
		},
	}

	input := req.ToUseCaseInput(domain.EntityClientLoading)

	if input.EntityType != domain.EntityClientLoading {
		t.Fatalf("expected client entity type, got %s", input.EntityType)
	}
	if input.PartyName != "Ravi Traders" || input.VehicleNo != "TS09AB1234" {
		t.Fatalf("party/vehicle not carried over: %+v", input)
	}
	if !input.Date.Equal(date) {
		t.Fatalf("expected date %s, got %s", date, input.Date)
	}
	if len(input.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(input.Items))
	}
	if input.Items[0].VarietyCode != "ROHU" || input.Items[0].NoTrays != 3 {
		t.Fatalf("first item not carried over: %+v", input.Items[0])
	}
	if !input.Items[1].PricePerKg.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("expected price 95, got %s", input.Items[1].PricePerKg)
	}
}

func TestRecordPaymentRequestToUseCaseInput(t *testing.T) {
	req := RecordPaymentRequest{
		PartyType:   "client",
		PartyName:   "Ravi Traders",
		AppliedToID: "loading-1",
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(5000),
		Mode:        "UPI",
		Reference:   "UTR123456",
	}

	input := req.ToUseCaseInput()

	if input.PartyType != domain.PartyClient {
		t.Fatalf("expected client party type, got %s", input.PartyType)
	}
	if input.Mode != domain.PaymentUPI {
		t.Fatalf("expected UPI mode, got %s", input.Mode)
	}
	if input.AppliedToID != "loading-1" || input.Reference != "UTR123456" {
		t.Fatalf("fields not carried over: %+v", input)
	}
	if !input.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected amount 5000, got %s", input.Amount)
	}
}

func TestRecordPackingRequestToUseCaseInput(t *testing.T) {
	req := RecordPackingRequest{
		Mode:        "unloading",
		Workers:     8,
		Temperature: decimal.NewFromInt(4),
		TotalAmount: decimal.NewFromInt(1600),
	}

	input := req.ToUseCaseInput()

	if input.Mode != domain.PackingUnloading {
		t.Fatalf("expected unloading mode, got %s", input.Mode)
	}
	if input.Workers != 8 {
		t.Fatalf("expected 8 workers, got %d", input.Workers)
	}
	if !input.TotalAmount.Equal(decimal.NewFromInt(1600)) {
		t.Fatalf("expected amount 1600, got %s", input.TotalAmount)
	}
}
