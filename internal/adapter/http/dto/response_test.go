package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
)

func TestLoadingFromDomain(t *testing.T) {
	loading := &domain.Loading{
		ID:         "l-1",
		EntityType: domain.EntityClientLoading,
		PartyID:    "party-1",
		PartyName:  "Ravi Traders",
		BillNo:     "RS-Client-25-0001",
		VehicleNo:  "TS09AB1234",
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		TotalTrays: 3,
		TotalKgs:   decimal.NewFromInt(117),
		GrandTotal: decimal.NewFromInt(9360),
		Items: []domain.LoadingItem{
			{ID: "i-1", VarietyCode: "ROHU", NoTrays: 3, TrayKgs: decimal.NewFromInt(105), LooseKgs: decimal.NewFromInt(12), TotalKgs: decimal.NewFromInt(117)},
		},
	}

	resp := LoadingFromDomain(loading)

	if resp.BillNo != "RS-Client-25-0001" || resp.EntityType != "client" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Items) != 1 || resp.Items[0].VarietyCode != "ROHU" {
		t.Fatalf("expected one ROHU item, got %+v", resp.Items)
	}
	if !resp.TotalKgs.Equal(decimal.NewFromInt(117)) {
		t.Fatalf("expected 117 kgs, got %s", resp.TotalKgs)
	}
}

func TestPartyBalancesFromDomain(t *testing.T) {
	balances := []domain.PartyBalance{
		{PartyID: "p-1", PartyName: "Ravi Traders", Billed: decimal.NewFromInt(10000), Paid: decimal.NewFromInt(4000), Due: decimal.NewFromInt(6000)},
		{PartyID: "p-2", PartyName: "Krishna Fisheries", Billed: decimal.NewFromInt(2000), Paid: decimal.NewFromInt(2500), Due: decimal.Zero},
	}

	resp := PartyBalancesFromDomain(balances)

	if len(resp) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp))
	}
	if !resp[0].Due.Equal(decimal.NewFromInt(6000)) {
		t.Fatalf("expected due 6000, got %s", resp[0].Due)
	}
	if !resp[1].Due.IsZero() {
		t.Fatalf("expected overpaid party due zero, got %s", resp[1].Due)
	}
}

func TestDashboardFromDomain(t *testing.T) {
	m := &domain.DashboardMetrics{
		Today: domain.TodaySnapshot{
			Sales:            decimal.NewFromInt(9000),
			Purchase:         decimal.NewFromInt(5000),
			PendingShipments: 2,
			Outstanding:      decimal.NewFromInt(6000),
		},
		Weekly: []domain.DayPoint{
			{Label: "Wed", Sales: decimal.NewFromInt(100), Purchase: decimal.Zero},
		},
		TopVarieties: []domain.VarietyKgs{
			{Code: "KATLA", Kgs: decimal.NewFromInt(140)},
		},
		Ageing: []domain.AgeingBucket{
			{Bucket: domain.Bucket0To7, Amount: decimal.NewFromInt(1000)},
		},
	}

	resp := DashboardFromDomain(m)

	if resp.Today.PendingShipments != 2 || !resp.Today.Outstanding.Equal(decimal.NewFromInt(6000)) {
		t.Fatalf("unexpected today slice: %+v", resp.Today)
	}
	if len(resp.Weekly) != 1 || resp.Weekly[0].Label != "Wed" {
		t.Fatalf("unexpected weekly series: %+v", resp.Weekly)
	}
	if len(resp.TopVarieties) != 1 || resp.TopVarieties[0].Code != "KATLA" {
		t.Fatalf("unexpected varieties: %+v", resp.TopVarieties)
	}
	if resp.Ageing[0].Bucket != domain.Bucket0To7 {
		t.Fatalf("unexpected ageing: %+v", resp.Ageing)
	}
}
