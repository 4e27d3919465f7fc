package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TrayWeightKgs is the fixed weight of one loaded tray.
const TrayWeightKgs = 35

// Loading represents one loading transaction (farmer, agent or client).
// Immutable once created except for corrections; never deleted in normal flow.
type Loading struct {
	ID         string
	EntityType EntityType
	PartyID    string
	PartyName  string
	BillNo     string
	SequenceNo int64
	VehicleNo  string
	Village    string
	FishCode   string
	Date       time.Time

	TotalTrays    int
	TotalLooseKgs decimal.Decimal
	TotalTrayKgs  decimal.Decimal
	TotalKgs      decimal.Decimal
	GrandTotal    decimal.Decimal

	Items     []LoadingItem
	CreatedAt time.Time
}

// LoadingItem is one fish-variety line on a loading.
type LoadingItem struct {
	ID          string
	LoadingID   string
	VarietyCode string
	NoTrays     int
	TrayKgs     decimal.Decimal
	LooseKgs    decimal.Decimal
	TotalKgs    decimal.Decimal
	PricePerKg  decimal.Decimal
	TotalPrice  decimal.Decimal
}

// ComputeWeights derives tray and total kgs from the tray count and loose kgs.
func (i *LoadingItem) ComputeWeights() {
	i.TrayKgs = decimal.NewFromInt(int64(i.NoTrays) * TrayWeightKgs)
	i.TotalKgs = i.TrayKgs.Add(i.LooseKgs)
}

// NormalizeVehicleNo uppercases a vehicle number and strips all whitespace so
// "ts 09 ab 1234" and "TS09AB1234" match the same vehicle.
func NormalizeVehicleNo(vehicleNo string) string {
	return strings.Join(strings.Fields(strings.ToUpper(vehicleNo)), "")
}

// DateAmount is a (date, amount) row used by date-bounded aggregates.
type DateAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// PartyAmount is a per-party sum used by balance aggregates.
type PartyAmount struct {
	PartyID   string
	PartyName string
	Amount    decimal.Decimal
}

// VarietyKgs is a per-variety weight total.
type VarietyKgs struct {
	Code string
	Kgs  decimal.Decimal
}
