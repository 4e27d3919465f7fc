package domain

import "github.com/shopspring/decimal"

// TodaySnapshot is the same-day slice of the dashboard.
type TodaySnapshot struct {
	Sales            decimal.Decimal
	Purchase         decimal.Decimal
	PendingShipments int64
	Outstanding      decimal.Decimal
}

// DashboardMetrics is the aggregated view served to the dashboard. It is
// derived on demand and safe to recompute from scratch at any time.
type DashboardMetrics struct {
	Today        TodaySnapshot
	Weekly       []DayPoint
	TopVarieties []VarietyKgs
	Ageing       []AgeingBucket
	Varieties    []FishVariety
}

// AppliedAmount is the payment total applied against one specific record.
type AppliedAmount struct {
	RecordID string
	Amount   decimal.Decimal
}
