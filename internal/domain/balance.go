package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyBalance is the derived billed/paid/due view for one party.
// Due is never negative.
type PartyBalance struct {
	PartyID   string
	PartyName string
	Billed    decimal.Decimal
	Paid      decimal.Decimal
	Due       decimal.Decimal
}

// ComputeDue returns max(0, billed - paid).
func ComputeDue(billed, paid decimal.Decimal) decimal.Decimal {
	due := billed.Sub(paid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// Ageing bucket labels, oldest last. Upper bounds are inclusive.
const (
	Bucket0To7   = "0-7 days"
	Bucket8To15  = "8-15 days"
	Bucket16To30 = "16-30 days"
	BucketOver30 = "> 30 days"
)

// AgeingBucket is a due-amount total for one age window.
type AgeingBucket struct {
	Bucket string
	Amount decimal.Decimal
}

// AgeingRecord is the slice of a billed record the ageing computation needs.
type AgeingRecord struct {
	ID     string
	Date   time.Time
	Amount decimal.Decimal
}

// AgeInDays returns asOf - on in whole days, comparing calendar days rather
// than raw durations so partial days never shift a record across a bucket.
func AgeInDays(asOf, on time.Time) int {
	return int(startOfDay(asOf).Sub(startOfDay(on)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func bucketLabel(age int) string {
	switch {
	case age <= 7:
		return Bucket0To7
	case age <= 15:
		return Bucket8To15
	case age <= 30:
		return Bucket16To30
	default:
		return BucketOver30
	}
}

// ComputeAgeing buckets the unpaid remainder of each record by age as of
// asOf. paidByRecord maps record IDs to the payments applied to them.
// Records that are fully paid, or that carry no date, contribute nothing.
// The result always holds all four buckets in order, zeros included.
func ComputeAgeing(records []AgeingRecord, paidByRecord map[string]decimal.Decimal, asOf time.Time) []AgeingBucket {
	totals := map[string]decimal.Decimal{
		Bucket0To7:   decimal.Zero,
		Bucket8To15:  decimal.Zero,
		Bucket16To30: decimal.Zero,
		BucketOver30: decimal.Zero,
	}

	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}

		remaining := ComputeDue(rec.Amount, paidByRecord[rec.ID])
		if !remaining.IsPositive() {
			continue
		}

		label := bucketLabel(AgeInDays(asOf, rec.Date))
		totals[label] = totals[label].Add(remaining)
	}

	return []AgeingBucket{
		{Bucket: Bucket0To7, Amount: totals[Bucket0To7]},
		{Bucket: Bucket8To15, Amount: totals[Bucket8To15]},
		{Bucket: Bucket16To30, Amount: totals[Bucket16To30]},
		{Bucket: BucketOver30, Amount: totals[BucketOver30]},
	}
}

// DayPoint is one point on the weekly sales/purchase series.
type DayPoint struct {
	Label    string
	Sales    decimal.Decimal
	Purchase decimal.Decimal
}

// WeeklySeries folds raw (date, amount) rows into exactly seven points ending
// on asOf, each labeled with the weekday short name. Rows without a date are
// skipped; rows outside the window contribute nothing.
func WeeklySeries(sales, purchases []DateAmount, asOf time.Time) []DayPoint {
	points := make([]DayPoint, 7)
	start := startOfDay(asOf).AddDate(0, 0, -6)

	for i := range points {
		day := start.AddDate(0, 0, i)
		points[i] = DayPoint{
			Label:    day.Format("Mon"),
			Sales:    sumOnDay(sales, day),
			Purchase: sumOnDay(purchases, day),
		}
	}

	return points
}

func sumOnDay(rows []DateAmount, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		if startOfDay(row.Date).Equal(day) {
			total = total.Add(row.Amount)
		}
	}
	return total
}

// TopVarieties aggregates per-item variety weights and returns the top n by
// total kgs, descending. Ties keep the order in which a variety was first
// encountered in the input.
func TopVarieties(items []VarietyKgs, n int) []VarietyKgs {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0, len(items))

	for _, it := range items {
		if _, seen := totals[it.Code]; !seen {
			order = append(order, it.Code)
		}
		totals[it.Code] = totals[it.Code].Add(it.Kgs)
	}

	ranked := make([]VarietyKgs, 0, len(order))
	for _, code := range order {
		ranked = append(ranked, VarietyKgs{Code: code, Kgs: totals[code]})
	}

	// Stable insertion sort: equal totals keep first-encountered order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Kgs.GreaterThan(ranked[j-1].Kgs); j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
