package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeDue(t *testing.T) {
	tests := []struct {
		name     string
		billed   int64
		paid     int64
		expected int64
	}{
		{"partially paid", 1500, 300, 1200},
		{"nothing paid", 1000, 0, 1000},
		{"fully paid", 500, 500, 0},
		{"overpaid floors at zero", 100, 500, 0},
		{"zero billed", 0, 50, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDue(d(tt.billed), d(tt.paid))
			if !got.Equal(d(tt.expected)) {
				t.Fatalf("expected due %d, got %s", tt.expected, got)
			}
		})
	}
}

func TestAgeInDays(t *testing.T) {
	asOf := time.Date(2025, time.June, 20, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		on       time.Time
		expected int
	}{
		{"same day", time.Date(2025, time.June, 20, 23, 0, 0, 0, time.UTC), 0},
		{"ten days, time of day ignored", time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC), 10},
		{"exactly a week", time.Date(2025, time.June, 13, 1, 0, 0, 0, time.UTC), 7},
		{"across month boundary", time.Date(2025, time.May, 21, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInDays(asOf, tt.on); got != tt.expected {
				t.Fatalf("expected age %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestComputeAgeingBucketBoundaries(t *testing.T) {
	asOf := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	daysAgo := func(n int) time.Time { return asOf.AddDate(0, 0, -n) }

	records := []AgeingRecord{
		{ID: "a", Date: daysAgo(7), Amount: d(100)},  // age 7 -> 0-7
		{ID: "b", Date: daysAgo(8), Amount: d(200)},  // age 8 -> 8-15
		{ID: "c", Date: daysAgo(10), Amount: d(100)}, // age 10 -> 8-15
		{ID: "d", Date: daysAgo(15), Amount: d(50)},  // age 15 -> 8-15
		{ID: "e", Date: daysAgo(16), Amount: d(80)},  // age 16 -> 16-30
		{ID: "f", Date: daysAgo(30), Amount: d(20)},  // age 30 -> 16-30
		{ID: "g", Date: daysAgo(31), Amount: d(500)}, // age 31 -> >30
	}

	buckets := ComputeAgeing(records, nil, asOf)

	expected := map[string]int64{
		Bucket0To7:   100,
		Bucket8To15:  350,
		Bucket16To30: 100,
		BucketOver30: 500,
	}

	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}

	for _, b := range buckets {
		if !b.Amount.Equal(d(expected[b.Bucket])) {
			t.Errorf("bucket %s: expected %d, got %s", b.Bucket, expected[b.Bucket], b.Amount)
		}
	}
}

func TestComputeAgeingAppliesPaymentsPerRecord(t *testing.T) {
	asOf := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

	records := []AgeingRecord{
		{ID: "paid", Date: asOf.AddDate(0, 0, -10), Amount: d(100)},
		{ID: "partial", Date: asOf.AddDate(0, 0, -10), Amount: d(100)},
		{ID: "overpaid", Date: asOf.AddDate(0, 0, -10), Amount: d(100)},
	}

	paid := map[string]decimal.Decimal{
		"paid":     d(100),
		"partial":  d(40),
		"overpaid": d(150),
	}

	buckets := ComputeAgeing(records, paid, asOf)

	// Only the partial record should survive, with its remainder.
	for _, b := range buckets {
		want := int64(0)
		if b.Bucket == Bucket8To15 {
			want = 60
		}
		if !b.Amount.Equal(d(want)) {
			t.Errorf("bucket %s: expected %d, got %s", b.Bucket, want, b.Amount)
		}
	}
}

func TestComputeAgeingSkipsUndatedRecords(t *testing.T) {
	asOf := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

	buckets := ComputeAgeing([]AgeingRecord{{ID: "x", Amount: d(999)}}, nil, asOf)
	for _, b := range buckets {
		if !b.Amount.IsZero() {
			t.Fatalf("expected undated record to be excluded, bucket %s has %s", b.Bucket, b.Amount)
		}
	}
}

func TestWeeklySeries(t *testing.T) {
	asOf := time.Date(2025, time.June, 20, 15, 0, 0, 0, time.UTC) // a Friday

	sales := []DateAmount{
		{Date: asOf, Amount: d(500)},
		{Date: asOf.AddDate(0, 0, -1), Amount: d(200)},
		{Date: asOf.AddDate(0, 0, -1), Amount: d(100)},
		{Date: asOf.AddDate(0, 0, -6), Amount: d(50)},
		{Date: asOf.AddDate(0, 0, -7), Amount: d(9999)}, // outside window
		{Amount: d(777)},                                // undated, skipped
	}
	purchases := []DateAmount{
		{Date: asOf.AddDate(0, 0, -2), Amount: d(300)},
	}

	points := WeeklySeries(sales, purchases, asOf)

	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	if points[6].Label != "Fri" {
		t.Fatalf("expected last point labeled Fri, got %s", points[6].Label)
	}
	if points[0].Label != "Sat" {
		t.Fatalf("expected first point labeled Sat, got %s", points[0].Label)
	}

	if !points[6].Sales.Equal(d(500)) {
		t.Errorf("expected today's sales 500, got %s", points[6].Sales)
	}
	if !points[5].Sales.Equal(d(300)) {
		t.Errorf("expected yesterday's sales 300, got %s", points[5].Sales)
	}
	if !points[0].Sales.Equal(d(50)) {
		t.Errorf("expected oldest point sales 50, got %s", points[0].Sales)
	}
	if !points[4].Purchase.Equal(d(300)) {
		t.Errorf("expected purchase 300 two days back, got %s", points[4].Purchase)
	}
}

func TestTopVarieties(t *testing.T) {
	items := []VarietyKgs{
		{Code: "ROHU", Kgs: d(100)},
		{Code: "KATLA", Kgs: d(300)},
		{Code: "ROHU", Kgs: d(150)},
		{Code: "TILAPIA", Kgs: d(250)}, // ties with ROHU total
		{Code: "MRIGAL", Kgs: d(10)},
		{Code: "SEER", Kgs: d(20)},
		{Code: "POMFRET", Kgs: d(30)},
		{Code: "PRAWN", Kgs: d(5)},
	}

	top := TopVarieties(items, 6)

	if len(top) != 6 {
		t.Fatalf("expected 6 varieties, got %d", len(top))
	}

	if top[0].Code != "KATLA" || !top[0].Kgs.Equal(d(300)) {
		t.Fatalf("expected KATLA=300 first, got %s=%s", top[0].Code, top[0].Kgs)
	}

	// ROHU (250) was encountered before TILAPIA (250): tie keeps input order.
	if top[1].Code != "ROHU" || top[2].Code != "TILAPIA" {
		t.Fatalf("expected tie broken by first encounter, got %s then %s", top[1].Code, top[2].Code)
	}

	// PRAWN (5) is the smallest and must be cut.
	for _, v := range top {
		if v.Code == "PRAWN" {
			t.Fatal("expected smallest variety to be cut from top 6")
		}
	}
}

func TestNormalizeVehicleNo(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"ts 09 ab 1234", "TS09AB1234"},
		{"  TS09AB1234 ", "TS09AB1234"},
		{"ka\t05\tmn\t777", "KA05MN777"},
	}

	for _, tt := range tests {
		if got := NormalizeVehicleNo(tt.in); got != tt.expected {
			t.Errorf("NormalizeVehicleNo(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}
