package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackingMode distinguishes loading from unloading work.
type PackingMode string

const (
	PackingLoading   PackingMode = "loading"
	PackingUnloading PackingMode = "unloading"
)

// Valid reports whether the packing mode is known.
func (m PackingMode) Valid() bool {
	return m == PackingLoading || m == PackingUnloading
}

// PackingRecord captures one packing operation and its cost.
type PackingRecord struct {
	ID             string
	BillNo         string
	SequenceNo     int64
	Mode           PackingMode
	SourceRecordID string
	Workers        int
	Temperature    decimal.Decimal
	TotalAmount    decimal.Decimal
	CreatedAt      time.Time
}
