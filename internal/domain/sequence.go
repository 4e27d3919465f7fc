package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// EntityType identifies which bill sequence a record draws from.
type EntityType string

const (
	EntityFarmerLoading EntityType = "farmer"
	EntityAgentLoading  EntityType = "agent"
	EntityClientLoading EntityType = "client"
	EntityPacking       EntityType = "packing"
	EntityInvoice       EntityType = "invoice"
)

// EntityTypes lists every known entity type.
var EntityTypes = []EntityType{
	EntityFarmerLoading,
	EntityAgentLoading,
	EntityClientLoading,
	EntityPacking,
	EntityInvoice,
}

// Valid reports whether the entity type is known.
func (e EntityType) Valid() bool {
	switch e {
	case EntityFarmerLoading, EntityAgentLoading, EntityClientLoading, EntityPacking, EntityInvoice:
		return true
	}
	return false
}

// Prefix returns the bill-number prefix for the entity type.
func (e EntityType) Prefix() string {
	switch e {
	case EntityFarmerLoading:
		return "RS-Farmer"
	case EntityAgentLoading:
		return "RS-Agent"
	case EntityClientLoading:
		return "RS-Client"
	case EntityPacking:
		return "RS-PACKING"
	case EntityInvoice:
		return "RS-INV"
	}
	return ""
}

// SequenceCounter is the durable integer state a bill number is derived from.
// Exactly one counter exists per (entity type, year); it only increases.
type SequenceCounter struct {
	EntityType EntityType
	Year       int
	LastValue  int64
	UpdatedAt  time.Time
}

// BillNumber is an issued (or previewed) bill number together with the raw
// sequence value it was derived from.
type BillNumber struct {
	BillNo   string
	Sequence int64
}

// FormatBillNo renders a bill number as "{PREFIX}-{YY}-{NNNN}". The sequence
// is zero-padded to four digits; beyond 9999 it is rendered as-is.
func FormatBillNo(entityType EntityType, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%02d-%s", entityType.Prefix(), at.Year()%100, formatSequence(seq))
}

func formatSequence(seq int64) string {
	if seq <= 9999 {
		return fmt.Sprintf("%04d", seq)
	}
	return strconv.FormatInt(seq, 10)
}

var billNoPattern = regexp.MustCompile(`^(.+)-(\d{2})-(\d+)$`)

// ParseBillNo extracts the two-digit year and trailing sequence from a
// formatted bill number. Kept only to seed counters from records that predate
// the counters table; the persisted counter is the source of truth afterwards.
func ParseBillNo(billNo string) (year int, seq int64, ok bool) {
	m := billNoPattern.FindStringSubmatch(billNo)
	if m == nil {
		return 0, 0, false
	}

	year, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}

	seq, err = strconv.ParseInt(m[3], 10, 64)
	if err != nil || seq < 1 {
		return 0, 0, false
	}

	return year, seq, true
}
