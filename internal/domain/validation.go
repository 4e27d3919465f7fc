package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxPartyNameLength = 255
	MaxBillAmount      = "1000000000" // 100 crore, well past anything real
)

// ValidatePartyName validates the identifying party name on a record.
func ValidatePartyName(name string) error {
	name = NormalizePartyName(name)

	if name == "" {
		return ErrMissingParty
	}

	if len(name) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrMissingParty, MaxPartyNameLength)
	}

	return nil
}

// ValidateAmount validates a monetary amount on a payment or record.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxBillAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: exceeds maximum of %s", ErrInvalidAmount, MaxBillAmount)
	}

	return nil
}

// ValidateVehicleNo validates the vehicle number on a loading.
func ValidateVehicleNo(vehicleNo string) error {
	if strings.TrimSpace(vehicleNo) == "" {
		return ErrMissingVehicle
	}
	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 500
	const defaultPageSize = 50

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
