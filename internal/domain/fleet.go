package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VehicleOwnership says whether a vehicle is company-owned or rented in.
type VehicleOwnership string

const (
	OwnershipOwn  VehicleOwnership = "OWN"
	OwnershipRent VehicleOwnership = "RENT"
)

// Valid reports whether the ownership is a known value.
func (o VehicleOwnership) Valid() bool {
	return o == OwnershipOwn || o == OwnershipRent
}

// Vehicle is a truck in the fleet. The number is stored normalized
// (uppercased, no spaces) so loadings can reference it however it was typed.
type Vehicle struct {
	ID               string
	VehicleNumber    string
	Ownership        VehicleOwnership
	Manufacturer     string
	Model            string
	FuelType         string
	CapacityTons     decimal.Decimal
	RentalAgency     string
	RentalRatePerDay decimal.Decimal
	AssignedDriverID string
	Remarks          string
	CreatedAt        time.Time
}

// Validate checks the fields required to register the vehicle.
func (v *Vehicle) Validate() error {
	if strings.TrimSpace(v.VehicleNumber) == "" {
		return ErrMissingVehicle
	}

	if !v.Ownership.Valid() {
		return ErrInvalidOwnership
	}

	if v.Ownership == OwnershipRent {
		if strings.TrimSpace(v.RentalAgency) == "" || !v.RentalRatePerDay.IsPositive() {
			return ErrMissingRental
		}
	}

	return nil
}

// Driver can be assigned to at most one vehicle at a time.
type Driver struct {
	ID            string
	Name          string
	Phone         string
	LicenseNumber string
	Address       string
	Age           int
	AadharNumber  string
	// AssignedVehicleID is empty while the driver is free.
	AssignedVehicleID string
	CreatedAt         time.Time
}

// Validate checks the fields required to register the driver.
func (d *Driver) Validate() error {
	for _, field := range []string{d.Name, d.Phone, d.LicenseNumber, d.Address, d.AadharNumber} {
		if strings.TrimSpace(field) == "" {
			return ErrInvalidDriver
		}
	}

	if d.Age <= 0 {
		return ErrInvalidDriver
	}

	return nil
}
