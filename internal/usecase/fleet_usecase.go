package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
)

// FleetUseCase handles vehicles, drivers and driver assignment.
type FleetUseCase struct {
	vehicles VehicleRepository
	drivers  DriverRepository
	idGen    IDGenerator

	Now func() time.Time
}

// NewFleetUseCase creates a new FleetUseCase.
func NewFleetUseCase(vehicles VehicleRepository, drivers DriverRepository, idGen IDGenerator) *FleetUseCase {
	return &FleetUseCase{
		vehicles: vehicles,
		drivers:  drivers,
		idGen:    idGen,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateVehicleInput represents input for registering a vehicle.
type CreateVehicleInput struct {
	VehicleNumber    string
	Ownership        domain.VehicleOwnership
	Manufacturer     string
	Model            string
	FuelType         string
	CapacityTons     decimal.Decimal
	RentalAgency     string
	RentalRatePerDay decimal.Decimal
	Remarks          string
}

// AddVehicle registers a vehicle under its normalized number.
func (uc *FleetUseCase) AddVehicle(ctx context.Context, input CreateVehicleInput) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{
		ID:               uc.idGen.Generate(),
		VehicleNumber:    domain.NormalizeVehicleNo(input.VehicleNumber),
		Ownership:        input.Ownership,
		Manufacturer:     input.Manufacturer,
		Model:            input.Model,
		FuelType:         input.FuelType,
		CapacityTons:     input.CapacityTons,
		RentalAgency:     input.RentalAgency,
		RentalRatePerDay: input.RentalRatePerDay,
		Remarks:          input.Remarks,
		CreatedAt:        uc.Now(),
	}

	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := uc.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// ListVehicles lists the fleet, newest first.
func (uc *FleetUseCase) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	return uc.vehicles.List(ctx)
}

// CreateDriverInput represents input for registering a driver.
type CreateDriverInput struct {
	Name          string
	Phone         string
	LicenseNumber string
	Address       string
	Age           int
	AadharNumber  string
}

// AddDriver registers a driver.
func (uc *FleetUseCase) AddDriver(ctx context.Context, input CreateDriverInput) (*domain.Driver, error) {
	driver := &domain.Driver{
		ID:            uc.idGen.Generate(),
		Name:          domain.NormalizePartyName(input.Name),
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		Address:       input.Address,
		Age:           input.Age,
		AadharNumber:  input.AadharNumber,
		CreatedAt:     uc.Now(),
	}

	if err := driver.Validate(); err != nil {
		return nil, err
	}

	if err := uc.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// ListDrivers lists all drivers, newest first.
func (uc *FleetUseCase) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return uc.drivers.List(ctx)
}

// AvailableDrivers lists drivers with no vehicle assigned.
func (uc *FleetUseCase) AvailableDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return uc.drivers.ListAvailable(ctx)
}

// AssignDriver puts a free driver on a driverless vehicle.
func (uc *FleetUseCase) AssignDriver(ctx context.Context, vehicleID, driverID string) (*domain.Vehicle, error) {
	vehicle, err := uc.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.AssignedDriverID != "" {
		return nil, domain.ErrVehicleHasDriver
	}

	driver, err := uc.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if driver.AssignedVehicleID != "" {
		return nil, domain.ErrDriverAssigned
	}

	if err := uc.vehicles.SetDriver(ctx, vehicleID, driverID); err != nil {
		return nil, err
	}

	vehicle.AssignedDriverID = driverID
	return vehicle, nil
}

// UnassignDriver frees the driver currently on a vehicle.
func (uc *FleetUseCase) UnassignDriver(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := uc.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.AssignedDriverID == "" {
		return nil, domain.ErrNoDriverAssigned
	}

	if err := uc.vehicles.SetDriver(ctx, vehicleID, ""); err != nil {
		return nil, err
	}

	vehicle.AssignedDriverID = ""
	return vehicle, nil
}
