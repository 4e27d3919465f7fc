package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
	"github.com/iho/fishtrade/internal/usecase/mocks"
)

type fleetFixture struct {
	uc       *usecase.FleetUseCase
	vehicles *mocks.MockVehicleRepository
	drivers  *mocks.MockDriverRepository
}

func newFleetFixture() *fleetFixture {
	vehicles := mocks.NewMockVehicleRepository()
	drivers := mocks.NewMockDriverRepository()
	drivers.Vehicles = vehicles

	uc := usecase.NewFleetUseCase(vehicles, drivers, mocks.NewMockIDGenerator())

	return &fleetFixture{uc: uc, vehicles: vehicles, drivers: drivers}
}

func validVehicleInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		VehicleNumber: "ts 09 ab 1234",
		Ownership:     domain.OwnershipOwn,
		Manufacturer:  "Tata",
		Model:         "407",
		FuelType:      "Diesel",
		CapacityTons:  decimal.NewFromInt(2),
	}
}

func validDriverInput() usecase.CreateDriverInput {
	return usecase.CreateDriverInput{
		Name:          "Suresh Babu",
		Phone:         "9876543210",
		LicenseNumber: "TS-2019-0042",
		Address:       "Eluru",
		Age:           34,
		AadharNumber:  "1234-5678-9012",
	}
}

func TestFleetUseCase_AddVehicle(t *testing.T) {
	t.Run("stores the normalized number", func(t *testing.T) {
		f := newFleetFixture()

		vehicle, err := f.uc.AddVehicle(context.Background(), validVehicleInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vehicle.VehicleNumber != "TS09AB1234" {
			t.Errorf("expected TS09AB1234, got %s", vehicle.VehicleNumber)
		}
	})

	t.Run("rejects a duplicate number however it is typed", func(t *testing.T) {
		f := newFleetFixture()

		if _, err := f.uc.AddVehicle(context.Background(), validVehicleInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := validVehicleInput()
		input.VehicleNumber = "TS09 AB1234"
		if _, err := f.uc.AddVehicle(context.Background(), input); !errors.Is(err, domain.ErrDuplicateVehicle) {
			t.Errorf("expected ErrDuplicateVehicle, got %v", err)
		}
	})

	t.Run("rented vehicle needs agency and rate", func(t *testing.T) {
		f := newFleetFixture()

		input := validVehicleInput()
		input.Ownership = domain.OwnershipRent
		if _, err := f.uc.AddVehicle(context.Background(), input); !errors.Is(err, domain.ErrMissingRental) {
			t.Errorf("expected ErrMissingRental, got %v", err)
		}

		input.RentalAgency = "Sri Lakshmi Transport"
		input.RentalRatePerDay = decimal.NewFromInt(1500)
		if _, err := f.uc.AddVehicle(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an unknown ownership", func(t *testing.T) {
		f := newFleetFixture()

		input := validVehicleInput()
		input.Ownership = "LEASE"
		if _, err := f.uc.AddVehicle(context.Background(), input); !errors.Is(err, domain.ErrInvalidOwnership) {
			t.Errorf("expected ErrInvalidOwnership, got %v", err)
		}
	})
}

func TestFleetUseCase_AddDriver(t *testing.T) {
	t.Run("rejects incomplete details", func(t *testing.T) {
		f := newFleetFixture()

		input := validDriverInput()
		input.LicenseNumber = ""
		if _, err := f.uc.AddDriver(context.Background(), input); !errors.Is(err, domain.ErrInvalidDriver) {
			t.Errorf("expected ErrInvalidDriver, got %v", err)
		}
	})

	t.Run("rejects a reused license number", func(t *testing.T) {
		f := newFleetFixture()

		if _, err := f.uc.AddDriver(context.Background(), validDriverInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := validDriverInput()
		input.Phone = "9000000000"
		input.AadharNumber = "9999-8888-7777"
		if _, err := f.uc.AddDriver(context.Background(), input); !errors.Is(err, domain.ErrDuplicateDriver) {
			t.Errorf("expected ErrDuplicateDriver, got %v", err)
		}
	})
}

func TestFleetUseCase_AssignDriver(t *testing.T) {
	seed := func(t *testing.T, f *fleetFixture) (vehicleID, driverID string) {
		t.Helper()
		vehicle, err := f.uc.AddVehicle(context.Background(), validVehicleInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		driver, err := f.uc.AddDriver(context.Background(), validDriverInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return vehicle.ID, driver.ID
	}

	t.Run("assigns a free driver to a driverless vehicle", func(t *testing.T) {
		f := newFleetFixture()
		vehicleID, driverID := seed(t, f)

		vehicle, err := f.uc.AssignDriver(context.Background(), vehicleID, driverID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vehicle.AssignedDriverID != driverID {
			t.Errorf("expected %s, got %s", driverID, vehicle.AssignedDriverID)
		}
	})

	t.Run("missing vehicle or driver is not found", func(t *testing.T) {
		f := newFleetFixture()
		vehicleID, _ := seed(t, f)

		if _, err := f.uc.AssignDriver(context.Background(), "missing", "missing"); !errors.Is(err, domain.ErrVehicleNotFound) {
			t.Errorf("expected ErrVehicleNotFound, got %v", err)
		}
		if _, err := f.uc.AssignDriver(context.Background(), vehicleID, "missing"); !errors.Is(err, domain.ErrDriverNotFound) {
			t.Errorf("expected ErrDriverNotFound, got %v", err)
		}
	})

	t.Run("occupied vehicle refuses a second driver", func(t *testing.T) {
		f := newFleetFixture()
		vehicleID, driverID := seed(t, f)

		if _, err := f.uc.AssignDriver(context.Background(), vehicleID, driverID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		other := validDriverInput()
		other.Phone = "9111111111"
		other.LicenseNumber = "TS-2020-0077"
		other.AadharNumber = "5555-6666-7777"
		driver, err := f.uc.AddDriver(context.Background(), other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.uc.AssignDriver(context.Background(), vehicleID, driver.ID); !errors.Is(err, domain.ErrVehicleHasDriver) {
			t.Errorf("expected ErrVehicleHasDriver, got %v", err)
		}
	})

	t.Run("assigned driver refuses a second vehicle", func(t *testing.T) {
		f := newFleetFixture()
		vehicleID, driverID := seed(t, f)

		if _, err := f.uc.AssignDriver(context.Background(), vehicleID, driverID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := validVehicleInput()
		second.VehicleNumber = "AP 02 CD 5678"
		vehicle, err := f.uc.AddVehicle(context.Background(), second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.uc.AssignDriver(context.Background(), vehicle.ID, driverID); !errors.Is(err, domain.ErrDriverAssigned) {
			t.Errorf("expected ErrDriverAssigned, got %v", err)
		}
	})

	t.Run("unassign frees the driver", func(t *testing.T) {
		f := newFleetFixture()
		vehicleID, driverID := seed(t, f)

		if _, err := f.uc.AssignDriver(context.Background(), vehicleID, driverID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		vehicle, err := f.uc.UnassignDriver(context.Background(), vehicleID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vehicle.AssignedDriverID != "" {
			t.Errorf("expected no driver, got %s", vehicle.AssignedDriverID)
		}

		available, err := f.uc.AvailableDrivers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(available) != 1 || available[0].ID != driverID {
			t.Errorf("expected driver %s back in the pool, got %v", driverID, available)
		}
	})

	t.Run("unassign without a driver fails", func(t *testing.T) {
		f := newFleetFixture()
		vehicleID, _ := seed(t, f)

		if _, err := f.uc.UnassignDriver(context.Background(), vehicleID); !errors.Is(err, domain.ErrNoDriverAssigned) {
			t.Errorf("expected ErrNoDriverAssigned, got %v", err)
		}
	})
}

func TestFleetUseCase_AvailableDrivers(t *testing.T) {
	f := newFleetFixture()

	vehicle, err := f.uc.AddVehicle(context.Background(), validVehicleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	busy, err := f.uc.AddDriver(context.Background(), validDriverInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	free := validDriverInput()
	free.Name = "Anand Rao"
	free.Phone = "9222222222"
	free.LicenseNumber = "TS-2021-0101"
	free.AadharNumber = "1111-2222-3333"
	freeDriver, err := f.uc.AddDriver(context.Background(), free)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.uc.AssignDriver(context.Background(), vehicle.ID, busy.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	available, err := f.uc.AvailableDrivers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].ID != freeDriver.ID {
		t.Errorf("expected only %s available, got %v", freeDriver.ID, available)
	}
}
