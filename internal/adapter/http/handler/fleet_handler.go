package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

// FleetService defines the behavior needed by FleetHandler.
type FleetService interface {
	AddVehicle(ctx context.Context, input usecase.CreateVehicleInput) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	AddDriver(ctx context.Context, input usecase.CreateDriverInput) (*domain.Driver, error)
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	AvailableDrivers(ctx context.Context) ([]*domain.Driver, error)
	AssignDriver(ctx context.Context, vehicleID, driverID string) (*domain.Vehicle, error)
	UnassignDriver(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
}

// FleetHandler handles vehicle and driver HTTP requests.
type FleetHandler struct {
	fleetUC FleetService
}

// NewFleetHandler creates a new FleetHandler.
func NewFleetHandler(fleetUC FleetService) *FleetHandler {
	return &FleetHandler{fleetUC: fleetUC}
}

// CreateVehicle registers a new vehicle.
func (h *FleetHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	vehicle, err := h.fleetUC.AddVehicle(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VehicleFromDomain(vehicle))
}

// ListVehicles lists the fleet, newest first.
func (h *FleetHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.fleetUC.ListVehicles(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list vehicles", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VehiclesFromDomain(vehicles))
}

// CreateDriver registers a new driver.
func (h *FleetHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	driver, err := h.fleetUC.AddDriver(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register driver", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DriverFromDomain(driver))
}

// ListDrivers lists all drivers, newest first.
func (h *FleetHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.fleetUC.ListDrivers(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list drivers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DriversFromDomain(drivers))
}

// AvailableDrivers lists drivers with no vehicle assigned.
func (h *FleetHandler) AvailableDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.fleetUC.AvailableDrivers(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list available drivers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DriversFromDomain(drivers))
}

// AssignDriver puts a free driver on a driverless vehicle.
func (h *FleetHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.VehicleID == "" || req.DriverID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body", "vehicle_id and driver_id are required")
		return
	}

	vehicle, err := h.fleetUC.AssignDriver(r.Context(), req.VehicleID, req.DriverID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assign driver", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VehicleFromDomain(vehicle))
}

// UnassignDriver frees the driver currently on a vehicle.
func (h *FleetHandler) UnassignDriver(w http.ResponseWriter, r *http.Request) {
	var req dto.UnassignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.VehicleID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body", "vehicle_id is required")
		return
	}

	vehicle, err := h.fleetUC.UnassignDriver(r.Context(), req.VehicleID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to unassign driver", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VehicleFromDomain(vehicle))
}
