package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrLoadingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrPackingNotFound),
		errors.Is(err, domain.ErrPartyNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrDriverNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownEntityType),
		errors.Is(err, domain.ErrMissingParty),
		errors.Is(err, domain.ErrMissingVehicle),
		errors.Is(err, domain.ErrUnknownVehicle),
		errors.Is(err, domain.ErrNoItems),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPaymentMode),
		errors.Is(err, domain.ErrInvalidPackingMode),
		errors.Is(err, domain.ErrInvalidPartyType),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidOwnership),
		errors.Is(err, domain.ErrMissingRental),
		errors.Is(err, domain.ErrInvalidDriver),
		errors.Is(err, domain.ErrNoDriverAssigned),
		errors.Is(err, domain.ErrInvalidVariety):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateBillNo),
		errors.Is(err, domain.ErrDuplicateVehicle),
		errors.Is(err, domain.ErrDuplicateDriver),
		errors.Is(err, domain.ErrDuplicateVariety),
		errors.Is(err, domain.ErrVehicleHasDriver),
		errors.Is(err, domain.ErrDriverAssigned):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSequenceExhausted),
		errors.Is(err, domain.ErrCounterUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// loadingEntityType resolves the {type} URL segment for loading routes.
// Only the three loading kinds are reachable here; packing and invoice
// sequences have their own routes.
func loadingEntityType(segment string) (domain.EntityType, bool) {
	et := domain.EntityType(segment)
	switch et {
	case domain.EntityFarmerLoading, domain.EntityAgentLoading, domain.EntityClientLoading:
		return et, true
	}
	return "", false
}
