package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
)

// VarietyService defines the behavior needed by VarietyHandler.
type VarietyService interface {
	AddVariety(ctx context.Context, code, name string) (domain.FishVariety, error)
	ListVarieties(ctx context.Context) ([]domain.FishVariety, error)
}

// VarietyHandler handles fish variety registry HTTP requests.
type VarietyHandler struct {
	varietyUC VarietyService
}

// NewVarietyHandler creates a new VarietyHandler.
func NewVarietyHandler(varietyUC VarietyService) *VarietyHandler {
	return &VarietyHandler{varietyUC: varietyUC}
}

// Create adds a variety code to the registry.
func (h *VarietyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVarietyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	variety, err := h.varietyUC.AddVariety(r.Context(), req.Code, req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add variety", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VarietyResponse{Code: variety.Code, Name: variety.Name})
}

// List returns the registry ordered by name.
func (h *VarietyHandler) List(w http.ResponseWriter, r *http.Request) {
	varieties, err := h.varietyUC.ListVarieties(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list varieties", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VarietiesFromDomain(varieties))
}
