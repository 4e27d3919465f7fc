package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

// LoadingService defines the behavior needed by LoadingHandler.
type LoadingService interface {
	CreateLoading(ctx context.Context, input usecase.CreateLoadingInput) (*domain.Loading, error)
	GetLoading(ctx context.Context, id string) (*domain.Loading, error)
	ListLoadings(ctx context.Context, input usecase.ListLoadingsInput) ([]*domain.Loading, error)
}

// SequencePeeker previews the next bill number without consuming it.
type SequencePeeker interface {
	PeekNext(ctx context.Context, entityType domain.EntityType, at time.Time) (domain.BillNumber, error)
}

// LoadingHandler handles loading-related HTTP requests.
type LoadingHandler struct {
	loadingUC  LoadingService
	sequenceUC SequencePeeker
}

// NewLoadingHandler creates a new LoadingHandler.
func NewLoadingHandler(loadingUC LoadingService, sequenceUC SequencePeeker) *LoadingHandler {
	return &LoadingHandler{loadingUC: loadingUC, sequenceUC: sequenceUC}
}

// Create creates a new loading of the type named in the URL.
func (h *LoadingHandler) Create(w http.ResponseWriter, r *http.Request) {
	entityType, ok := loadingEntityType(chi.URLParam(r, "type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown loading type", chi.URLParam(r, "type"))
		return
	}

	var req dto.CreateLoadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	loading, err := h.loadingUC.CreateLoading(r.Context(), req.ToUseCaseInput(entityType))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create loading", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LoadingFromDomain(loading))
}

// Get retrieves a loading by ID.
func (h *LoadingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing loading ID", "")
		return
	}

	loading, err := h.loadingUC.GetLoading(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get loading", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoadingFromDomain(loading))
}

// List lists loadings of the type named in the URL, newest first.
func (h *LoadingHandler) List(w http.ResponseWriter, r *http.Request) {
	entityType, ok := loadingEntityType(chi.URLParam(r, "type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown loading type", chi.URLParam(r, "type"))
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	loadings, err := h.loadingUC.ListLoadings(r.Context(), usecase.ListLoadingsInput{
		EntityType: entityType,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list loadings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLoadingsResponse{
		Loadings: dto.LoadingsFromDomain(loadings),
		Total:    int64(len(loadings)),
	})
}

// NextBillNo previews the next bill number for the loading type without
// consuming it. Two consecutive calls return the same number.
func (h *LoadingHandler) NextBillNo(w http.ResponseWriter, r *http.Request) {
	entityType, ok := loadingEntityType(chi.URLParam(r, "type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown loading type", chi.URLParam(r, "type"))
		return
	}

	bill, err := h.sequenceUC.PeekNext(r.Context(), entityType, time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to peek bill number", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillNumberFromDomain(bill))
}
