package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

// PackingService defines the behavior needed by PackingHandler.
type PackingService interface {
	RecordPacking(ctx context.Context, input usecase.RecordPackingInput) (*domain.PackingRecord, error)
	ListPackings(ctx context.Context, limit, offset int) ([]*domain.PackingRecord, error)
}

// PackingHandler handles packing-related HTTP requests.
type PackingHandler struct {
	packingUC  PackingService
	sequenceUC SequencePeeker
}

// NewPackingHandler creates a new PackingHandler.
func NewPackingHandler(packingUC PackingService, sequenceUC SequencePeeker) *PackingHandler {
	return &PackingHandler{packingUC: packingUC, sequenceUC: sequenceUC}
}

// Create records a new packing operation.
func (h *PackingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.packingUC.RecordPacking(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record packing", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PackingFromDomain(record))
}

// List lists packing records, newest first.
func (h *PackingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.packingUC.ListPackings(r.Context(), limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list packing records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PackingsFromDomain(records))
}

// NextBillNo previews the next RS-PACKING bill number without consuming it.
func (h *PackingHandler) NextBillNo(w http.ResponseWriter, r *http.Request) {
	bill, err := h.sequenceUC.PeekNext(r.Context(), domain.EntityPacking, time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to peek bill number", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillNumberFromDomain(bill))
}
