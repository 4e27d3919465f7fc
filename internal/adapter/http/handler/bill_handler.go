package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
)

// SequenceService defines the behavior needed by BillHandler.
type SequenceService interface {
	PeekNext(ctx context.Context, entityType domain.EntityType, at time.Time) (domain.BillNumber, error)
	Allocate(ctx context.Context, entityType domain.EntityType, at time.Time) (domain.BillNumber, error)
}

// BillHandler exposes the bill-number sequences directly. Loadings and
// packing allocate inside their own create transaction; these routes serve
// callers that need a standalone number, like invoices.
type BillHandler struct {
	sequenceUC SequenceService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(sequenceUC SequenceService) *BillHandler {
	return &BillHandler{sequenceUC: sequenceUC}
}

// Next previews the next bill number for the entity type without consuming
// it. Repeated calls return the same number until someone allocates.
func (h *BillHandler) Next(w http.ResponseWriter, r *http.Request) {
	entityType := domain.EntityType(chi.URLParam(r, "type"))
	if !entityType.Valid() {
		writeError(w, http.StatusBadRequest, "unknown entity type", chi.URLParam(r, "type"))
		return
	}

	bill, err := h.sequenceUC.PeekNext(r.Context(), entityType, time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to peek bill number", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillNumberFromDomain(bill))
}

// Allocate consumes and returns the next bill number for the entity type.
func (h *BillHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	entityType := domain.EntityType(chi.URLParam(r, "type"))
	if !entityType.Valid() {
		writeError(w, http.StatusBadRequest, "unknown entity type", chi.URLParam(r, "type"))
		return
	}

	bill, err := h.sequenceUC.Allocate(r.Context(), entityType, time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to allocate bill number", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BillNumberFromDomain(bill))
}
