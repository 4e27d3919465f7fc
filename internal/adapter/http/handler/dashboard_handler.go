package handler

import (
	"context"
	"net/http"

	"github.com/iho/fishtrade/internal/adapter/http/dto"
	"github.com/iho/fishtrade/internal/domain"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Metrics(ctx context.Context) (*domain.DashboardMetrics, error)
}

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	dashboardUC DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Get returns the dashboard rollup as of today.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardUC.Metrics(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromDomain(metrics))
}
