package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
)

// DashboardUseCase aggregates loadings and payments into the dashboard view.
// The rollup is derived, cacheable, and always recomputable from the records.
type DashboardUseCase struct {
	loadings  LoadingRepository
	payments  PaymentRepository
	varieties VarietyRepository
	cache     Cache
	cacheTTL  time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger

	// Now is the rollup clock; overridable in tests.
	Now func() time.Time
}

// NewDashboardUseCase creates a new DashboardUseCase. cache may be nil, in
// which case every call recomputes.
func NewDashboardUseCase(
	loadings LoadingRepository,
	payments PaymentRepository,
	varieties VarietyRepository,
	cache Cache,
	cacheTTL time.Duration,
	m *metrics.Metrics,
) *DashboardUseCase {
	return &DashboardUseCase{
		loadings:  loadings,
		payments:  payments,
		varieties: varieties,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   m,
		logger:    slog.Default(),
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// topVarietyCount is how many varieties the dashboard shows.
const topVarietyCount = 6

// Metrics returns the dashboard rollup as of now, served from cache when a
// fresh copy exists. A cache failure is logged and treated as a miss; the
// rollup itself never depends on the cache being up.
func (uc *DashboardUseCase) Metrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	asOf := uc.Now()
	key := fmt.Sprintf("dashboard:%s", asOf.Format("2006-01-02"))

	if cached := uc.fromCache(ctx, key); cached != nil {
		uc.metrics.DashboardCacheHits.Inc()
		return cached, nil
	}
	uc.metrics.DashboardCacheMisses.Inc()

	timer := time.Now()
	result, err := uc.compute(ctx, asOf)
	if err != nil {
		return nil, err
	}
	uc.metrics.DashboardDuration.Observe(time.Since(timer).Seconds())

	uc.toCache(ctx, key, result)

	return result, nil
}

func (uc *DashboardUseCase) compute(ctx context.Context, asOf time.Time) (*domain.DashboardMetrics, error) {
	dayStart, dayEnd := dayBounds(asOf)
	weekStart := dayStart.AddDate(0, 0, -6)

	today, err := uc.todaySnapshot(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	weekly, err := uc.weekly(ctx, weekStart, dayEnd, asOf)
	if err != nil {
		return nil, err
	}

	// Sales-side chart: only client loading items count, purchases do not.
	itemKgs, err := uc.loadings.ListItemKgsBetween(ctx, domain.EntityClientLoading, weekStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("dashboard top varieties: %w", err)
	}

	ageing, err := uc.ageing(ctx, asOf)
	if err != nil {
		return nil, err
	}

	registry, err := uc.varieties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard variety registry: %w", err)
	}

	return &domain.DashboardMetrics{
		Today:        today,
		Weekly:       weekly,
		TopVarieties: domain.TopVarieties(itemKgs, topVarietyCount),
		Ageing:       ageing,
		Varieties:    registry,
	}, nil
}

func (uc *DashboardUseCase) todaySnapshot(ctx context.Context, dayStart, dayEnd time.Time) (domain.TodaySnapshot, error) {
	var snap domain.TodaySnapshot

	sales, err := uc.loadings.SumGrandTotalBetween(ctx, domain.EntityClientLoading, dayStart, dayEnd)
	if err != nil {
		return snap, fmt.Errorf("dashboard today sales: %w", err)
	}

	purchase := decimal.Zero
	for _, entityType := range []domain.EntityType{domain.EntityFarmerLoading, domain.EntityAgentLoading} {
		sum, err := uc.loadings.SumGrandTotalBetween(ctx, entityType, dayStart, dayEnd)
		if err != nil {
			return snap, fmt.Errorf("dashboard today purchase: %w", err)
		}
		purchase = purchase.Add(sum)
	}

	// Client loadings created today stand in for shipments awaiting dispatch.
	pending, err := uc.loadings.CountBetween(ctx, domain.EntityClientLoading, dayStart, dayEnd)
	if err != nil {
		return snap, fmt.Errorf("dashboard pending shipments: %w", err)
	}

	outstanding, err := uc.outstanding(ctx)
	if err != nil {
		return snap, err
	}

	snap.Sales = sales
	snap.Purchase = purchase
	snap.PendingShipments = pending
	snap.Outstanding = outstanding

	return snap, nil
}

// outstanding is total client billing minus total client payments across all
// time, floored at zero.
func (uc *DashboardUseCase) outstanding(ctx context.Context) (decimal.Decimal, error) {
	billed, err := uc.loadings.SumGrandTotal(ctx, domain.EntityClientLoading)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard outstanding billed: %w", err)
	}

	paid, err := uc.payments.SumAll(ctx, domain.PartyClient)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard outstanding paid: %w", err)
	}

	return domain.ComputeDue(billed, paid), nil
}

func (uc *DashboardUseCase) weekly(ctx context.Context, from, to, asOf time.Time) ([]domain.DayPoint, error) {
	sales, err := uc.loadings.ListDateTotals(ctx, domain.EntityClientLoading, from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard weekly sales: %w", err)
	}

	var purchases []domain.DateAmount
	for _, entityType := range []domain.EntityType{domain.EntityFarmerLoading, domain.EntityAgentLoading} {
		rows, err := uc.loadings.ListDateTotals(ctx, entityType, from, to)
		if err != nil {
			return nil, fmt.Errorf("dashboard weekly purchase: %w", err)
		}
		purchases = append(purchases, rows...)
	}

	return domain.WeeklySeries(sales, purchases, asOf), nil
}

func (uc *DashboardUseCase) ageing(ctx context.Context, asOf time.Time) ([]domain.AgeingBucket, error) {
	records, err := uc.loadings.ListForAgeing(ctx, domain.EntityClientLoading)
	if err != nil {
		return nil, fmt.Errorf("dashboard ageing records: %w", err)
	}

	applied, err := uc.payments.ListApplied(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard ageing payments: %w", err)
	}

	paidByRecord := make(map[string]decimal.Decimal, len(applied))
	for _, row := range applied {
		paidByRecord[row.RecordID] = paidByRecord[row.RecordID].Add(row.Amount)
	}

	return domain.ComputeAgeing(records, paidByRecord, asOf), nil
}

func (uc *DashboardUseCase) fromCache(ctx context.Context, key string) *domain.DashboardMetrics {
	if uc.cache == nil {
		return nil
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result domain.DashboardMetrics
	if err := json.Unmarshal(data, &result); err != nil {
		uc.logger.Warn("discarding unreadable cached dashboard", "error", err)
		return nil
	}

	return &result
}

func (uc *DashboardUseCase) toCache(ctx context.Context, key string, result *domain.DashboardMetrics) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("dashboard cache write failed", "error", err)
	}
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
