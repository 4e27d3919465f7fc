package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Bill sequence metrics
	BillsAllocated    *prometheus.CounterVec
	AllocationRetries prometheus.Counter
	AllocationErrors  *prometheus.CounterVec
	PeekFallbacks     prometheus.Counter

	// Record metrics
	LoadingsCreated *prometheus.CounterVec
	PaymentsCreated *prometheus.CounterVec
	PackingCreated  prometheus.Counter

	// Dashboard metrics
	DashboardCacheHits   prometheus.Counter
	DashboardCacheMisses prometheus.Counter
	DashboardDuration    prometheus.Histogram
}

// New creates and registers all Prometheus metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BillsAllocated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fishtrade_bills_allocated_total",
				Help: "Total bill numbers allocated by entity type",
			},
			[]string{"entity_type"},
		),
		AllocationRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "fishtrade_bill_allocation_retries_total",
			Help: "Total retried bill allocations after a transient conflict",
		}),
		AllocationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fishtrade_bill_allocation_errors_total",
				Help: "Total failed bill allocations by entity type",
			},
			[]string{"entity_type"},
		),
		PeekFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "fishtrade_bill_peek_fallbacks_total",
			Help: "Total bill previews served from the sequence=1 fallback",
		}),

		LoadingsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fishtrade_loadings_created_total",
				Help: "Total loadings created by entity type",
			},
			[]string{"entity_type"},
		),
		PaymentsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fishtrade_payments_created_total",
				Help: "Total payments recorded by party type and mode",
			},
			[]string{"party_type", "mode"},
		),
		PackingCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fishtrade_packing_records_created_total",
			Help: "Total packing records created",
		}),

		DashboardCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "fishtrade_dashboard_cache_hits_total",
			Help: "Total dashboard rollups served from cache",
		}),
		DashboardCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "fishtrade_dashboard_cache_misses_total",
			Help: "Total dashboard rollups recomputed on cache miss",
		}),
		DashboardDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fishtrade_dashboard_rollup_duration_seconds",
			Help:    "Duration of dashboard rollup computation",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
