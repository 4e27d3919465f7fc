package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/iho/fishtrade/internal/adapter/http/handler"
	"github.com/iho/fishtrade/internal/adapter/http/middleware"
	"github.com/iho/fishtrade/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LoadingHandler   *handler.LoadingHandler
	PaymentHandler   *handler.PaymentHandler
	PackingHandler   *handler.PackingHandler
	BillHandler      *handler.BillHandler
	FleetHandler     *handler.FleetHandler
	VarietyHandler   *handler.VarietyHandler
	DashboardHandler *handler.DashboardHandler
	HealthHandler    *handler.HealthHandler

	// MetricsHandler serves /metrics; nil disables the route.
	MetricsHandler http.Handler

	// Logging replaces chi's default request logger when set.
	Logging *middleware.LoggingMiddleware

	IdempotencyStore usecase.IdempotencyStore
	// IdempotencyTTL bounds how long replayed responses stay valid; zero
	// falls back to the middleware default.
	IdempotencyTTL time.Duration
	RateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}

	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddlewareTTL(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Loadings: farmer, agent and client records
		r.Route("/loadings/{type}", func(r chi.Router) {
			r.Post("/", cfg.LoadingHandler.Create)
			r.Get("/", cfg.LoadingHandler.List)
			r.Get("/next-bill-no", cfg.LoadingHandler.NextBillNo)
			r.Get("/{id}", cfg.LoadingHandler.Get)
		})

		// Payments and party balances
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", cfg.PaymentHandler.Create)
			r.Get("/", cfg.PaymentHandler.List)
			r.Get("/balances", cfg.PaymentHandler.Balances)
		})

		// Packing records
		r.Route("/packing", func(r chi.Router) {
			r.Post("/", cfg.PackingHandler.Create)
			r.Get("/", cfg.PackingHandler.List)
			r.Get("/next-bill-no", cfg.PackingHandler.NextBillNo)
		})

		// Bill sequences
		r.Route("/bills/{type}", func(r chi.Router) {
			r.Get("/next", cfg.BillHandler.Next)
			r.Post("/allocate", cfg.BillHandler.Allocate)
		})

		// Fleet
		r.Route("/vehicles", func(r chi.Router) {
			r.Post("/", cfg.FleetHandler.CreateVehicle)
			r.Get("/", cfg.FleetHandler.ListVehicles)
			r.Post("/assign-driver", cfg.FleetHandler.AssignDriver)
			r.Post("/unassign-driver", cfg.FleetHandler.UnassignDriver)
		})
		r.Route("/drivers", func(r chi.Router) {
			r.Post("/", cfg.FleetHandler.CreateDriver)
			r.Get("/", cfg.FleetHandler.ListDrivers)
			r.Get("/available", cfg.FleetHandler.AvailableDrivers)
		})

		// Variety registry
		r.Route("/varieties", func(r chi.Router) {
			r.Post("/", cfg.VarietyHandler.Create)
			r.Get("/", cfg.VarietyHandler.List)
		})

		// Dashboard
		r.Get("/dashboard", cfg.DashboardHandler.Get)
	})

	return r
}
