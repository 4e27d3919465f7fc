package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fishtrade/internal/adapter/http"
	"github.com/iho/fishtrade/internal/adapter/http/handler"
	"github.com/iho/fishtrade/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/fishtrade/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fishtrade/internal/adapter/repository/redis"
	"github.com/iho/fishtrade/internal/infrastructure/config"
	"github.com/iho/fishtrade/internal/infrastructure/logging"
	"github.com/iho/fishtrade/internal/infrastructure/metrics"
	"github.com/iho/fishtrade/internal/infrastructure/postgres"
	"github.com/iho/fishtrade/internal/infrastructure/redis"
	"github.com/iho/fishtrade/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger. JSON by default, console writer for local runs.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// The use case and repository layers log through slog.
	slog.SetDefault(logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).Logger)

	ctx := context.Background()

	// Connect to PostgreSQL
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Metrics registry. The HTTP middleware registers its collectors on the
	// default registry, so /metrics gathers both.
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	metricsHandler := promhttp.HandlerFor(
		prometheus.Gatherers{registry, prometheus.DefaultGatherer},
		promhttp.HandlerOpts{},
	)

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	sequenceRepo := postgresRepo.NewSequenceRepository(pool)
	loadingRepo := postgresRepo.NewLoadingRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	packingRepo := postgresRepo.NewPackingRepository(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	vehicleRepo := postgresRepo.NewVehicleRepository(pool)
	driverRepo := postgresRepo.NewDriverRepository(pool)
	varietyRepo := postgresRepo.NewVarietyRepository(pool)
	retrier := postgresRepo.NewRetrier(cfg.SequenceMaxRetries)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	sequenceUC := usecase.NewSequenceUseCase(sequenceRepo, loadingRepo, packingRepo, retrier, m)
	loadingUC := usecase.NewLoadingUseCase(txManager, loadingRepo, partyRepo, vehicleRepo, sequenceUC, retrier, idGen, m)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, loadingRepo, partyRepo, idGen, m)
	packingUC := usecase.NewPackingUseCase(txManager, packingRepo, sequenceUC, retrier, idGen, m)
	fleetUC := usecase.NewFleetUseCase(vehicleRepo, driverRepo, idGen)
	varietyUC := usecase.NewVarietyUseCase(varietyRepo)
	dashboardUC := usecase.NewDashboardUseCase(loadingRepo, paymentRepo, varietyRepo, cache, cfg.DashboardCacheTTL, m)

	// Seed counters from historical bill numbers so sequences continue where
	// the records left off.
	if cfg.SeedSequences {
		if err := sequenceUC.SeedFromHistory(ctx, time.Now().UTC()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed bill sequences")
		}
		log.Info().Msg("bill sequences seeded")
	}

	// Initialize handlers
	loadingHandler := handler.NewLoadingHandler(loadingUC, sequenceUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	packingHandler := handler.NewPackingHandler(packingUC, sequenceUC)
	billHandler := handler.NewBillHandler(sequenceUC)
	fleetHandler := handler.NewFleetHandler(fleetUC)
	varietyHandler := handler.NewVarietyHandler(varietyUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Drop idle token buckets so the per-IP map stays bounded.
	limiterGC := time.NewTicker(time.Hour)
	defer limiterGC.Stop()
	go func() {
		for range limiterGC.C {
			rateLimiter.Reset()
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LoadingHandler:   loadingHandler,
		PaymentHandler:   paymentHandler,
		PackingHandler:   packingHandler,
		BillHandler:      billHandler,
		FleetHandler:     fleetHandler,
		VarietyHandler:   varietyHandler,
		DashboardHandler: dashboardHandler,
		HealthHandler:    healthHandler,
		MetricsHandler:   metricsHandler,
		Logging:          middleware.NewLoggingMiddleware(log.Logger),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
