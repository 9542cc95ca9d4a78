package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairwager/config"
	"fairwager/internal/adapter/bus"
	httpHandler "fairwager/internal/adapter/http/handler"
	pgStorage "fairwager/internal/adapter/storage/postgres"
	redisStorage "fairwager/internal/adapter/storage/redis"
	"fairwager/internal/core/ports"
	"fairwager/internal/engine/crash"
	"fairwager/internal/engine/shootout"
	"fairwager/internal/observability"
	"fairwager/internal/service"
	"fairwager/internal/settlement"
	"fairwager/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting fairwager")

	// Root context: cancelling it stops the engines, the reconciler, and the
	// bus relay.
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// Event bus, with optional NATS fan-out
	memBus := bus.NewMemoryBus(metrics)
	if cfg.NATS.Enabled {
		relay, err := bus.Connect(cfg.NATS.URL, memBus, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to NATS")
		}
		defer relay.Close()
		go func() {
			if err := relay.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("NATS relay stopped")
			}
		}()
		log.Info().Str("url", cfg.NATS.URL).Msg("NATS relay running")
	}

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	opRepo := pgStorage.NewOperationRepo(pool)
	roundRepo := pgStorage.NewRoundRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	resultCache := redisStorage.NewResultCache(rdb)
	seedStore := redisStorage.NewSeedStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ledgerSvc := service.NewLedgerService(accountRepo, opRepo, transactor, memBus, log)

	// Game engines: one goroutine per engine owns all round state.
	crashEngine := crash.NewEngine(cfg.Game, ledgerSvc, roundRepo, resultCache, seedStore, memBus, metrics, log)
	go func() {
		if err := crashEngine.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("crash engine stopped")
		}
	}()

	shootoutEngine := shootout.NewEngine(cfg.Game, ledgerSvc, roundRepo, resultCache, seedStore, memBus, metrics, log)
	go func() {
		if err := shootoutEngine.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("shootout engine stopped")
		}
	}()

	// Settlement reconciler: drives pending withdrawals to SETTLED or FAILED.
	transfer := settlement.NewHTTPTransfer(cfg.Settlement, nil, log)
	reconciler := settlement.NewReconciler(
		cfg.Settlement,
		accountRepo,
		opRepo,
		ledgerSvc,
		transfer,
		memBus,
		metrics,
		log,
		cfg.Settlement.CustodyAddress,
	)
	go func() {
		if err := reconciler.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("settlement reconciler stopped")
		}
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		CrashSvc:       crashEngine,
		ShootoutSvc:    shootoutEngine,
		TokenSvc:       tokenSvc,
		SeedStore:      seedStore,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Bus:            memBus,
		Registry:       registry,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop engines and workers after the HTTP surface has drained.
	stop()

	log.Info().Msg("Server exited")
}
