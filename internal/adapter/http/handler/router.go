package handler

import (
	"fairwager/internal/adapter/bus"
	"fairwager/internal/adapter/http/middleware"
	redisStore "fairwager/internal/adapter/storage/redis"
	"fairwager/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	CrashSvc       ports.CrashService
	ShootoutSvc    ports.ShootoutService
	TokenSvc       ports.TokenService
	SeedStore      ports.SeedStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Bus            *bus.MemoryBus        // nil = event streaming disabled
	Registry       *prometheus.Registry  // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL and Redis)
	r.GET("/healthz", HealthCheck(deps.HealthCheckers...))

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	sessionHandler := NewSessionHandler(deps.LedgerSvc, deps.TokenSvc)
	v1.POST("/session", rl("session"), sessionHandler.Open)

	fairHandler := NewFairHandler(deps.SeedStore)
	v1.POST("/fair/verify", rl("verify"), fairHandler.Verify)

	crashHandler := NewCrashHandler(deps.CrashSvc)
	v1.GET("/crash/current", rl("readonly"), crashHandler.Current)
	v1.GET("/crash/rounds/:id", rl("readonly"), crashHandler.RoundResult)

	shootoutHandler := NewShootoutHandler(deps.ShootoutSvc)
	v1.GET("/shootout", rl("lobby"), shootoutHandler.Lobby)
	v1.GET("/shootout/:id", rl("readonly"), shootoutHandler.Get)

	if deps.Bus != nil {
		eventsHandler := NewEventsHandler(deps.Bus)
		v1.GET("/events", eventsHandler.Stream)
	}

	// --- JWT-authenticated routes (player API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.LedgerSvc)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("readonly"), walletHandler.GetBalance)
		wallet.GET("/history", rl("readonly"), walletHandler.History)
		wallet.POST("/deposit", rl("wallet"), walletHandler.Deposit)
		wallet.POST("/withdraw", rl("wallet"), walletHandler.Withdraw)
	}

	crash := v1.Group("/crash", jwtAuth)
	{
		crash.POST("/bets", rl("bets"), crashHandler.PlaceBet)
		crash.POST("/cashout", rl("bets"), crashHandler.CashOut)
	}

	shootout := v1.Group("/shootout", jwtAuth)
	{
		shootout.POST("", rl("bets"), shootoutHandler.Create)
		shootout.POST("/:id/join", rl("bets"), shootoutHandler.Join)
		shootout.DELETE("/:id", rl("bets"), shootoutHandler.Cancel)
	}

	seed := v1.Group("/fair/seed", jwtAuth)
	{
		seed.GET("", rl("readonly"), fairHandler.GetClientSeed)
		seed.PUT("", rl("wallet"), fairHandler.SetClientSeed)
	}

	return r
}
