// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, request
// deadlines, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Every route under the base path answers with the {data, error} envelope
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	_ "github.com/moscowfactory-tech/tradeanalyzer-backend/docs"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/config"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/http/handlers"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/http/middleware"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/repo"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

// strategyRepoShim adapts the repository free functions to the
// services.StrategyRepo interface expected by the StrategyService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type strategyRepoShim struct{}

// CreateStrategy proxies repo.CreateStrategy.
func (strategyRepoShim) CreateStrategy(ctx context.Context, db *gorm.DB, userID, telegramUserID, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error) {
	return repo.CreateStrategy(ctx, db, userID, telegramUserID, name, description, fields, isPublic)
}

// ListStrategiesByUser proxies repo.ListStrategiesByUser.
func (strategyRepoShim) ListStrategiesByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.Strategy, error) {
	return repo.ListStrategiesByUser(ctx, db, userID, limit)
}

// ListPublicStrategies proxies repo.ListPublicStrategies.
func (strategyRepoShim) ListPublicStrategies(ctx context.Context, db *gorm.DB, limit int) ([]domain.Strategy, error) {
	return repo.ListPublicStrategies(ctx, db, limit)
}

// GetStrategy proxies repo.GetStrategy.
func (strategyRepoShim) GetStrategy(ctx context.Context, db *gorm.DB, id string) (*domain.Strategy, error) {
	return repo.GetStrategy(ctx, db, id)
}

// ReplaceStrategy proxies repo.ReplaceStrategy.
func (strategyRepoShim) ReplaceStrategy(ctx context.Context, db *gorm.DB, id, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error) {
	return repo.ReplaceStrategy(ctx, db, id, name, description, fields, isPublic)
}

// DeleteStrategy proxies repo.DeleteStrategy.
func (strategyRepoShim) DeleteStrategy(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteStrategy(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), the per-request
// deadline, rate limiting, CORS and security headers, and then mounts the
// public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per telegram id / IP)
//  9. Request deadline
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses for clients that accept it
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per telegram id / IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByTelegramOrIP())
	r.Use(rl.Handler())

	// 9) Per-request deadline; propagates to DB statements via context
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	userSvc := &services.UserService{DB: db}
	strategySvc := services.NewStrategyService(db, strategyRepoShim{}, userSvc)
	analysisSvc := &services.AnalysisService{DB: db, Users: userSvc}
	querySvc := &services.QueryService{DB: db}
	migrateSvc := &services.MigrateService{DB: db}

	h := handlers.New(strategySvc, analysisSvc, userSvc, querySvc, migrateSvc,
		func(ctx context.Context) error { return repo.Ping(ctx, db) })

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api"
	{
		// Strategies
		api.GET("/strategies", h.ListStrategies)
		api.POST("/strategies", h.CreateStrategy)
		api.PUT("/strategies/:id", h.UpdateStrategy)
		api.DELETE("/strategies/:id", h.DeleteStrategy)

		// Analyses (the /api/analyses spelling is kept for older clients)
		api.GET("/analysis_results", h.ListAnalyses)
		api.POST("/analysis_results", h.CreateAnalysis)
		api.DELETE("/analysis_results/:id", h.DeleteAnalysis)
		api.GET("/analyses", h.ListAnalyses)
		api.POST("/analyses", h.CreateAnalysis)
		api.DELETE("/analyses/:id", h.DeleteAnalysis)

		// Users and events
		api.GET("/users", h.LookupUsers)
		api.POST("/users", h.UpsertUser)
		api.POST("/user_events", h.CreateUserEvent)
		api.GET("/users/stats/:telegram_user_id", h.UserStats)
		api.GET("/stats/:telegram_user_id", h.UserStats)

		// Service endpoints
		api.GET("/health", h.Health)
		api.GET("/info", h.Info)
		api.POST("/query", h.ExecuteQuery)
		api.POST("/migrate", h.Migrate)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
