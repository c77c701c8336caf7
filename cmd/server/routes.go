package main

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/HammerMeetNail/syncin/internal/config"
	"github.com/HammerMeetNail/syncin/internal/database"
	"github.com/HammerMeetNail/syncin/internal/handlers"
	"github.com/HammerMeetNail/syncin/internal/logging"
	"github.com/HammerMeetNail/syncin/internal/middleware"
	"github.com/HammerMeetNail/syncin/internal/services"
)

// serverDeps are the collaborators the router is built from. db and redis
// may be nil when not configured or unreachable.
type serverDeps struct {
	cfg     *config.Config
	logger  *logging.Logger
	db      *database.PostgresDB
	redis   *database.RedisDB
	metrics *middleware.Metrics
}

func newRouter(deps serverDeps) http.Handler {
	// Optional dependencies are passed as untyped nils so the handlers and
	// services can tell "not configured" apart from a live connection.
	var (
		dbCheck     handlers.HealthChecker
		redisCheck  handlers.HealthChecker
		probe       services.DatabaseProbe
		redisClient *redis.Client
	)
	if deps.db != nil {
		dbCheck = deps.db
		probe = deps.db
	}
	if deps.redis != nil {
		redisCheck = deps.redis
		redisClient = deps.redis.Client
	}

	// Initialize services
	roadmapService := services.NewRoadmapService()
	catalogService := services.NewCatalogService()
	evaluatorService := services.NewEvaluatorService()
	diagnosticService := services.NewDiagnosticService(probe)

	// Initialize handlers
	metaHandler := handlers.NewMetaHandler()
	healthHandler := handlers.NewHealthHandler(dbCheck, redisCheck)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	discoverHandler := handlers.NewDiscoverHandler(catalogService, evaluatorService)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService)

	// Initialize middleware
	requestID := middleware.NewRequestID(deps.logger)
	requestLogger := middleware.NewRequestLogger()
	securityHeaders := middleware.NewSecurityHeaders(deps.cfg.Server.Secure)
	cors := middleware.NewCORS(deps.cfg.Server.CORSOrigins)
	compress := middleware.NewCompress("/metrics")
	cacheControl := middleware.NewCacheControl()
	rateLimiter := middleware.NewAPIRateLimiter(redisClient, deps.cfg.RateLimit.Requests, deps.cfg.RateLimit.Window).
		WithMetrics(deps.metrics)

	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.Handle("GET /metrics", deps.metrics.Handler())

	mux.HandleFunc("GET /{$}", metaHandler.Root)
	mux.HandleFunc("GET /api/hello", metaHandler.Hello)
	mux.HandleFunc("GET /test", diagnosticHandler.Test)

	// Engine endpoints
	mux.HandleFunc("POST /api/roadmap", roadmapHandler.Generate)
	mux.HandleFunc("GET /api/discover/tests", discoverHandler.Tests)
	mux.HandleFunc("POST /api/discover/evaluate", discoverHandler.Evaluate)

	// Build middleware chain (order matters: outermost first)
	var handler http.Handler = mux
	handler = rateLimiter.Apply(handler)
	handler = cacheControl.Apply(handler)
	handler = compress.Apply(handler)
	handler = cors.Apply(handler)
	handler = securityHeaders.Apply(handler)
	handler = deps.metrics.Apply(handler)
	handler = requestLogger.Apply(handler)
	handler = requestID.Apply(handler)

	return handler
}
