package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/metrics"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/guttosm/mvr-resolver/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	// EnableAuth guards cache maintenance and audit routes with
	// API keys or bearer tokens.
	EnableAuth  bool
	APIKeys     map[string]bool
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	// AuditLogger receives one entry per audited request. Nil disables auditing.
	AuditLogger *middleware.AsyncLogger
	// AuditService backs GET /audit. Nil makes it answer 503.
	AuditService service.AuditService
	// TokenService enables POST /auth/token and bearer authentication.
	TokenService service.TokenService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the resolver service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api/v1")
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	resolverRoutes := NewResolverRoutes(handler)
	resolverRoutes.RegisterPublicRoutes(api)

	authEnabled := cfg.EnableAuth && (len(cfg.APIKeys) > 0 || cfg.TokenService != nil)
	if authEnabled && cfg.TokenService != nil {
		NewAuthRoutes(NewAuthHandler(cfg.TokenService), cfg.APIKeys).RegisterPublicRoutes(api)
	}

	protected := protectedGroup(api, &cfg, authEnabled)
	resolverRoutes.RegisterProtectedRoutes(protected)
	NewAuditRoutes(NewAuditHandler(cfg.AuditService)).RegisterProtectedRoutes(protected)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.AuditLogger),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// protectedGroup returns the group for maintenance routes. With auth enabled
// callers must authenticate, and are rate limited per subject.
func protectedGroup(api *gin.RouterGroup, cfg *RouterConfig, authEnabled bool) *gin.RouterGroup {
	protected := api.Group("")
	if !authEnabled {
		return protected
	}

	protected.Use(middleware.Authenticate(cfg.APIKeys, cfg.TokenService))
	if cfg.RateLimit > 0 {
		subjectLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(subjectLimiter.RateLimit())
	}
	return protected
}
