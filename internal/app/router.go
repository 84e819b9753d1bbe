// Package app provides router configuration.
package app

import (
	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/http"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/guttosm/mvr-resolver/internal/resolver"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	auditLogger *middleware.AsyncLogger,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Resolver, handlerOptions(cfg.Resolver)...)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("registry", services.RegistryCircuitBreaker)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		AuditLogger:    auditLogger,
	}

	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_audit", dbComponents.AuditCircuitBreaker)
		routerCfg.AuditService = dbComponents.AuditService
	}

	// Assigned only when non-nil so the interface stays nil when disabled.
	if tokens := initializeTokenService(cfg.Auth); tokens != nil {
		routerCfg.TokenService = tokens
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// handlerOptions enables retries of single resolutions when MVR_MAX_RETRIES > 0.
func handlerOptions(cfg config.ResolverConfig) []http.HandlerOption {
	if cfg.MaxRetries <= 0 {
		return nil
	}
	policy := resolver.DefaultRetryPolicy()
	policy.MaxRetries = cfg.MaxRetries
	return []http.HandlerOption{http.WithRetryPolicy(policy)}
}
