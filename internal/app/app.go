// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/http"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/guttosm/mvr-resolver/internal/repository"
	"github.com/guttosm/mvr-resolver/internal/resolver"
	"github.com/rs/zerolog/log"
)

// App holds the wired application and the resources released on shutdown.
type App struct {
	Router   *gin.Engine
	Resolver *resolver.Resolver

	auditLogger *middleware.AsyncLogger
	db          *repository.MongoDB
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	// The audit log is optional; the resolver keeps serving without it.
	dbComponents := InitializeDatabase(cfg.Database)

	var auditLogger *middleware.AsyncLogger
	if dbComponents != nil {
		auditLogger = middleware.NewAsyncLogger(dbComponents.AuditService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(services, dbComponents, auditLogger, cfg)

	a := &App{
		Router:      http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Resolver:    services.Resolver,
		auditLogger: auditLogger,
	}
	if dbComponents != nil {
		a.db = dbComponents.DB
	}
	return a, nil
}

// Close flushes pending audit entries and releases the resolver and database.
// It is safe to call more than once.
func (a *App) Close(ctx context.Context) error {
	a.auditLogger.Stop()
	a.Resolver.Close()

	var errs []error
	if a.db != nil {
		if err := a.db.Close(ctx); err != nil {
			errs = append(errs, err)
		}
		a.db = nil
	}

	log.Info().Msg("Application resources released")
	return errors.Join(errs...)
}
