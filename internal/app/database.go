// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
	"github.com/guttosm/mvr-resolver/internal/repository"
	"github.com/guttosm/mvr-resolver/internal/service"
	"github.com/rs/zerolog/log"
)

const setupTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	AuditService        service.AuditService
	AuditCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the audit log on top of it.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit log")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()
	if err := db.SetAuditTTL(ctx, cfg.AuditTTL); err != nil {
		log.Warn().Err(err).Dur("ttl", cfg.AuditTTL).Msg("Failed to set audit TTL index")
	}

	auditCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-audit",
	})

	auditRepo := repository.NewAuditRepositoryWithCircuitBreaker(repository.NewAuditRepository(db), auditCB)

	return &DatabaseComponents{
		DB:                  db,
		AuditService:        service.NewAuditService(auditRepo),
		AuditCircuitBreaker: auditCB,
	}
}
