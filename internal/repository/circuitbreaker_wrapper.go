package repository

import (
	"context"
	"errors"

	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
)

// AuditRepositoryWithCircuitBreaker wraps an audit repository with circuit breaker protection.
// Writes are dropped while the circuit is open since auditing never blocks resolution.
type AuditRepositoryWithCircuitBreaker struct {
	repo           AuditRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker creates a new repository wrapper.
func NewAuditRepositoryWithCircuitBreaker(repo AuditRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single document unless the circuit is open.
func (r *AuditRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores documents in bulk unless the circuit is open.
func (r *AuditRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Query(ctx context.Context, q AuditQuery) ([]*AuditDocument, error) {
	var result []*AuditDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, q)
		return cbErr
	})
	return result, err
}

// Count counts documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Count(ctx context.Context, q AuditQuery) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
