package registry

import (
	"context"
	"errors"

	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/resolver"
)

// NewCircuitBreaker builds a breaker that trips only on retryable registry failures.
// Not-found and other client errors are answers, not outages.
func NewCircuitBreaker(cfg circuitbreaker.Config) *circuitbreaker.CircuitBreaker {
	if cfg.IsFailure == nil {
		cfg.IsFailure = resolver.IsRetryable
	}
	if cfg.Name == "" {
		cfg.Name = "registry"
	}
	return circuitbreaker.New(cfg)
}

// FetcherWithCircuitBreaker wraps a Fetcher with circuit breaker protection.
type FetcherWithCircuitBreaker struct {
	next           resolver.Fetcher
	circuitBreaker *circuitbreaker.CircuitBreaker
}

var _ resolver.Fetcher = (*FetcherWithCircuitBreaker)(nil)

// NewFetcherWithCircuitBreaker creates a new fetcher wrapper.
func NewFetcherWithCircuitBreaker(next resolver.Fetcher, cb *circuitbreaker.CircuitBreaker) *FetcherWithCircuitBreaker {
	return &FetcherWithCircuitBreaker{
		next:           next,
		circuitBreaker: cb,
	}
}

// FetchPackage fetches a package address unless the circuit is open.
func (f *FetcherWithCircuitBreaker) FetchPackage(ctx context.Context, name string) (string, error) {
	var result string
	err := f.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = f.next.FetchPackage(ctx, name)
		return cbErr
	})
	return result, translate(err)
}

// FetchType fetches a type signature unless the circuit is open.
func (f *FetcherWithCircuitBreaker) FetchType(ctx context.Context, name string) (string, error) {
	var result string
	err := f.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = f.next.FetchType(ctx, name)
		return cbErr
	})
	return result, translate(err)
}

// FetchBatch fetches a batch unless the circuit is open.
func (f *FetcherWithCircuitBreaker) FetchBatch(ctx context.Context, req model.BatchRequest) (*model.BatchResponse, error) {
	var result *model.BatchResponse
	err := f.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = f.next.FetchBatch(ctx, req)
		return cbErr
	})
	return result, translate(err)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (f *FetcherWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return f.circuitBreaker
}

// translate reports a rejected call as a transport failure so callers can retry later.
func translate(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return resolver.TransportError(err)
	}
	return err
}
