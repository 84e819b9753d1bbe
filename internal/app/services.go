// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
	"github.com/guttosm/mvr-resolver/internal/registry"
	"github.com/guttosm/mvr-resolver/internal/resolver"
)

// ServiceComponents holds the resolver and the registry plumbing behind it.
type ServiceComponents struct {
	Resolver               *resolver.Resolver
	RegistryCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the registry client, wraps it in a circuit
// breaker and creates the resolver on top of it.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	resolverCfg, err := cfg.ResolverConfig()
	if err != nil {
		return nil, fmt.Errorf("resolver configuration: %w", err)
	}

	registryCB := registry.NewCircuitBreaker(cfg.Registry.BreakerConfig())
	fetcher := registry.NewFetcherWithCircuitBreaker(registry.NewClient(resolverCfg.EndpointURL), registryCB)

	res, err := resolver.New(resolverCfg, fetcher)
	if err != nil {
		return nil, err
	}

	return &ServiceComponents{
		Resolver:               res,
		RegistryCircuitBreaker: registryCB,
	}, nil
}
