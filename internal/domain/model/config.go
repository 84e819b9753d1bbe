// Package model provides domain models for the resolver service.
package model

import (
	"errors"
	"strings"
	"time"
)

const (
	// MainnetEndpoint is the public Move Registry endpoint for mainnet.
	MainnetEndpoint = "https://mainnet.mvr.mystenlabs.com"
	// TestnetEndpoint is the public Move Registry endpoint for testnet.
	TestnetEndpoint = "https://testnet.mvr.mystenlabs.com"

	// DefaultCacheTTL is how long a resolved name stays cached.
	DefaultCacheTTL = time.Hour
	// DefaultCacheSize is the maximum number of cached resolutions.
	DefaultCacheSize = 1000
	// DefaultTimeout bounds a single registry request.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxConcurrentRequests bounds simultaneous registry requests.
	DefaultMaxConcurrentRequests = 10
)

// ErrInvalidConfig is returned by ResolverConfig.Validate.
var ErrInvalidConfig = errors.New("invalid resolver configuration")

// ResolverConfig holds the resolver configuration.
//
// It is a value type: every With* method returns a modified copy and never
// touches the receiver, so a configuration handed to a running resolver
// cannot be changed underneath it.
type ResolverConfig struct {
	// EndpointURL is the registry base URL.
	EndpointURL string `json:"endpoint_url"`
	// CacheTTL is the lifetime of a cached resolution.
	CacheTTL time.Duration `json:"cache_ttl"`
	// CacheSize is the maximum number of cached resolutions.
	CacheSize int `json:"cache_size"`
	// Timeout bounds every registry request.
	Timeout time.Duration `json:"timeout"`
	// MaxConcurrentRequests bounds simultaneous registry requests.
	MaxConcurrentRequests int `json:"max_concurrent_requests"`
	// CleanupInterval enables a background sweep of expired entries when > 0.
	CleanupInterval time.Duration `json:"cleanup_interval,omitempty"`
	// Overrides are static resolutions checked before cache and network.
	Overrides *Overrides `json:"overrides,omitempty"`
}

// DefaultResolverConfig returns the default configuration (testnet).
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		EndpointURL:           TestnetEndpoint,
		CacheTTL:              DefaultCacheTTL,
		CacheSize:             DefaultCacheSize,
		Timeout:               DefaultTimeout,
		MaxConcurrentRequests: DefaultMaxConcurrentRequests,
	}
}

// MainnetConfig returns the default configuration pointed at mainnet.
func MainnetConfig() ResolverConfig {
	return DefaultResolverConfig().WithEndpoint(MainnetEndpoint)
}

// TestnetConfig returns the default configuration pointed at testnet.
func TestnetConfig() ResolverConfig {
	return DefaultResolverConfig().WithEndpoint(TestnetEndpoint)
}

// WithEndpoint returns a copy with the given endpoint URL.
func (c ResolverConfig) WithEndpoint(endpointURL string) ResolverConfig {
	c.EndpointURL = strings.TrimRight(endpointURL, "/")
	return c
}

// WithCacheTTL returns a copy with the given cache TTL.
func (c ResolverConfig) WithCacheTTL(ttl time.Duration) ResolverConfig {
	c.CacheTTL = ttl
	return c
}

// WithCacheSize returns a copy with the given cache capacity.
func (c ResolverConfig) WithCacheSize(size int) ResolverConfig {
	c.CacheSize = size
	return c
}

// WithTimeout returns a copy with the given request timeout.
func (c ResolverConfig) WithTimeout(timeout time.Duration) ResolverConfig {
	c.Timeout = timeout
	return c
}

// WithMaxConcurrentRequests returns a copy with the given concurrency limit.
func (c ResolverConfig) WithMaxConcurrentRequests(n int) ResolverConfig {
	c.MaxConcurrentRequests = n
	return c
}

// WithCleanupInterval returns a copy with the given background sweep interval.
func (c ResolverConfig) WithCleanupInterval(interval time.Duration) ResolverConfig {
	c.CleanupInterval = interval
	return c
}

// WithOverrides returns a copy holding its own copy of the given overrides.
func (c ResolverConfig) WithOverrides(overrides Overrides) ResolverConfig {
	o := overrides.Clone()
	c.Overrides = &o
	return c
}

// Validate checks that the configuration can back a resolver.
func (c ResolverConfig) Validate() error {
	switch {
	case c.EndpointURL == "":
		return &ConfigError{Field: "endpoint_url", Reason: "must not be empty"}
	case c.Timeout <= 0:
		return &ConfigError{Field: "timeout", Reason: "must be positive"}
	case c.MaxConcurrentRequests < 1:
		return &ConfigError{Field: "max_concurrent_requests", Reason: "must be at least 1"}
	case c.CacheSize < 0:
		return &ConfigError{Field: "cache_size", Reason: "must not be negative"}
	}
	return nil
}

// ConfigError describes an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

// Error returns the error message for ConfigError.
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Field + " " + e.Reason
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
