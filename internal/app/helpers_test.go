package app

import (
	"time"

	"github.com/guttosm/mvr-resolver/config"
)

// testConfig returns a configuration that needs no external services.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: time.Minute,
		},
		Resolver: config.ResolverConfig{
			Network:               "testnet",
			CacheTTL:              time.Hour,
			CacheSize:             100,
			CleanupInterval:       time.Minute,
			Timeout:               time.Second,
			MaxConcurrentRequests: 2,
		},
		Registry: config.RegistryConfig{
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Auth: config.AuthConfig{
			JWTSecretKey:   "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
	}
}
