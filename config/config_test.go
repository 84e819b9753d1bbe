package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "RATE_LIMIT", "RATE_WINDOW", "REQUEST_TIMEOUT", "CORS_ORIGINS", "SWAGGER_USER", "SWAGGER_PASS",
	"MVR_NETWORK", "MVR_ENDPOINT", "MVR_CACHE_TTL", "MVR_CACHE_SIZE", "MVR_CACHE_CLEANUP_INTERVAL",
	"MVR_TIMEOUT", "MVR_MAX_CONCURRENT_REQUESTS", "MVR_MAX_RETRIES", "MVR_OVERRIDES", "MVR_OVERRIDES_FILE",
	"REGISTRY_CB_FAILURE_THRESHOLD", "REGISTRY_CB_SUCCESS_THRESHOLD", "REGISTRY_CB_TIMEOUT",
	"AUTH_ENABLED", "API_KEYS", "JWT_SECRET_KEY", "JWT_ACCESS_TOKEN_TTL",
	"MONGODB_ENABLED", "MONGODB_URI", "MONGODB_DATABASE", "MONGODB_AUDIT_TTL",
	"LOG_LEVEL", "LOG_PRETTY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearEnv(t)

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
		assert.Equal(t, "testnet", cfg.Resolver.Network)
		assert.Equal(t, model.DefaultCacheSize, cfg.Resolver.CacheSize)
		assert.Equal(t, time.Hour, cfg.Resolver.CacheTTL)
		assert.Equal(t, 30*time.Second, cfg.Resolver.Timeout)
		assert.Equal(t, 10, cfg.Resolver.MaxConcurrentRequests)
		assert.Equal(t, 0, cfg.Resolver.MaxRetries)
		assert.Equal(t, 5, cfg.Registry.CircuitBreakerFailureThreshold)
		assert.False(t, cfg.Auth.Enabled)
		assert.Nil(t, cfg.Auth.APIKeys)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "mvr_resolver", cfg.Database.DatabaseName)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("MVR_NETWORK", "MAINNET")
		t.Setenv("MVR_CACHE_SIZE", "500")
		t.Setenv("MVR_CACHE_TTL", "10m")
		t.Setenv("MVR_TIMEOUT", "5s")
		t.Setenv("MVR_MAX_CONCURRENT_REQUESTS", "3")
		t.Setenv("MVR_MAX_RETRIES", "2")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("API_KEYS", " key1 , key2 ")
		t.Setenv("LOG_PRETTY", "true")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "mainnet", cfg.Resolver.Network)
		assert.Equal(t, 500, cfg.Resolver.CacheSize)
		assert.Equal(t, 10*time.Minute, cfg.Resolver.CacheTTL)
		assert.Equal(t, 5*time.Second, cfg.Resolver.Timeout)
		assert.Equal(t, 3, cfg.Resolver.MaxConcurrentRequests)
		assert.Equal(t, 2, cfg.Resolver.MaxRetries)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("AUTH_ENABLED", "invalid")
		t.Setenv("MVR_TIMEOUT", "soon")

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, model.DefaultTimeout, cfg.Resolver.Timeout)
	})

	t.Run("appends CORS origins to defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://a.example",
			"https://b.example",
		}, cfg.Server.CORSOrigins)
	})
}

func TestConfig_ResolverConfig(t *testing.T) {
	dir := t.TempDir()
	overridesFile := filepath.Join(dir, "overrides.json")
	require.NoError(t, os.WriteFile(overridesFile, []byte(`{
		"packages": {"@file/pkg": "0xfile", "@both/pkg": "0xfile"},
		"types": {"@file/pkg::m::T": "0xfile::m::T"}
	}`), 0o600))

	tests := []struct {
		name     string
		env      map[string]string
		wantErr  bool
		validate func(*testing.T, model.ResolverConfig)
	}{
		{
			name: "defaults to testnet",
			validate: func(t *testing.T, rc model.ResolverConfig) {
				assert.Equal(t, model.TestnetEndpoint, rc.EndpointURL)
				assert.Nil(t, rc.Overrides)
				assert.Equal(t, 5*time.Minute, rc.CleanupInterval)
			},
		},
		{
			name: "mainnet preset",
			env:  map[string]string{"MVR_NETWORK": "mainnet"},
			validate: func(t *testing.T, rc model.ResolverConfig) {
				assert.Equal(t, model.MainnetEndpoint, rc.EndpointURL)
			},
		},
		{
			name: "explicit endpoint wins",
			env:  map[string]string{"MVR_NETWORK": "mainnet", "MVR_ENDPOINT": "http://localhost:9000/"},
			validate: func(t *testing.T, rc model.ResolverConfig) {
				assert.Equal(t, "http://localhost:9000", rc.EndpointURL)
			},
		},
		{
			name: "merges file and inline overrides",
			env: map[string]string{
				"MVR_OVERRIDES_FILE": overridesFile,
				"MVR_OVERRIDES":      `{"packages": {"@both/pkg": "0xinline"}}`,
			},
			validate: func(t *testing.T, rc model.ResolverConfig) {
				require.NotNil(t, rc.Overrides)
				v, _ := rc.Overrides.Package("@file/pkg")
				assert.Equal(t, "0xfile", v)
				v, _ = rc.Overrides.Package("@both/pkg")
				assert.Equal(t, "0xinline", v)
				v, _ = rc.Overrides.Type("@file/pkg::m::T")
				assert.Equal(t, "0xfile::m::T", v)
			},
		},
		{name: "unknown network", env: map[string]string{"MVR_NETWORK": "devnet"}, wantErr: true},
		{name: "malformed inline overrides", env: map[string]string{"MVR_OVERRIDES": "{"}, wantErr: true},
		{name: "missing overrides file", env: map[string]string{"MVR_OVERRIDES_FILE": filepath.Join(dir, "nope.json")}, wantErr: true},
		{name: "invalid concurrency", env: map[string]string{"MVR_MAX_CONCURRENT_REQUESTS": "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			rc, err := Load().ResolverConfig()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, rc)
		})
	}
}

func TestRegistryConfig_BreakerConfig(t *testing.T) {
	cfg := RegistryConfig{
		CircuitBreakerFailureThreshold: 3,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Second,
	}.BreakerConfig()

	assert.Equal(t, 3, cfg.FailureThreshold)
	assert.Equal(t, 1, cfg.SuccessThreshold)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, "registry", cfg.Name)
}
