// Package config provides configuration management for the resolver service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/mvr-resolver/internal/circuitbreaker"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Resolver ResolverConfig
	Registry RegistryConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port       string
	RateLimit  int
	RateWindow time.Duration
	// RequestTimeout bounds the handling of one API request.
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// ResolverConfig holds resolver configuration as read from the environment.
type ResolverConfig struct {
	// Network selects the default endpoint: "mainnet" or "testnet".
	Network string
	// Endpoint overrides the network endpoint when set.
	Endpoint              string
	CacheTTL              time.Duration
	CacheSize             int
	CleanupInterval       time.Duration
	Timeout               time.Duration
	MaxConcurrentRequests int
	// MaxRetries enables retrying single resolutions in the HTTP API when > 0.
	MaxRetries int
	// OverridesJSON is an inline overrides document.
	OverridesJSON string
	// OverridesFile is a path to an overrides document.
	OverridesFile string
}

// RegistryConfig holds the registry circuit breaker configuration.
type RegistryConfig struct {
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled        bool
	APIKeys        map[string]bool
	JWTSecretKey   string
	AccessTokenTTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	AuditTTL     time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Resolver: ResolverConfig{
			Network:               strings.ToLower(getEnv("MVR_NETWORK", "testnet")),
			Endpoint:              getEnv("MVR_ENDPOINT", ""),
			CacheTTL:              getEnvDuration("MVR_CACHE_TTL", model.DefaultCacheTTL),
			CacheSize:             getEnvInt("MVR_CACHE_SIZE", model.DefaultCacheSize),
			CleanupInterval:       getEnvDuration("MVR_CACHE_CLEANUP_INTERVAL", 5*time.Minute),
			Timeout:               getEnvDuration("MVR_TIMEOUT", model.DefaultTimeout),
			MaxConcurrentRequests: getEnvInt("MVR_MAX_CONCURRENT_REQUESTS", model.DefaultMaxConcurrentRequests),
			MaxRetries:            getEnvInt("MVR_MAX_RETRIES", 0),
			OverridesJSON:         getEnv("MVR_OVERRIDES", ""),
			OverridesFile:         getEnv("MVR_OVERRIDES_FILE", ""),
		},
		Registry: RegistryConfig{
			CircuitBreakerFailureThreshold: getEnvInt("REGISTRY_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("REGISTRY_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("REGISTRY_CB_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:        getEnvBool("AUTH_ENABLED", false),
			APIKeys:        parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:   getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "mvr_resolver"),
			AuditTTL:                       getEnvDuration("MONGODB_AUDIT_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// ResolverConfig builds the resolver configuration, loading overrides from
// MVR_OVERRIDES_FILE and then MVR_OVERRIDES. Inline entries win over file entries.
func (c Config) ResolverConfig() (model.ResolverConfig, error) {
	rc := c.Resolver

	var base model.ResolverConfig
	switch rc.Network {
	case "mainnet":
		base = model.MainnetConfig()
	case "testnet", "":
		base = model.TestnetConfig()
	default:
		return model.ResolverConfig{}, fmt.Errorf("unknown MVR_NETWORK %q", rc.Network)
	}
	if rc.Endpoint != "" {
		base = base.WithEndpoint(rc.Endpoint)
	}

	out := base.
		WithCacheTTL(rc.CacheTTL).
		WithCacheSize(rc.CacheSize).
		WithCleanupInterval(rc.CleanupInterval).
		WithTimeout(rc.Timeout).
		WithMaxConcurrentRequests(rc.MaxConcurrentRequests)

	overrides, err := rc.loadOverrides()
	if err != nil {
		return model.ResolverConfig{}, err
	}
	if overrides.Len() > 0 {
		out = out.WithOverrides(*overrides)
	}

	if err := out.Validate(); err != nil {
		return model.ResolverConfig{}, err
	}
	return out, nil
}

func (rc ResolverConfig) loadOverrides() (*model.Overrides, error) {
	merged := model.NewOverrides()

	if rc.OverridesFile != "" {
		data, err := os.ReadFile(rc.OverridesFile)
		if err != nil {
			return nil, fmt.Errorf("read overrides file: %w", err)
		}
		o, err := model.ParseOverrides(data)
		if err != nil {
			return nil, fmt.Errorf("parse overrides file %s: %w", rc.OverridesFile, err)
		}
		merged = merge(merged, o)
	}

	if rc.OverridesJSON != "" {
		o, err := model.ParseOverrides([]byte(rc.OverridesJSON))
		if err != nil {
			return nil, fmt.Errorf("parse MVR_OVERRIDES: %w", err)
		}
		merged = merge(merged, o)
	}

	return &merged, nil
}

func merge(dst, src model.Overrides) model.Overrides {
	for name, addr := range src.Packages {
		dst = dst.WithPackage(name, addr)
	}
	for name, sig := range src.Types {
		dst = dst.WithType(name, sig)
	}
	return dst
}

// BreakerConfig returns the registry circuit breaker configuration.
func (r RegistryConfig) BreakerConfig() circuitbreaker.Config {
	return circuitbreaker.Config{
		FailureThreshold: r.CircuitBreakerFailureThreshold,
		SuccessThreshold: r.CircuitBreakerSuccessThreshold,
		Timeout:          r.CircuitBreakerTimeout,
		Name:             "registry",
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
