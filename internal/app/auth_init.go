// Package app provides authentication initialization.
package app

import (
	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/service"
	"github.com/rs/zerolog/log"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// initializeTokenService returns the bearer token service, or nil when
// authentication is disabled or no API keys are configured.
func initializeTokenService(cfg config.AuthConfig) service.TokenService {
	if !cfg.Enabled {
		return nil
	}
	if len(cfg.APIKeys) == 0 {
		log.Warn().Msg("Authentication enabled without API keys - token exchange disabled")
		return nil
	}
	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn().Msg("JWT_SECRET_KEY is not set - using the default secret")
	}

	return service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg), cfg.APIKeys)
}
