// Package main is the entry point for the mvr-resolver service.
//
// @title           MVR Resolver API
// @version         1.0.0
// @description     Resolves Move Registry names to on-chain package addresses and type signatures.
//
//	Results are cached in memory, upstream calls are bounded and retried, and every
//	resolution can be recorded to an audit log.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/mvr-resolver
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required for maintenance routes if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by POST /api/v1/auth/token, sent as "Bearer <token>".
//
// @tag.name        Resolve
// @tag.description Name, type and move-call target resolution
//
// @tag.name        Cache
// @tag.description Resolution cache statistics and maintenance
//
// @tag.name        Audit
// @tag.description Audit log queries
//
// @tag.name        Auth
// @tag.description Token exchange
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"time"

	_ "github.com/guttosm/mvr-resolver/docs" // swagger docs

	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/app"
	"github.com/rs/zerolog/log"
)

// writeTimeoutSlack leaves room to write the 504 of a request that used its whole timeout.
const writeTimeoutSlack = 5 * time.Second

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithWriteTimeout(cfg.Server.RequestTimeout+writeTimeoutSlack),
	)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
