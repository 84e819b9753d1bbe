// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
