package cmd

import (
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/config"
)

// Shared state across all commands, populated by the root PersistentPreRunE.
var (
	cfg       *config.Config
	zapLogger *zap.Logger

	cfgFile        string
	socketOverride string
	verbose        bool
	quiet          bool
	useJSON        bool
)

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// GetZapLogger returns the configured logger.
func GetZapLogger() *zap.Logger {
	return zapLogger
}
