package common

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/berrythewa/clipstack/internal/config"
)

// NewLogger builds the application logger from configuration. Unknown
// levels fall back to info rather than failing startup.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         cfg.Log.Format,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	switch cfg.Log.Format {
	case "json":
		zcfg.EncoderConfig = zap.NewProductionEncoderConfig()
	default:
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.Sampling = nil
	}

	if cfg.Log.EnableFileLogging && cfg.Log.File != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.Log.File)
		// Color codes would end up in the file.
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zcfg.Build()
}
