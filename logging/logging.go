// Package logging builds the zap logger. The terminal owns stdout and stderr
// while the game runs, so logs only ever go to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/fixedstep/config"
)

// DefaultFile is used when debug logging is forced without a configured file
const DefaultFile = "fixedstep.log"

// New returns a file logger, or a no-op logger when no file is configured and debug is off
func New(cfg config.LoggingConfig, debug bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging level: %w", config.ErrInvalid, err)
	}

	path := cfg.File
	if path == "" {
		if !debug {
			return zap.NewNop(), nil
		}
		path = DefaultFile
	}

	if debug {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Sampling = nil
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	return zapCfg.Build()
}
