// Package logging builds the application logger. The terminal is owned by
// the UI, so everything is written to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log destination and verbosity.
type Options struct {
	Enabled bool
	Path    string // required when Enabled
	Level   string // zap level name; empty means info
	Verbose bool   // forces debug level
}

// New returns a JSON file logger, or a no-op logger when disabled.
func New(opts Options) (*zap.Logger, error) {
	if !opts.Enabled {
		return zap.NewNop(), nil
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("log path is empty")
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{opts.Path}
	config.ErrorOutputPaths = []string{opts.Path}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
