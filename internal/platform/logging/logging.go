// Package logging provides the process-wide structured logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every entry written after Initialize.
const ServiceName = "route-cost"

// Logger is the global logger. It is usable before Initialize is called.
var Logger = zap.NewNop()

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is the output format (json, console)
	Format string

	// Output is stdout, stderr or a file path
	Output string
}

// DefaultConfig returns the server defaults
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}
}

// Initialize replaces the global logger according to cfg. Unknown levels
// fall back to info; an unknown format is an error.
func Initialize(cfg Config) error {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Sampling = nil
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zc.InitialFields = map[string]any{"service": ServiceName}

	switch cfg.Format {
	case "", "json":
		zc.Encoding = "json"
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	out := cfg.Output
	if out == "" {
		out = "stderr"
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("logging: build: %w", err)
	}
	Logger = l
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger.Sync()
}
