// Package logging provides structured logging configuration using log/slog.
//
// Analyses are long multi-step operations over one file; tagging a
// run ID onto the logger up front keeps the entries for concurrent
// analyses separable.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun returns a logger that stamps every entry with the given
// analysis run ID.
//
// Usage:
//
//	log := logging.WithRun(uuid.NewString())
//	log.Info("analysis started", "file", path)
func WithRun(runID string) *slog.Logger {
	if runID == "" {
		return slog.Default()
	}
	return slog.Default().With("run_id", runID)
}

// WithFields returns a logger with additional structured fields, for
// operation-specific loggers that carry context through a multi-step
// process.
func WithFields(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}
