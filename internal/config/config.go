// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast
// on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Analyze AnalyzeConfig
	Sheet   SheetConfig
	Logging LoggingConfig
}

// AnalyzeConfig holds interpretation settings.
type AnalyzeConfig struct {
	// MaxHeaderShift is the highest header row offset tried, inclusive
	// (default: 3, so offsets 0 through 3)
	MaxHeaderShift int `env:"ANALYZE_MAX_HEADER_SHIFT" default:"3"`

	// Serial disables parallel evaluation of header offset hypotheses
	// (default: false)
	Serial bool `env:"ANALYZE_SERIAL" default:"false"`

	// Timeout bounds one whole file analysis (default: 1m)
	Timeout time.Duration `env:"ANALYZE_TIMEOUT" default:"1m"`
}

// SheetConfig holds file parsing settings.
type SheetConfig struct {
	// MaxFileSize is the maximum allowed input file size in bytes
	// (default: 100MB)
	MaxFileSize int64 `env:"SHEET_MAX_FILE_SIZE" default:"104857600"`

	// Harden arms the parser bomb limits at startup (default: true)
	Harden bool `env:"SHEET_HARDEN" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
