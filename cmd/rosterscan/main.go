package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/rosterscan/internal/config"
	"github.com/JonMunkholm/rosterscan/internal/logging"
	"github.com/JonMunkholm/rosterscan/internal/sheet"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	// Loaded configuration, available to every command after boot.
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rosterscan",
	Short: "rosterscan - figure out what a roster spreadsheet means",
	Long: `rosterscan reads a roster spreadsheet (.csv, .xlsx, .xls, .odf) whose
layout is not known in advance: the header row may be buried under
export noise, and the columns may be named in Swedish or English.

It tries every plausible header position, classifies each column by
header and content, and requires exactly one consistent reading of
the whole file. Per-person results can then be written back into the
same file without disturbing anything it does not understand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// boot wires the process up in the fixed order: env file, config,
// logging, parse hardening. Runs before every command.
func boot(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Command-line flags override environment configuration.
	if rootCmd.PersistentFlags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if rootCmd.PersistentFlags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	sheet.MaxInputFileSize = cfg.Sheet.MaxFileSize
	if cfg.Sheet.Harden {
		sheet.Harden()
	}

	slog.Debug("configuration loaded",
		"max_header_shift", cfg.Analyze.MaxHeaderShift,
		"serial", cfg.Analyze.Serial,
		"timeout", cfg.Analyze.Timeout,
		"harden", cfg.Sheet.Harden,
	)
	return nil
}

// analysisContext builds the context every analysis runs under: the
// configured timeout, cancelled early on SIGINT or SIGTERM.
func analysisContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Analyze.Timeout)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			slog.Info("interrupted, cancelling analysis")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func init() {
	// Set here rather than in the literal: boot refers to rootCmd, so
	// naming it there creates an initialization cycle.
	rootCmd.PersistentPreRunE = boot

	// Global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (overrides LOG_FORMAT)")

	// Add commands to root
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(applyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, "Error: "+FormatUserError(err))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
