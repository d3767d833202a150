package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/utils"
)

var (
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "event-management",
		Short: "Event management backend",
		Long: `REST backend for users, events, attendance and feedback.

Runs the HTTP server when no subcommand is given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: LOG_FORMAT or json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, applies flag overrides and validates the result.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	logger := config.NewLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, logger, fmt.Errorf("config error: %w", err)
	}

	if cfg.AuthzStrict {
		utils.ForbiddenStatus = http.StatusForbidden
	}
	return cfg, logger, nil
}
