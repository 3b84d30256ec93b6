// Copyright (c) 2026 InsightSource. All rights reserved.

// Command catalogctl runs operator tasks against the catalog database:
// schema migrations and sample data seeding.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/insightsource/catalog/internal/platform/config"
	"github.com/insightsource/catalog/internal/platform/constants"
	pgstore "github.com/insightsource/catalog/internal/platform/postgres"
)

var (
	verbose bool
	timeout time.Duration
	logger  *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operate the report catalog database",
	Long: `catalogctl manages the catalog PostgreSQL schema and sample data.

Configuration is read from the same environment as the API server;
only DATABASE_URL is required.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
			With(slog.String("app", constants.AppName), slog.String("tool", "catalogctl"))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// openPool connects with the same retry policy as the API server.
func openPool(ctx context.Context, cfg *config.Database) (*pgxpool.Pool, error) {
	return pgstore.NewPool(ctx, cfg.DatabaseURL, pgstore.Options{
		MaxRetries:       cfg.DBMaxRetries,
		RetryBase:        cfg.DBRetryBase,
		StatementTimeout: cfg.QueryTimeout,
	}, logger)
}
