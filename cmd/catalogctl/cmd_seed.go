package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/catalog/report"
	"github.com/insightsource/catalog/internal/contact"
	"github.com/insightsource/catalog/internal/platform/config"
	"github.com/insightsource/catalog/internal/platform/migration"
	"github.com/insightsource/catalog/internal/seed"
)

var skipMigrate bool

// seedCmd loads the sample packaging catalog
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample packaging catalog",
	Long: `Insert three sample categories, three reports and three contact messages.

Records that already exist are skipped, so the command is safe to rerun.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply pending migrations first")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	if !skipMigrate {
		if err := migration.RunUp(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	categoryRepository := category.NewPostgresRepository(pool, cfg.QueryTimeout)
	categories := category.NewService(categoryRepository, logger)
	reports := report.NewService(report.NewPostgresRepository(pool, cfg.QueryTimeout), categoryRepository, logger)
	contacts := contact.NewService(contact.NewPostgresRepository(pool, cfg.QueryTimeout), logger)

	summary, err := seed.Run(ctx, categories, reports, contacts, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d reports, %d contact messages\n",
		summary.Categories, summary.Reports, summary.Contacts)
	return nil
}
