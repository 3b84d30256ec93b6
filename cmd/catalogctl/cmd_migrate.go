package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insightsource/catalog/internal/platform/config"
	"github.com/insightsource/catalog/internal/platform/migration"
)

var downSteps int

// migrateCmd groups schema migration commands
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		return migration.RunUp(cfg.DatabaseURL, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	Long: `Roll back applied migrations, one step by default.

Rolling back the initial migration drops every catalog table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if downSteps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}

		cfg, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		return migration.RunDown(cfg.DatabaseURL, downSteps, logger)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "Number of migrations to roll back")
}
