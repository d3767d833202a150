package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		if err := migrations.Run(db); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}
