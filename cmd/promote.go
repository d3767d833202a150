package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/notification"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <username>",
	Short: "Grant admin rights to a user",
	Long: `Grant admin rights to an existing user directly in the database.

Use it to recover a deployment whose admins are gone or locked out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}

		auditSvc := auditlog.NewService(auditlog.NewRepository(db))
		authSvc := auth.NewService(auth.NewRepository(db), cfg, auditSvc, notification.NopPublisher{})

		user, err := authSvc.PromoteByUsername(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", user.Username)
		return nil
	},
}
