package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		db, err := store.Open(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("couldn't connect to mysql: %w", err)
		}
		defer db.Close()

		return store.MigrateWithContext(ctx, db)
	},
}
