package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-analytics/app"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jekabolt/grbpwr-analytics/internal/middleware"
	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/spf13/cobra"
)

var (
	snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Compute one analytics snapshot and print it as JSON",
		RunE:  snapshot,
	}

	snapshotPeriod           int
	snapshotExcludeCancelled bool
)

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = middleware.WithRequestID(ctx, uuid.NewString())

	// the snapshot command never migrates
	cfg.DB.Automigrate = false
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	s, err := app.NewSnapshotter(cfg, db)
	if err != nil {
		return err
	}
	snap, err := s.Snapshot(ctx, entity.SnapshotRequest{
		LookbackDays:     snapshotPeriod,
		ExcludeCancelled: snapshotExcludeCancelled,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
