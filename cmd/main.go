package main

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "grbpwr-analytics",
		Short: "Service serving order analytics snapshots",
		RunE:  run,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Start the analytics http server",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the grbpwr-analytics service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	snapshotCmd.Flags().IntVarP(&snapshotPeriod, "period", "p", 30, "lookback in days")
	snapshotCmd.Flags().BoolVar(&snapshotExcludeCancelled, "exclude-cancelled", false, "drop cancelled orders from revenue and counts")
	rootCmd.AddCommand(runCmd, snapshotCmd, migrateCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}
