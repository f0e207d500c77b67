// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-curator/internal/logger"
	"github.com/pdiddy/paper-curator/internal/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the curation pipeline on a schedule",
	Long: `Serve starts the interval scheduler and blocks until interrupted.
Each tick executes one full curation cycle; ticks arriving while a run is
still in progress are skipped, as are ticks delayed past the misfire grace
window. Pass --now to fire an immediate run before the first tick.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, s, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Get()
	if immediate, _ := cmd.Flags().GetBool("now"); immediate {
		report, err := orch.Run(ctx)
		if err != nil {
			log.Error("initial run failed", "error", err)
		} else {
			log.Info("initial run finished", "selected", report.Selected, "digest_id", report.DigestID)
		}
	}

	pipeline.NewScheduler(orch, cfg.Schedule, log).Start(ctx)
	return nil
}

func init() {
	serveCmd.Flags().Bool("now", false, "execute a run immediately on startup")
	rootCmd.AddCommand(serveCmd)
}
