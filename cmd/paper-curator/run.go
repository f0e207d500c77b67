// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-curator/internal/fetch"
	"github.com/pdiddy/paper-curator/internal/logger"
	"github.com/pdiddy/paper-curator/internal/pipeline"
	"github.com/pdiddy/paper-curator/internal/quality"
	"github.com/pdiddy/paper-curator/internal/reputation"
	"github.com/pdiddy/paper-curator/internal/store"
	"github.com/pdiddy/paper-curator/internal/summarize"
	"github.com/pdiddy/paper-curator/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one full curation cycle",
	Long: `Run fetches recent papers for every configured category, scores and
classifies them, selects a balanced set, summarizes it, archives the papers,
and publishes a digest. Papers already archived are skipped.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, s, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := orch.Run(context.Background())
	if err != nil {
		return err
	}

	printReport(report)
	if report.HasFailures() {
		return fmt.Errorf("%d step(s) failed during the run", report.Failures)
	}
	return nil
}

// buildOrchestrator wires the pipeline stages from configuration. The
// returned store must be closed by the caller.
func buildOrchestrator(cfg *types.Config) (*pipeline.Orchestrator, *store.Store, error) {
	log := logger.Get()

	s, err := store.NewStore(cfg.Store.Path)
	if err != nil {
		return nil, nil, err
	}

	source := &fetch.ArxivSource{
		Client: &http.Client{Timeout: cfg.Fetch.Timeout},
		Cfg:    cfg.Fetch,
	}
	reputationClient := reputation.NewClient(cfg.Reputation, log)
	scorer := quality.NewScorer(reputationClient, cfg.Quality, log)
	chain := summarize.NewDefaultChain(cfg.Summarize, log)

	return pipeline.NewOrchestrator(source, scorer, chain, s, cfg, log), s, nil
}

func printReport(r pipeline.RunReport) {
	fmt.Fprintf(os.Stdout, "fetched %d, deduplicated to %d (%d already archived)\n",
		r.Fetched, r.Deduplicated, r.Known)
	fmt.Fprintf(os.Stdout, "scored %d, discarded %d below cutoff\n", r.Scored, r.Discarded)
	fmt.Fprintf(os.Stdout, "selected %d, summarized %d, persisted %d\n",
		r.Selected, r.Summarized, r.Persisted)
	if r.DigestID != "" {
		fmt.Fprintf(os.Stdout, "digest published: %s\n", r.DigestID)
	} else {
		fmt.Fprintln(os.Stdout, "no digest published")
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
