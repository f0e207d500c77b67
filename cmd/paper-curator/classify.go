// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-curator/internal/classify"
	"github.com/pdiddy/paper-curator/internal/logger"
	"github.com/pdiddy/paper-curator/internal/store"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Backfill category assignments for archived papers",
	Long: `Classify re-runs category assignment over the archive. By default only
papers without category scores are processed; --all recomputes every paper
against the current category configuration.`,
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := store.NewStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	papers, err := s.GetAll()
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		fmt.Println("Archive is empty, nothing to classify.")
		return nil
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		for _, p := range papers {
			p.CategoryScores = nil
		}
	}

	pending := 0
	for _, p := range papers {
		if len(p.CategoryScores) == 0 {
			pending++
		}
	}
	if pending == 0 {
		fmt.Println("All archived papers already have category scores.")
		return nil
	}

	if err := classify.Classify(papers, cfg.Categories, logger.Get()); err != nil {
		return err
	}

	updated := 0
	for _, p := range papers {
		if err := s.UpdateCategory(p.ArxivID, p.Category, p.CategoryScores); err != nil {
			fmt.Fprintf(os.Stderr, "failed to update %s: %v\n", p.ArxivID, err)
			continue
		}
		updated++
	}
	fmt.Fprintf(os.Stdout, "classified %d paper(s), updated %d\n", pending, updated)
	return nil
}

func init() {
	classifyCmd.Flags().Bool("all", false, "recompute categories for every archived paper")
	rootCmd.AddCommand(classifyCmd)
}
