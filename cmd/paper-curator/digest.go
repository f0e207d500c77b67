// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-curator/internal/digest"
	"github.com/pdiddy/paper-curator/internal/store"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Inspect and export published digests",
}

// --- list subcommand ---

var digestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published digests",
	RunE:  runDigestList,
}

func runDigestList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	digests, err := s.ListDigests()
	if err != nil {
		return err
	}
	if len(digests) == 0 {
		fmt.Println("No digests published yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-38s  %-34s  %-7s  %s\n", "ID", "Title", "Papers", "Created")
	for _, d := range digests {
		title := d.Title
		if runes := []rune(title); len(runes) > 34 {
			title = string(runes[:31]) + "..."
		}
		fmt.Fprintf(os.Stdout, "%-38s  %-34s  %-7d  %s\n",
			d.ID, title, len(d.PaperIDs), d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// --- show subcommand ---

var digestShowCmd = &cobra.Command{
	Use:   "show [digest-id]",
	Short: "Render one digest as Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runDigestShow,
}

func runDigestShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.GetDigest(args[0])
	if err != nil {
		return err
	}
	papers, err := s.GetPapers(d.PaperIDs)
	if err != nil {
		return err
	}
	return digest.Render(os.Stdout, d, papers)
}

// --- export subcommand ---

var digestExportCmd = &cobra.Command{
	Use:   "export [digest-id]",
	Short: "Export one digest with its papers as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runDigestExport,
}

func runDigestExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.GetDigest(args[0])
	if err != nil {
		return err
	}
	papers, err := s.GetPapers(d.PaperIDs)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return digest.WriteYAML(os.Stdout, d, papers)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	if err := digest.WriteYAML(f, d, papers); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Exported to", out)
	return nil
}

// openStore opens the archive at the configured path.
func openStore() (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return store.NewStore(cfg.Store.Path)
}

func init() {
	digestExportCmd.Flags().String("out", "", "write the export to a file instead of stdout")

	digestCmd.AddCommand(digestListCmd)
	digestCmd.AddCommand(digestShowCmd)
	digestCmd.AddCommand(digestExportCmd)

	rootCmd.AddCommand(digestCmd)
}
