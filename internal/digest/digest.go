// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest builds the publication artifact for a pipeline run: a
// titled collection referencing selected papers by ID, plus Markdown
// and YAML renderings of it.
package digest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-curator/pkg/types"
)

const maxAuthorsShown = 3

// Build assembles a digest from the selected papers. The digest holds
// paper IDs and category names only; paper content stays in the store.
func Build(papers []*types.Paper, now time.Time) *types.Digest {
	d := &types.Digest{
		ID:        uuid.NewString(),
		Title:     "AI Research Roundup — " + now.Format("January 2, 2006"),
		CreatedAt: now,
	}

	seen := make(map[string]struct{})
	for _, p := range papers {
		d.PaperIDs = append(d.PaperIDs, p.ArxivID)
		if _, ok := seen[p.Category]; !ok && p.Category != "" {
			seen[p.Category] = struct{}{}
			d.Categories = append(d.Categories, p.Category)
		}
	}

	d.Summary = fmt.Sprintf("This roundup covers %d papers across %d categories.",
		len(d.PaperIDs), len(d.Categories))
	return d
}

// Render writes the digest as Markdown, grouped by category. Papers
// must be the resolved records for the digest's IDs; papers without a
// generated summary fall back to a trimmed abstract.
func Render(w io.Writer, d *types.Digest, papers []*types.Paper) error {
	var b strings.Builder
	b.WriteString("# " + d.Title + "\n\n")
	b.WriteString(d.Summary + "\n\n")

	groups, order := groupByCategory(papers)
	for _, category := range order {
		b.WriteString("## " + category + "\n\n")
		for _, p := range groups[category] {
			writePaper(&b, p)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writePaper(b *strings.Builder, p *types.Paper) {
	b.WriteString("### " + p.Title + "\n\n")
	b.WriteString("**Authors:** " + formatAuthors(p.Authors) + "\n\n")

	if p.Summary != nil && !p.Summary.IsEmpty() {
		writeSummary(b, p.Summary)
	} else {
		b.WriteString(truncate(p.Abstract, 300) + "\n\n")
	}

	fmt.Fprintf(b, "[Read Full Paper](https://arxiv.org/abs/%s)\n\n---\n\n", p.ArxivID)
}

func writeSummary(b *strings.Builder, s *types.Summary) {
	sections := []struct {
		heading string
		text    string
	}{
		{"Problem", s.Problem},
		{"Key Innovation", s.Innovation},
		{"Practical Impact", s.Impact},
		{"Analogy", s.Analogy},
	}
	for _, sec := range sections {
		if sec.text != "" {
			b.WriteString("**" + sec.heading + ":** " + sec.text + "\n\n")
		}
	}
	if s.Overview != "" {
		b.WriteString(s.Overview + "\n\n")
	}
}

// WriteYAML exports the digest with its resolved papers for external
// tooling.
func WriteYAML(w io.Writer, d *types.Digest, papers []*types.Paper) error {
	doc := struct {
		Digest *types.Digest  `yaml:"digest"`
		Papers []*types.Paper `yaml:"papers"`
	}{Digest: d, Papers: papers}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding digest: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing digest: %w", err)
	}
	return nil
}

func groupByCategory(papers []*types.Paper) (map[string][]*types.Paper, []string) {
	groups := make(map[string][]*types.Paper)
	var order []string
	for _, p := range papers {
		category := p.Category
		if category == "" {
			category = "General AI"
		}
		if _, ok := groups[category]; !ok {
			order = append(order, category)
		}
		groups[category] = append(groups[category], p)
	}
	return groups, order
}

func formatAuthors(authors []string) string {
	if len(authors) <= maxAuthorsShown {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:maxAuthorsShown], ", ") + "..."
}

// truncate shortens s to at most max runes. Cutting on a rune boundary
// keeps multi-byte characters in abstracts and titles intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
