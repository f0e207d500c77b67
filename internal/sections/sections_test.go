// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sections

import (
	"strings"
	"testing"

	"github.com/pdiddy/paper-curator/pkg/types"
)

func TestFromPaper(t *testing.T) {
	p := &types.Paper{
		Abstract: "Training large models is expensive and slow for most teams. " +
			"We propose a sparse attention mechanism that cuts compute in half. " +
			"Experiments show matching accuracy on standard benchmarks.",
	}

	sections := FromPaper(p)
	if !strings.HasPrefix(sections["abstract"], "Training large models") {
		t.Errorf("abstract = %q", sections["abstract"])
	}
	if !strings.Contains(sections["contributions"], "sparse attention") {
		t.Errorf("contributions = %q, want the propose sentence", sections["contributions"])
	}
	if strings.Contains(sections["contributions"], "expensive and slow") {
		t.Errorf("contributions = %q, includes non-contribution sentence", sections["contributions"])
	}
}

func TestFromPaperNoAbstract(t *testing.T) {
	sections := FromPaper(&types.Paper{Title: "Untitled"})
	if len(sections) != 0 {
		t.Errorf("sections = %v, want empty map", sections)
	}
}

func TestFromPaperNoContributionSentences(t *testing.T) {
	p := &types.Paper{Abstract: "A survey of existing benchmark datasets and their licensing terms."}
	sections := FromPaper(p)
	if _, ok := sections["contributions"]; ok {
		t.Errorf("contributions present: %q", sections["contributions"])
	}
	if sections["abstract"] == "" {
		t.Error("abstract missing")
	}
}

func TestExtractContributionsCapsAtThree(t *testing.T) {
	text := "We introduce method one for parsing. We propose method two for search. " +
		"We develop method three for ranking. We introduce method four for storage."
	got := extractContributions(text)
	if strings.Contains(got, "method four") {
		t.Errorf("contributions = %q, want at most three sentences", got)
	}
	for _, want := range []string{"method one", "method two", "method three"} {
		if !strings.Contains(got, want) {
			t.Errorf("contributions = %q, missing %q", got, want)
		}
	}
}
