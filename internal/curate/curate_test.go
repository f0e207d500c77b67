// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curate

import (
	"testing"

	"github.com/pdiddy/paper-curator/pkg/types"
)

func paper(id, category string, quality float64) *types.Paper {
	return &types.Paper{ArxivID: id, Title: "title " + id, Category: category, QualityScore: quality}
}

func TestDeduplicateKeepsFirstInstance(t *testing.T) {
	first := paper("2301.00001", "a", 0.9)
	first.Source = "arxiv"
	duplicate := paper("2301.00001", "a", 0.1)
	duplicate.Source = "other"

	unique := Deduplicate([]*types.Paper{first, duplicate, paper("2301.00002", "a", 0.5)})
	if len(unique) != 2 {
		t.Fatalf("len(unique) = %d, want 2", len(unique))
	}
	if unique[0].Source != "arxiv" {
		t.Errorf("Source = %q, want first-encountered instance kept", unique[0].Source)
	}
}

func TestDeduplicateFallsBackToTitle(t *testing.T) {
	a := &types.Paper{Title: "Same Title"}
	b := &types.Paper{Title: "Same Title"}
	c := &types.Paper{Title: "Other Title"}

	unique := Deduplicate([]*types.Paper{a, b, c})
	if len(unique) != 2 {
		t.Errorf("len(unique) = %d, want 2", len(unique))
	}
}

func TestSelectBalancesAcrossCategories(t *testing.T) {
	papers := []*types.Paper{
		paper("1", "llm", 0.9),
		paper("2", "llm", 0.8),
		paper("3", "llm", 0.7),
		paper("4", "vision", 0.3),
		paper("5", "vision", 0.2),
	}

	selected := Select(papers, 4)
	if len(selected) != 4 {
		t.Fatalf("len(selected) = %d, want 4", len(selected))
	}

	counts := map[string]int{}
	for _, p := range selected {
		counts[p.Category]++
	}
	// target/categories = 2 per group; backfill does not run since the
	// per-category round fills the budget exactly.
	if counts["llm"] != 2 || counts["vision"] != 2 {
		t.Errorf("category counts = %v, want 2 llm and 2 vision", counts)
	}
}

func TestSelectBackfillsByGlobalQuality(t *testing.T) {
	papers := []*types.Paper{
		paper("1", "llm", 0.9),
		paper("2", "llm", 0.8),
		paper("3", "llm", 0.7),
		paper("4", "vision", 0.3),
	}

	// 2 groups, target 4: each group contributes 2 (vision only has 1),
	// then backfill adds the best remaining paper.
	selected := Select(papers, 4)
	if len(selected) != 4 {
		t.Fatalf("len(selected) = %d, want 4", len(selected))
	}
	ids := map[string]bool{}
	for _, p := range selected {
		if ids[p.ArxivID] {
			t.Fatalf("paper %s selected twice", p.ArxivID)
		}
		ids[p.ArxivID] = true
	}
	if !ids["3"] {
		t.Error("backfill should have added the best remaining paper")
	}
}

func TestSelectNeverExceedsTarget(t *testing.T) {
	var papers []*types.Paper
	for i := 0; i < 20; i++ {
		papers = append(papers, paper(string(rune('a'+i)), "llm", float64(i)/20))
	}
	if got := len(Select(papers, 5)); got != 5 {
		t.Errorf("len(selected) = %d, want 5", got)
	}
}

func TestSelectEveryCategoryRepresented(t *testing.T) {
	// More categories than target: the per-category round caps at
	// target, giving the earliest-encountered categories one slot each.
	papers := []*types.Paper{
		paper("1", "a", 0.1),
		paper("2", "b", 0.9),
		paper("3", "c", 0.5),
	}
	selected := Select(papers, 2)
	if len(selected) != 2 {
		t.Fatalf("len(selected) = %d, want 2", len(selected))
	}
	if selected[0].Category != "a" || selected[1].Category != "b" {
		t.Errorf("selected categories = %q, %q; want one each from a and b",
			selected[0].Category, selected[1].Category)
	}
}

func TestSelectBackfillsPapersWithoutIDs(t *testing.T) {
	// Papers with no arXiv ID fall back to their title as identity, so
	// one ID-less pick must not block others from backfill.
	papers := []*types.Paper{
		{Title: "First LLM Paper", Category: "llm", QualityScore: 0.9},
		{Title: "Second LLM Paper", Category: "llm", QualityScore: 0.8},
		{Title: "Vision Paper", Category: "vision", QualityScore: 0.5},
	}

	// 2 groups, target 3: one per group, then backfill for the third.
	selected := Select(papers, 3)
	if len(selected) != 3 {
		t.Fatalf("len(selected) = %d, want 3", len(selected))
	}
	titles := map[string]bool{}
	for _, p := range selected {
		if titles[p.Title] {
			t.Fatalf("paper %q selected twice", p.Title)
		}
		titles[p.Title] = true
	}
	if !titles["Second LLM Paper"] {
		t.Error("backfill should have added the remaining paper")
	}
}

func TestSelectEmptyBatch(t *testing.T) {
	if got := Select(nil, 10); got != nil {
		t.Errorf("Select(nil) = %v, want nil", got)
	}
}

func TestSelectZeroTarget(t *testing.T) {
	if got := Select([]*types.Paper{paper("1", "a", 0.5)}, 0); got != nil {
		t.Errorf("Select(target=0) = %v, want nil", got)
	}
}
