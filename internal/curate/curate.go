// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curate reduces a fetched batch to the papers worth
// publishing: duplicates collapse to their first-encountered instance
// and selection balances the digest across categories.
package curate

import (
	"sort"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// paperKey identifies a paper for dedup and selection bookkeeping:
// arXiv ID when present, title otherwise.
func paperKey(p *types.Paper) string {
	if p.ArxivID != "" {
		return p.ArxivID
	}
	return p.Title
}

// Deduplicate removes repeated papers, keeping the first-encountered
// instance. Papers are keyed by arXiv ID, falling back to title for
// papers without one.
func Deduplicate(papers []*types.Paper) []*types.Paper {
	seen := make(map[string]struct{}, len(papers))
	unique := make([]*types.Paper, 0, len(papers))
	for _, p := range papers {
		key := paperKey(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// Select picks up to target papers, spread across categories. Each
// non-empty category contributes its top papers by quality first; any
// remaining budget is backfilled from the global quality order. The
// result never exceeds target and never repeats a paper.
func Select(papers []*types.Paper, target int) []*types.Paper {
	if target <= 0 || len(papers) == 0 {
		return nil
	}

	groups, order := groupByCategory(papers)
	perGroup := target / len(order)
	if perGroup < 1 {
		perGroup = 1
	}

	chosen := make(map[string]struct{}, target)
	var selected []*types.Paper
	for _, category := range order {
		group := groups[category]
		sortByQuality(group)
		for i := 0; i < perGroup && i < len(group); i++ {
			if len(selected) >= target {
				return selected
			}
			selected = append(selected, group[i])
			chosen[paperKey(group[i])] = struct{}{}
		}
	}

	// Backfill from the global quality order, skipping papers already
	// chosen in the per-category round.
	remaining := make([]*types.Paper, len(papers))
	copy(remaining, papers)
	sortByQuality(remaining)
	for _, p := range remaining {
		if len(selected) >= target {
			break
		}
		if _, ok := chosen[paperKey(p)]; ok {
			continue
		}
		selected = append(selected, p)
		chosen[paperKey(p)] = struct{}{}
	}
	return selected
}

// groupByCategory buckets papers by assigned category, preserving the
// order in which categories are first encountered.
func groupByCategory(papers []*types.Paper) (map[string][]*types.Paper, []string) {
	groups := make(map[string][]*types.Paper)
	var order []string
	for _, p := range papers {
		if _, ok := groups[p.Category]; !ok {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}
	return groups, order
}

// sortByQuality orders papers by quality descending. The sort is
// stable so batch order breaks ties deterministically.
func sortByQuality(papers []*types.Paper) {
	sort.SliceStable(papers, func(i, j int) bool {
		return papers[i].QualityScore > papers[j].QualityScore
	})
}
