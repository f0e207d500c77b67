// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quality scores candidate papers from author reputation and
// institutional prestige. Scores are deterministic for a fixed set of
// reputation entries.
package quality

import (
	"context"
	"log/slog"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Score weights and the h-index saturation point. An average h-index at
// or above saturationDefault maxes out the reputation component.
const (
	hIndexWeight   = 0.7
	prestigeWeight = 0.3
)

// ReputationSource resolves an author name to a reputation entry. The
// second return value reports whether the author was resolved at all.
type ReputationSource interface {
	Lookup(ctx context.Context, authorName string) (types.ReputationEntry, bool)
}

// Scorer assigns quality scores to papers.
type Scorer struct {
	reputation ReputationSource
	cfg        types.QualityConfig
	log        *slog.Logger
}

// NewScorer builds a scorer, applying defaults for zero config values.
func NewScorer(reputation ReputationSource, cfg types.QualityConfig, log *slog.Logger) *Scorer {
	if cfg.MaxAuthors <= 0 {
		cfg.MaxAuthors = 5
	}
	if cfg.SaturationIndex <= 0 {
		cfg.SaturationIndex = 50
	}
	return &Scorer{reputation: reputation, cfg: cfg, log: log}
}

// Score computes the quality score for one paper and records the author
// reputation data it was derived from. Only the first MaxAuthors
// authors are consulted; unresolved authors are excluded from the
// h-index average. A reputation outage degrades the score toward zero
// rather than failing the paper.
func (s *Scorer) Score(ctx context.Context, p *types.Paper) {
	authors := p.Authors
	if len(authors) > s.cfg.MaxAuthors {
		authors = authors[:s.cfg.MaxAuthors]
	}

	var hIndices []int
	var institutions []string
	for _, name := range authors {
		entry, found := s.reputation.Lookup(ctx, name)
		if !found {
			continue
		}
		hIndices = append(hIndices, entry.HIndex)
		institutions = append(institutions, entry.Affiliations...)
	}

	p.AuthorHIndices = hIndices
	p.AuthorInstitutions = institutions
	p.QualityScore = computeScore(hIndices, institutions, s.cfg.SaturationIndex)

	s.log.Debug("scored paper", "arxiv_id", p.ArxivID,
		"score", p.QualityScore, "authors_resolved", len(hIndices))
}

// MinScore returns the cutoff below which papers are discarded.
func (s *Scorer) MinScore() float64 { return s.cfg.MinScore }

// computeScore combines the normalized average h-index with a binary
// prestige signal. Either component alone can carry a paper past a
// reasonable cutoff.
func computeScore(hIndices []int, institutions []string, saturation float64) float64 {
	var score float64

	if len(hIndices) > 0 {
		sum := 0
		for _, h := range hIndices {
			sum += h
		}
		avg := float64(sum) / float64(len(hIndices))
		norm := avg / saturation
		if norm > 1 {
			norm = 1
		}
		score += norm * hIndexWeight
	}

	for _, inst := range institutions {
		if isPrestigious(inst) {
			score += prestigeWeight
			break
		}
	}

	return score
}
