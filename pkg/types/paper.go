// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Paper holds the metadata of one fetched publication candidate plus the
// derived curation fields the pipeline attaches to it. The fetched fields
// (identifier through Source) are immutable after fetch; everything else
// is recomputed per run.
type Paper struct {
	// ArxivID is the source-assigned identifier with any version suffix
	// stripped (e.g. "2301.07041").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Categories lists the subject tags assigned by the source
	// (e.g. "cs.LG", "cs.CL").
	Categories []string `json:"categories" yaml:"categories"`

	// Published is the publication or preprint date.
	Published time.Time `json:"published" yaml:"published"`

	// Source identifies the literature source (e.g. "arxiv").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// QualityScore is the bounded [0,1] author/institution quality score.
	QualityScore float64 `json:"quality_score" yaml:"quality_score"`

	// AuthorHIndices holds the productivity indices collected while
	// scoring, in author order, resolved authors only.
	AuthorHIndices []int `json:"author_h_indices,omitempty" yaml:"author_h_indices,omitempty"`

	// AuthorInstitutions holds the lowercased affiliation names collected
	// while scoring.
	AuthorInstitutions []string `json:"author_institutions,omitempty" yaml:"author_institutions,omitempty"`

	// Category is the curated category label assigned by the classifier.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// CategoryScores maps every known category to its cosine similarity.
	// Scores are comparable only within the batch that produced them.
	CategoryScores map[string]float64 `json:"category_scores,omitempty" yaml:"category_scores,omitempty"`

	// Summary is the generated structured summary, if any.
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ReputationEntry is the cached result of one author-reputation lookup.
type ReputationEntry struct {
	// HIndex is the author's productivity index, 0 when unknown.
	HIndex int `json:"h_index" yaml:"h_index"`

	// Affiliations lists the author's affiliation names, possibly empty.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}
