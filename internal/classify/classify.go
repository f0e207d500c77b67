// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns each paper to the configured category whose
// keyword profile is most similar to the paper's title and abstract,
// using TF-IDF over a joint category-and-paper vocabulary.
package classify

import (
	"fmt"
	"log/slog"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Classify scores every paper that does not already carry category
// scores against all categories and assigns the best match. Papers
// with existing scores are left untouched. Scores are batch-local:
// the vocabulary is fitted jointly on this batch's categories and
// papers.
func Classify(papers []*types.Paper, categories []types.Category, log *slog.Logger) error {
	if len(categories) == 0 {
		return fmt.Errorf("no categories configured")
	}

	var pending []*types.Paper
	for _, p := range papers {
		if len(p.CategoryScores) == 0 {
			pending = append(pending, p)
		}
	}
	if len(pending) == 0 {
		log.Debug("no papers need classification")
		return nil
	}

	docs := make([]string, 0, len(categories)+len(pending))
	for _, c := range categories {
		docs = append(docs, categoryText(c))
	}
	for _, p := range pending {
		docs = append(docs, p.Title+" "+p.Abstract)
	}

	vectors := newVectorizer().fitTransform(docs)
	categoryVectors := vectors[:len(categories)]
	paperVectors := vectors[len(categories):]

	for i, p := range pending {
		scores := make(map[string]float64, len(categories))
		best := 0
		for j, c := range categories {
			s := cosine(paperVectors[i], categoryVectors[j])
			scores[c.Name] = s
			// Strictly greater keeps the first category on ties.
			if s > scores[categories[best].Name] {
				best = j
			}
		}
		p.CategoryScores = scores
		p.Category = categories[best].Name
		log.Debug("classified paper", "arxiv_id", p.ArxivID, "category", p.Category)
	}
	return nil
}

func categoryText(c types.Category) string {
	text := c.Name
	for _, kw := range c.Keywords {
		text += " " + kw
	}
	return text
}
