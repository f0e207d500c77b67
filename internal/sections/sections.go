// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sections assembles the per-paper section material fed into
// the summarization prompt. Sections are built from candidate
// metadata: the abstract verbatim, plus contribution-style sentences
// pulled out of it by keyword.
package sections

import (
	"strings"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// contributionKeywords mark sentences that state what the paper adds.
var contributionKeywords = []string{
	"contribution", "introduce", "propose", "develop", "novel",
}

const maxContributionSentences = 3

// FromPaper builds the section map for one paper. The abstract is
// always present when the paper has one; a contributions entry is
// added when the abstract contains contribution-style sentences.
func FromPaper(p *types.Paper) map[string]string {
	sections := make(map[string]string)

	abstract := strings.TrimSpace(p.Abstract)
	if abstract == "" {
		return sections
	}
	sections["abstract"] = abstract

	if contributions := extractContributions(abstract); contributions != "" {
		sections["contributions"] = contributions
	}
	return sections
}

// extractContributions joins up to three sentences mentioning a
// contribution keyword.
func extractContributions(text string) string {
	var picked []string
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, kw := range contributionKeywords {
			if strings.Contains(lower, kw) {
				picked = append(picked, sentence)
				break
			}
		}
		if len(picked) >= maxContributionSentences {
			break
		}
	}
	return strings.Join(picked, ". ")
}

// splitSentences breaks text on sentence-ending punctuation, dropping
// fragments too short to carry meaning.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		s := strings.TrimSpace(text[start:i])
		if len(s) >= 20 {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(text[start:]); len(s) >= 20 {
		sentences = append(sentences, s)
	}
	return sentences
}
