// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Heading forms the parser recognizes: Markdown headings and bold
// labels at the start of a line.
var (
	headingRe   = regexp.MustCompile(`^\s*#+\s*([A-Za-z0-9 /-]+)`)
	boldLabelRe = regexp.MustCompile(`^\s*\*\*([A-Za-z0-9 /-]+):?\*\*`)
)

// sectionSynonyms maps label substrings to canonical section keys, in
// match priority order.
var sectionSynonyms = []struct {
	substr    string
	canonical string
}{
	{"problem", "problem"},
	{"challenge", "problem"},
	{"key innovation", "innovation"},
	{"innovation", "innovation"},
	{"novelty", "innovation"},
	{"contribution", "innovation"},
	{"practical impact", "impact"},
	{"real-world impact", "impact"},
	{"implications", "impact"},
	{"impact", "impact"},
	{"analogy", "analogy"},
	{"intuitive explanation", "analogy"},
}

// parseSummary splits a provider response into the canonical summary
// sections. Unrecognized headings are kept under their own label in
// Extra. When a canonical section appears more than once, the first
// occurrence wins. A response with no recognizable headings becomes a
// single catch-all overview.
func parseSummary(text string) types.Summary {
	var s types.Summary

	current := ""
	var buffer []string
	flush := func() {
		if current == "" || len(buffer) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		if content == "" {
			return
		}
		setSection(&s, current, content)
	}

	for _, line := range strings.Split(text, "\n") {
		label := headingLabel(line)
		if label != "" {
			flush()
			current = label
			buffer = buffer[:0]
			continue
		}
		if current != "" {
			buffer = append(buffer, line)
		}
	}
	flush()

	if s.IsEmpty() {
		return types.Summary{Overview: strings.TrimSpace(text)}
	}
	return s
}

// headingLabel returns the normalized label of a heading line, or ""
// for an ordinary line.
func headingLabel(line string) string {
	if m := headingRe.FindStringSubmatch(line); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	if m := boldLabelRe.FindStringSubmatch(line); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	return ""
}

func setSection(s *types.Summary, label, content string) {
	for _, syn := range sectionSynonyms {
		if !strings.Contains(label, syn.substr) {
			continue
		}
		switch syn.canonical {
		case "problem":
			if s.Problem == "" {
				s.Problem = content
			}
		case "innovation":
			if s.Innovation == "" {
				s.Innovation = content
			}
		case "impact":
			if s.Impact == "" {
				s.Impact = content
			}
		case "analogy":
			if s.Analogy == "" {
				s.Analogy = content
			}
		}
		return
	}

	if s.Extra == nil {
		s.Extra = make(map[string]string)
	}
	if _, ok := s.Extra[label]; !ok {
		s.Extra[label] = content
	}
}
