// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"testing"
)

func TestParseSummaryMarkdownHeadings(t *testing.T) {
	text := `### Problem
Training is slow.

### Key Innovation
A faster attention kernel.

### Practical Impact
Cheaper model training.

### Analogy / Intuitive Explanation
Like a carpool lane for data.`

	s := parseSummary(text)
	if s.Problem != "Training is slow." {
		t.Errorf("Problem = %q", s.Problem)
	}
	if s.Innovation != "A faster attention kernel." {
		t.Errorf("Innovation = %q", s.Innovation)
	}
	if s.Impact != "Cheaper model training." {
		t.Errorf("Impact = %q", s.Impact)
	}
	if s.Analogy != "Like a carpool lane for data." {
		t.Errorf("Analogy = %q", s.Analogy)
	}
	if s.Overview != "" {
		t.Errorf("Overview = %q, want empty", s.Overview)
	}
}

func TestParseSummaryBoldLabels(t *testing.T) {
	text := `**Problem:**
Models hallucinate.

**Novelty:**
Retrieval grounding.

**Impact:**
Safer assistants.`

	s := parseSummary(text)
	if s.Problem != "Models hallucinate." {
		t.Errorf("Problem = %q", s.Problem)
	}
	if s.Innovation != "Retrieval grounding." {
		t.Errorf("Innovation = %q (novelty should map to innovation)", s.Innovation)
	}
	if s.Impact != "Safer assistants." {
		t.Errorf("Impact = %q", s.Impact)
	}
}

func TestParseSummarySynonyms(t *testing.T) {
	s := parseSummary("### Challenge\ncontent a\n### Contribution\ncontent b\n### Implications\ncontent c\n### Intuitive Explanation\ncontent d")
	if s.Problem != "content a" {
		t.Errorf("Problem = %q", s.Problem)
	}
	if s.Innovation != "content b" {
		t.Errorf("Innovation = %q", s.Innovation)
	}
	if s.Impact != "content c" {
		t.Errorf("Impact = %q", s.Impact)
	}
	if s.Analogy != "content d" {
		t.Errorf("Analogy = %q", s.Analogy)
	}
}

func TestParseSummaryFirstSeenWins(t *testing.T) {
	s := parseSummary("### Problem\nfirst\n### Main Problem\nsecond")
	if s.Problem != "first" {
		t.Errorf("Problem = %q, want first occurrence kept", s.Problem)
	}
}

func TestParseSummaryUnrecognizedHeadingGoesToExtra(t *testing.T) {
	s := parseSummary("### Problem\nthe problem\n### Limitations\nneeds big GPUs")
	if s.Extra["limitations"] != "needs big GPUs" {
		t.Errorf("Extra = %v", s.Extra)
	}
}

func TestParseSummaryNoHeadings(t *testing.T) {
	s := parseSummary("  Just a plain paragraph of text.  ")
	if s.Overview != "Just a plain paragraph of text." {
		t.Errorf("Overview = %q", s.Overview)
	}
	if s.Problem != "" || s.Innovation != "" {
		t.Error("no canonical sections expected")
	}
}

func TestRuleBasedOutputParsesIntoAllSections(t *testing.T) {
	text, err := RuleBasedProvider{}.Generate(context.Background(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s := parseSummary(text)
	if s.Problem == "" || s.Innovation == "" || s.Impact == "" || s.Analogy == "" {
		t.Errorf("rule-based output did not fill all sections: %+v", s)
	}
}
