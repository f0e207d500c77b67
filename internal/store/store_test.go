// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/paper-curator/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "papers.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePaper(id string) *types.Paper {
	return &types.Paper{
		ArxivID:            id,
		Title:              "Sample Paper " + id,
		Authors:            []string{"Jane Doe", "John Smith"},
		Abstract:           "An abstract.",
		Categories:         []string{"cs.LG"},
		Published:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Source:             "arxiv",
		QualityScore:       0.65,
		AuthorHIndices:     []int{40, 10},
		AuthorInstitutions: []string{"stanford university"},
		Category:           "Generative AI & LLMs",
		CategoryScores:     map[string]float64{"Generative AI & LLMs": 0.8},
		Summary: &types.Summary{
			Problem:  "Slow training.",
			Provider: "rule-based",
		},
	}
}

func TestInsertAndGetAll(t *testing.T) {
	s := testStore(t)

	written, err := s.Insert(samplePaper("2301.00001"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !written {
		t.Fatal("Insert reported no row written")
	}

	papers, err := s.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}

	p := papers[0]
	if p.Title != "Sample Paper 2301.00001" {
		t.Errorf("Title = %q", p.Title)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Jane Doe" {
		t.Errorf("Authors = %v", p.Authors)
	}
	if p.QualityScore != 0.65 {
		t.Errorf("QualityScore = %v", p.QualityScore)
	}
	if p.CategoryScores["Generative AI & LLMs"] != 0.8 {
		t.Errorf("CategoryScores = %v", p.CategoryScores)
	}
	if p.Summary == nil || p.Summary.Problem != "Slow training." {
		t.Errorf("Summary = %+v", p.Summary)
	}
	if !p.Published.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Published = %v", p.Published)
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	s := testStore(t)

	if _, err := s.Insert(samplePaper("2301.00001")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	changed := samplePaper("2301.00001")
	changed.Title = "Changed Title"
	written, err := s.Insert(changed)
	if err != nil {
		t.Fatalf("Insert duplicate: %v", err)
	}
	if written {
		t.Error("duplicate insert reported a row written")
	}

	papers, err := s.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(papers) != 1 || papers[0].Title != "Sample Paper 2301.00001" {
		t.Errorf("archive changed by duplicate insert: %v", papers)
	}
}

func TestExists(t *testing.T) {
	s := testStore(t)

	if ok, err := s.Exists("2301.00001"); err != nil || ok {
		t.Errorf("Exists before insert = %v, %v", ok, err)
	}
	if _, err := s.Insert(samplePaper("2301.00001")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if ok, err := s.Exists("2301.00001"); err != nil || !ok {
		t.Errorf("Exists after insert = %v, %v", ok, err)
	}
}

func TestGetPapersPreservesRequestOrder(t *testing.T) {
	s := testStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := s.Insert(samplePaper(id)); err != nil {
			t.Fatalf("Insert %s: %v", id, err)
		}
	}

	papers, err := s.GetPapers([]string{"c", "missing", "a"})
	if err != nil {
		t.Fatalf("GetPapers: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2 (unknown IDs skipped)", len(papers))
	}
	if papers[0].ArxivID != "c" || papers[1].ArxivID != "a" {
		t.Errorf("order = %s, %s; want c, a", papers[0].ArxivID, papers[1].ArxivID)
	}
}

func TestUpdateCategory(t *testing.T) {
	s := testStore(t)
	if _, err := s.Insert(samplePaper("2301.00001")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	scores := map[string]float64{"Agentic AI": 0.7, "Computer Vision": 0.1}
	if err := s.UpdateCategory("2301.00001", "Agentic AI", scores); err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}

	papers, err := s.GetPapers([]string{"2301.00001"})
	if err != nil {
		t.Fatalf("GetPapers: %v", err)
	}
	if papers[0].Category != "Agentic AI" {
		t.Errorf("Category = %q", papers[0].Category)
	}
	if papers[0].CategoryScores["Agentic AI"] != 0.7 {
		t.Errorf("CategoryScores = %v", papers[0].CategoryScores)
	}
}

func TestDigestRoundTrip(t *testing.T) {
	s := testStore(t)

	d := &types.Digest{
		ID:         "digest-1",
		Title:      "AI Research Roundup",
		Summary:    "Three papers this week.",
		PaperIDs:   []string{"a", "b", "c"},
		Categories: []string{"Generative AI & LLMs"},
		CreatedAt:  time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	if err := s.SaveDigest(d); err != nil {
		t.Fatalf("SaveDigest: %v", err)
	}

	got, err := s.GetDigest("digest-1")
	if err != nil {
		t.Fatalf("GetDigest: %v", err)
	}
	if got.Title != d.Title || len(got.PaperIDs) != 3 || got.PaperIDs[1] != "b" {
		t.Errorf("digest = %+v", got)
	}
	if !got.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("CreatedAt = %v", got.CreatedAt)
	}

	list, err := s.ListDigests()
	if err != nil {
		t.Fatalf("ListDigests: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len(list) = %d, want 1", len(list))
	}
}

func TestGetDigestNotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.GetDigest("missing"); err == nil {
		t.Error("expected error for unknown digest")
	}
}
