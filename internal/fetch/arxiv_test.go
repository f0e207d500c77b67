// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-curator/pkg/types"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2301.07041v2</id>
    <title>Attention  Is
      All You Need</title>
    <summary> We propose a new architecture. </summary>
    <published>2023-01-17T12:00:00Z</published>
    <author><name> Ashish Vaswani </name></author>
    <author><name>Noam Shazeer</name></author>
    <category term="cs.LG"/>
    <category term="cs.CL"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2302.00001v1</id>
    <title>Second Paper</title>
    <summary>Another abstract.</summary>
    <published>2023-02-01T00:00:00Z</published>
    <author><name>Jane Doe</name></author>
    <category term="cs.AI"/>
  </entry>
</feed>`

func testSource() *ArxivSource {
	return &ArxivSource{
		Client: http.DefaultClient,
		Cfg: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: "test/0.1",
			},
			MaxPerCategory: 3,
		},
	}
}

func TestFetchByCategory(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(sampleFeed))
	}))
	defer ts.Close()

	orig := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = orig }()

	papers, err := testSource().FetchByCategory(context.Background(), []string{"large language model", "llm"}, 5)
	if err != nil {
		t.Fatalf("FetchByCategory: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.ArxivID != "2301.07041" {
		t.Errorf("ArxivID = %q, want version suffix stripped", p.ArxivID)
	}
	if p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, want whitespace normalized", p.Title)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Ashish Vaswani" {
		t.Errorf("Authors = %v", p.Authors)
	}
	if len(p.Categories) != 2 || p.Categories[0] != "cs.LG" {
		t.Errorf("Categories = %v", p.Categories)
	}
	if p.Published.Format("2006-01-02") != "2023-01-17" {
		t.Errorf("Published = %v", p.Published)
	}
	if p.Source != "arxiv" {
		t.Errorf("Source = %q", p.Source)
	}

	for _, want := range []string{"all:large+language+model", "all:llm", "cat:cs", "sortBy=submittedDate"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestFetchByCategoryCapsResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer ts.Close()

	orig := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = orig }()

	papers, err := testSource().FetchByCategory(context.Background(), []string{"llm"}, 1)
	if err != nil {
		t.Fatalf("FetchByCategory: %v", err)
	}
	if len(papers) != 1 {
		t.Errorf("len(papers) = %d, want 1", len(papers))
	}
}

func TestFetchByCategoryEmptyKeywords(t *testing.T) {
	if _, err := testSource().FetchByCategory(context.Background(), nil, 3); err == nil {
		t.Error("expected error for empty keyword list")
	}
}

func TestFetchByCategoryServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	orig := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = orig }()

	if _, err := testSource().FetchByCategory(context.Background(), []string{"llm"}, 3); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"http://arxiv.org/abs/2301.07041", "2301.07041"},
		{"http://arxiv.org/abs/cs/0112017v2", "cs/0112017"},
		{"http://example.com/nothing", ""},
	}
	for _, tt := range tests {
		if got := extractArxivID(tt.in); got != tt.want {
			t.Errorf("extractArxivID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
