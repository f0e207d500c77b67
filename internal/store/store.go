// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists curated papers and published digests in a
// SQLite database. Structured fields (author lists, score vectors,
// summaries, digest membership) are stored as JSON columns; digests
// reference papers by ID only.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Store manages the paper archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database at path, creating parent
// directories and the schema as needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			arxiv_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors TEXT,
			abstract TEXT,
			arxiv_categories TEXT,
			published TEXT,
			source TEXT,
			quality_score REAL,
			author_h_indices TEXT,
			author_institutions TEXT,
			category TEXT,
			category_scores TEXT,
			summary TEXT,
			created_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_category ON papers(category)`,
		`CREATE TABLE IF NOT EXISTS digests (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			summary TEXT,
			paper_ids TEXT NOT NULL,
			categories TEXT,
			created_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Exists reports whether a paper with the given arXiv ID is already
// archived.
func (s *Store) Exists(arxivID string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT count(*) FROM papers WHERE arxiv_id = ?`, arxivID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking paper %s: %w", arxivID, err)
	}
	return count > 0, nil
}

// Insert archives one paper. It reports whether a row was written;
// an already-archived paper is a no-op, not an error.
func (s *Store) Insert(p *types.Paper) (bool, error) {
	authors, err := json.Marshal(p.Authors)
	if err != nil {
		return false, fmt.Errorf("encoding authors: %w", err)
	}
	categories, err := json.Marshal(p.Categories)
	if err != nil {
		return false, fmt.Errorf("encoding categories: %w", err)
	}
	hIndices, err := json.Marshal(p.AuthorHIndices)
	if err != nil {
		return false, fmt.Errorf("encoding h-indices: %w", err)
	}
	institutions, err := json.Marshal(p.AuthorInstitutions)
	if err != nil {
		return false, fmt.Errorf("encoding institutions: %w", err)
	}
	scores, err := json.Marshal(p.CategoryScores)
	if err != nil {
		return false, fmt.Errorf("encoding category scores: %w", err)
	}
	summary, err := marshalSummary(p.Summary)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(`INSERT OR IGNORE INTO papers
		(arxiv_id, title, authors, abstract, arxiv_categories, published, source,
		 quality_score, author_h_indices, author_institutions, category,
		 category_scores, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ArxivID, p.Title, string(authors), p.Abstract, string(categories),
		p.Published.Format(time.RFC3339), p.Source, p.QualityScore,
		string(hIndices), string(institutions), p.Category, string(scores),
		summary, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("inserting paper %s: %w", p.ArxivID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking insert result: %w", err)
	}
	return n > 0, nil
}

// UpdateCategory rewrites a paper's category assignment and score
// vector. Used by the classification backfill.
func (s *Store) UpdateCategory(arxivID, category string, scores map[string]float64) error {
	encoded, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encoding category scores: %w", err)
	}
	_, err = s.db.Exec(`UPDATE papers SET category = ?, category_scores = ? WHERE arxiv_id = ?`,
		category, string(encoded), arxivID)
	if err != nil {
		return fmt.Errorf("updating category for %s: %w", arxivID, err)
	}
	return nil
}

// GetAll returns every archived paper, newest first.
func (s *Store) GetAll() ([]*types.Paper, error) {
	rows, err := s.db.Query(`SELECT arxiv_id, title, authors, abstract,
		arxiv_categories, published, source, quality_score, author_h_indices,
		author_institutions, category, category_scores, summary
		FROM papers ORDER BY published DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()
	return scanPapers(rows)
}

// GetPapers returns the archived papers with the given IDs, in the
// order requested. Unknown IDs are skipped.
func (s *Store) GetPapers(arxivIDs []string) ([]*types.Paper, error) {
	byID := make(map[string]*types.Paper, len(arxivIDs))
	for _, id := range arxivIDs {
		row := s.db.QueryRow(`SELECT arxiv_id, title, authors, abstract,
			arxiv_categories, published, source, quality_score, author_h_indices,
			author_institutions, category, category_scores, summary
			FROM papers WHERE arxiv_id = ?`, id)
		p, err := scanPaper(row)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("querying paper %s: %w", id, err)
		}
		byID[id] = p
	}

	papers := make([]*types.Paper, 0, len(byID))
	for _, id := range arxivIDs {
		if p, ok := byID[id]; ok {
			papers = append(papers, p)
		}
	}
	return papers, nil
}

// SaveDigest records a published digest. Only paper IDs are stored;
// paper content stays in the papers table.
func (s *Store) SaveDigest(d *types.Digest) error {
	paperIDs, err := json.Marshal(d.PaperIDs)
	if err != nil {
		return fmt.Errorf("encoding paper IDs: %w", err)
	}
	categories, err := json.Marshal(d.Categories)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO digests (id, title, summary, paper_ids, categories, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Title, d.Summary, string(paperIDs), string(categories),
		d.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting digest %s: %w", d.ID, err)
	}
	return nil
}

// ListDigests returns all digests, newest first.
func (s *Store) ListDigests() ([]*types.Digest, error) {
	rows, err := s.db.Query(`SELECT id, title, summary, paper_ids, categories, created_at
		FROM digests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying digests: %w", err)
	}
	defer rows.Close()

	var digests []*types.Digest
	for rows.Next() {
		d, err := scanDigest(rows)
		if err != nil {
			return nil, err
		}
		digests = append(digests, d)
	}
	return digests, rows.Err()
}

// GetDigest returns one digest by ID.
func (s *Store) GetDigest(id string) (*types.Digest, error) {
	row := s.db.QueryRow(`SELECT id, title, summary, paper_ids, categories, created_at
		FROM digests WHERE id = ?`, id)
	d, err := scanDigest(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("digest %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying digest %s: %w", id, err)
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPapers(rows *sql.Rows) ([]*types.Paper, error) {
	var papers []*types.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

func scanPaper(row rowScanner) (*types.Paper, error) {
	var p types.Paper
	var authors, categories, published, hIndices, institutions, scores, summary string
	if err := row.Scan(&p.ArxivID, &p.Title, &authors, &p.Abstract, &categories,
		&published, &p.Source, &p.QualityScore, &hIndices, &institutions,
		&p.Category, &scores, &summary); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning paper row: %w", err)
	}

	if err := json.Unmarshal([]byte(authors), &p.Authors); err != nil {
		return nil, fmt.Errorf("decoding authors for %s: %w", p.ArxivID, err)
	}
	if err := json.Unmarshal([]byte(categories), &p.Categories); err != nil {
		return nil, fmt.Errorf("decoding categories for %s: %w", p.ArxivID, err)
	}
	if err := json.Unmarshal([]byte(hIndices), &p.AuthorHIndices); err != nil {
		return nil, fmt.Errorf("decoding h-indices for %s: %w", p.ArxivID, err)
	}
	if err := json.Unmarshal([]byte(institutions), &p.AuthorInstitutions); err != nil {
		return nil, fmt.Errorf("decoding institutions for %s: %w", p.ArxivID, err)
	}
	if err := json.Unmarshal([]byte(scores), &p.CategoryScores); err != nil {
		return nil, fmt.Errorf("decoding category scores for %s: %w", p.ArxivID, err)
	}
	if summary != "" {
		var sum types.Summary
		if err := json.Unmarshal([]byte(summary), &sum); err != nil {
			return nil, fmt.Errorf("decoding summary for %s: %w", p.ArxivID, err)
		}
		p.Summary = &sum
	}
	if t, err := time.Parse(time.RFC3339, published); err == nil {
		p.Published = t
	}
	return &p, nil
}

func scanDigest(row rowScanner) (*types.Digest, error) {
	var d types.Digest
	var paperIDs, categories, createdAt string
	if err := row.Scan(&d.ID, &d.Title, &d.Summary, &paperIDs, &categories, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning digest row: %w", err)
	}
	if err := json.Unmarshal([]byte(paperIDs), &d.PaperIDs); err != nil {
		return nil, fmt.Errorf("decoding paper IDs for %s: %w", d.ID, err)
	}
	if err := json.Unmarshal([]byte(categories), &d.Categories); err != nil {
		return nil, fmt.Errorf("decoding categories for %s: %w", d.ID, err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		d.CreatedAt = t
	}
	return &d, nil
}

func marshalSummary(s *types.Summary) (string, error) {
	if s == nil {
		return "", nil
	}
	encoded, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}
	return string(encoded), nil
}
