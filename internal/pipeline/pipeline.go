// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a full curation run: fetch,
// deduplicate, score, classify, select, summarize, persist. Runs are
// single-flight; a run already in progress makes a second invocation
// fail fast with ErrRunInProgress.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pdiddy/paper-curator/internal/classify"
	"github.com/pdiddy/paper-curator/internal/curate"
	"github.com/pdiddy/paper-curator/internal/digest"
	"github.com/pdiddy/paper-curator/internal/fetch"
	"github.com/pdiddy/paper-curator/internal/sections"
	"github.com/pdiddy/paper-curator/pkg/types"
)

// ErrRunInProgress is returned when a run is requested while another
// run is still executing.
var ErrRunInProgress = errors.New("pipeline run already in progress")

// State names the stage a run is currently in. Failed is terminal for
// the run; a new run starts from Idle again.
type State string

const (
	StateIdle          State = "idle"
	StateFetching      State = "fetching"
	StateDeduplicating State = "deduplicating"
	StateScoring       State = "scoring"
	StateClassifying   State = "classifying"
	StateSelecting     State = "selecting"
	StateSummarizing   State = "summarizing"
	StatePersisting    State = "persisting"
	StateFailed        State = "failed"
)

// Store is the persistence surface the pipeline needs.
type Store interface {
	Exists(arxivID string) (bool, error)
	Insert(p *types.Paper) (bool, error)
	SaveDigest(d *types.Digest) error
}

// Scorer assigns a quality score to one paper.
type Scorer interface {
	Score(ctx context.Context, p *types.Paper)
	MinScore() float64
}

// Summarizer produces a structured summary for one paper.
type Summarizer interface {
	Summarize(ctx context.Context, title string, sections map[string]string) (types.Summary, error)
}

// RunReport counts what happened during one run.
type RunReport struct {
	Fetched      int    `json:"fetched"`
	Deduplicated int    `json:"deduplicated"`
	Known        int    `json:"known"`
	Scored       int    `json:"scored"`
	Discarded    int    `json:"discarded"`
	Selected     int    `json:"selected"`
	Summarized   int    `json:"summarized"`
	Persisted    int    `json:"persisted"`
	Failures     int    `json:"failures"`
	DigestID     string `json:"digest_id,omitempty"`
}

// HasFailures reports whether any per-paper step failed during the run.
func (r RunReport) HasFailures() bool { return r.Failures > 0 }

// Orchestrator drives the curation stages in order.
type Orchestrator struct {
	source     fetch.Source
	scorer     Scorer
	summarizer Summarizer
	store      Store
	cfg        *types.Config
	log        *slog.Logger

	running atomic.Bool

	mu    sync.Mutex
	state State

	now func() time.Time
}

func NewOrchestrator(source fetch.Source, scorer Scorer, summarizer Summarizer, store Store, cfg *types.Config, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		source:     source,
		scorer:     scorer,
		summarizer: summarizer,
		store:      store,
		cfg:        cfg,
		log:        log,
		state:      StateIdle,
		now:        time.Now,
	}
}

// State returns the stage the current (or last) run is in.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	o.log.Info("pipeline state", "state", string(s))
}

// Run executes one full curation cycle. Selecting zero papers is a
// valid outcome, not an error; the run then produces no digest. Only a
// total fetch failure or a classification failure fails the run.
func (o *Orchestrator) Run(ctx context.Context) (RunReport, error) {
	if !o.running.CompareAndSwap(false, true) {
		return RunReport{}, ErrRunInProgress
	}
	defer o.running.Store(false)

	var report RunReport

	o.setState(StateFetching)
	papers, err := o.fetchAll(ctx)
	if err != nil {
		o.setState(StateFailed)
		return report, err
	}
	report.Fetched = len(papers)

	o.setState(StateDeduplicating)
	papers = curate.Deduplicate(papers)
	report.Deduplicated = len(papers)
	papers = o.dropKnown(papers, &report)

	o.setState(StateScoring)
	for _, p := range papers {
		o.scorer.Score(ctx, p)
	}
	report.Scored = len(papers)
	papers = o.applyCutoff(papers, &report)

	o.setState(StateClassifying)
	if err := classify.Classify(papers, o.cfg.Categories, o.log); err != nil {
		o.setState(StateFailed)
		return report, fmt.Errorf("classifying papers: %w", err)
	}

	o.setState(StateSelecting)
	selected := curate.Select(papers, o.cfg.Select.TargetCount)
	report.Selected = len(selected)
	if len(selected) == 0 {
		o.log.Info("no papers selected, skipping digest")
		o.setState(StateIdle)
		return report, nil
	}

	o.setState(StateSummarizing)
	o.summarizeAll(ctx, selected, &report)

	o.setState(StatePersisting)
	o.persistAll(selected, &report)

	o.setState(StateIdle)
	return report, nil
}

// fetchAll queries the source once per configured category. A single
// category failing is logged and skipped; the run fails only when
// every category fails.
func (o *Orchestrator) fetchAll(ctx context.Context) ([]*types.Paper, error) {
	if len(o.cfg.Categories) == 0 {
		return nil, fmt.Errorf("no categories configured")
	}

	var papers []*types.Paper
	failed := 0
	for _, c := range o.cfg.Categories {
		batch, err := o.source.FetchByCategory(ctx, c.Keywords, o.cfg.Fetch.MaxPerCategory)
		if err != nil {
			failed++
			o.log.Warn("fetch failed for category", "category", c.Name, "error", err)
			continue
		}
		o.log.Info("fetched papers", "category", c.Name, "count", len(batch))
		papers = append(papers, batch...)
	}
	if failed == len(o.cfg.Categories) {
		return nil, fmt.Errorf("fetching papers: all %d categories failed", failed)
	}
	return papers, nil
}

// dropKnown removes papers already in the archive so a rerun never
// republishes them. A store error keeps the paper in the batch; the
// INSERT OR IGNORE at persist time is the backstop.
func (o *Orchestrator) dropKnown(papers []*types.Paper, report *RunReport) []*types.Paper {
	fresh := papers[:0]
	for _, p := range papers {
		known, err := o.store.Exists(p.ArxivID)
		if err != nil {
			o.log.Warn("archive check failed", "arxiv_id", p.ArxivID, "error", err)
			report.Failures++
			fresh = append(fresh, p)
			continue
		}
		if known {
			report.Known++
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}

// applyCutoff drops papers scoring at or below the configured minimum.
func (o *Orchestrator) applyCutoff(papers []*types.Paper, report *RunReport) []*types.Paper {
	kept := papers[:0]
	for _, p := range papers {
		if p.QualityScore > o.scorer.MinScore() {
			kept = append(kept, p)
			continue
		}
		report.Discarded++
		o.log.Debug("discarded low-quality paper", "arxiv_id", p.ArxivID, "score", p.QualityScore)
	}
	return kept
}

// summarizeAll attaches summaries to the selected papers. A summary
// failure never drops a paper from the digest.
func (o *Orchestrator) summarizeAll(ctx context.Context, papers []*types.Paper, report *RunReport) {
	for _, p := range papers {
		s, err := o.summarizer.Summarize(ctx, p.Title, sections.FromPaper(p))
		if err != nil {
			report.Failures++
			o.log.Warn("summarization failed", "arxiv_id", p.ArxivID, "error", err)
			continue
		}
		p.Summary = &s
		report.Summarized++
	}
}

// persistAll archives the selected papers and records the digest. A
// digest save failure is logged, not fatal: the papers are already
// archived.
func (o *Orchestrator) persistAll(papers []*types.Paper, report *RunReport) {
	var archived []*types.Paper
	for _, p := range papers {
		written, err := o.store.Insert(p)
		if err != nil {
			report.Failures++
			o.log.Warn("persisting paper failed", "arxiv_id", p.ArxivID, "error", err)
			continue
		}
		if written {
			report.Persisted++
		}
		archived = append(archived, p)
	}
	if len(archived) == 0 {
		return
	}

	d := digest.Build(archived, o.now())
	if err := o.store.SaveDigest(d); err != nil {
		report.Failures++
		o.log.Warn("saving digest failed", "digest_id", d.ID, "error", err)
		return
	}
	report.DigestID = d.ID
	o.log.Info("digest published", "digest_id", d.ID, "papers", len(d.PaperIDs))
}
