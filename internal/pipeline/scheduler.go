// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Scheduler fires pipeline runs on a fixed interval. A tick that
// arrives late still fires as long as it is within the misfire grace
// window; later than that it is skipped and the schedule realigns.
// Runs never overlap: the orchestrator's single-flight guard rejects a
// tick that lands mid-run.
type Scheduler struct {
	orch     *Orchestrator
	interval time.Duration
	grace    time.Duration
	log      *slog.Logger
}

func NewScheduler(orch *Orchestrator, cfg types.ScheduleConfig, log *slog.Logger) *Scheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 168 * time.Hour
	}
	grace := cfg.MisfireGrace
	if grace <= 0 {
		grace = time.Hour
	}
	return &Scheduler{orch: orch, interval: interval, grace: grace, log: log}
}

// Start blocks, firing runs until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("scheduler started", "interval", s.interval, "grace", s.grace)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	next := time.Now().Add(s.interval)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			if s.withinGrace(next, now) {
				s.runOnce(ctx)
			} else {
				s.log.Warn("skipping run: tick arrived past the grace window",
					"scheduled", next, "actual", now)
			}
			next = next.Add(s.interval)
			if next.Before(now) {
				next = now.Add(s.interval)
			}
		}
	}
}

// withinGrace reports whether a tick that was scheduled for scheduled
// but arrived at actual should still fire.
func (s *Scheduler) withinGrace(scheduled, actual time.Time) bool {
	return actual.Sub(scheduled) <= s.grace
}

func (s *Scheduler) runOnce(ctx context.Context) {
	report, err := s.orch.Run(ctx)
	switch {
	case errors.Is(err, ErrRunInProgress):
		s.log.Warn("skipping scheduled run: previous run still in progress")
	case err != nil:
		s.log.Error("scheduled run failed", "error", err)
	default:
		s.log.Info("scheduled run finished",
			"fetched", report.Fetched, "selected", report.Selected,
			"persisted", report.Persisted, "digest_id", report.DigestID)
	}
}
