// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import "time"

// windowLimiter enforces a request ceiling over a sliding window.
// Wait blocks (via the injected sleep) until sending one more request
// keeps the caller under the limit. Not safe for concurrent use; the
// pipeline summarizes sequentially.
type windowLimiter struct {
	limit  int
	window time.Duration
	sent   []time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newWindowLimiter(limit int, window time.Duration) *windowLimiter {
	return &windowLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Wait blocks until a request slot is available, then claims it.
func (l *windowLimiter) Wait() {
	if l.limit <= 0 {
		return
	}

	now := l.now()
	l.prune(now)
	if len(l.sent) >= l.limit {
		oldest := l.sent[0]
		l.sleep(oldest.Add(l.window).Sub(now))
		now = l.now()
		l.prune(now)
	}
	l.sent = append(l.sent, now)
}

// prune drops timestamps that have left the window.
func (l *windowLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.sent) && !l.sent[i].After(cutoff) {
		i++
	}
	l.sent = l.sent[i:]
}
