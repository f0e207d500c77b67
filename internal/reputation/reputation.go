// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reputation looks up author productivity and affiliations from
// the Semantic Scholar Graph API, with caching and throttling-aware
// retries. Lookup failure is never fatal: unresolved authors come back
// as an absent entry.
package reputation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/paper-curator/internal/httputil"
	"github.com/pdiddy/paper-curator/pkg/types"
)

// authorAPIBase is the Semantic Scholar author search endpoint. Declared
// as a var so tests can substitute an httptest server.
var authorAPIBase = "https://api.semanticscholar.org/graph/v1/author/search"

const authorFields = "hIndex,affiliations"

// Client queries the reputation service. It keeps a process-lifetime
// cache keyed by exact author name; the single-flight pipeline guarantee
// means no concurrent writers, so no locking is required beyond that.
type Client struct {
	httpClient *http.Client
	cfg        types.ReputationConfig
	log        *slog.Logger

	cache map[string]cacheEntry
	last  time.Time

	// Injected for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

type cacheEntry struct {
	entry types.ReputationEntry
	found bool
}

// NewClient builds a reputation client. The cache lives as long as the
// client; callers own its lifetime and inject it where needed.
func NewClient(cfg types.ReputationConfig, log *slog.Logger) *Client {
	if cfg.RequestSpacing <= 0 {
		cfg.RequestSpacing = 600 * time.Millisecond
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BackoffBase <= 1 {
		cfg.BackoffBase = 1.8
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		log:        log,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Lookup returns the reputation entry for an author. The second return
// value reports whether the author was resolved; an unresolved author
// yields a zero entry. Results (including unresolved ones) are cached so
// the same name is queried at most once per client lifetime.
func (c *Client) Lookup(ctx context.Context, authorName string) (types.ReputationEntry, bool) {
	if ce, ok := c.cache[authorName]; ok {
		return ce.entry, ce.found
	}

	entry, found := c.search(ctx, authorName)
	c.cache[authorName] = cacheEntry{entry: entry, found: found}
	return entry, found
}

// search performs one external query with spacing, retry, and backoff.
func (c *Client) search(ctx context.Context, authorName string) (types.ReputationEntry, bool) {
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		c.pace()

		resp, err := c.doRequest(ctx, authorName)
		if err != nil {
			c.log.Warn("reputation lookup failed", "author", authorName, "error", err)
			return types.ReputationEntry{}, false
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			delay, ok := httputil.RetryAfter(resp)
			if !ok {
				delay = time.Duration(math.Pow(c.cfg.BackoffBase, float64(attempt)) * float64(c.cfg.RequestSpacing))
			}
			resp.Body.Close()
			c.log.Warn("reputation service throttled", "author", authorName,
				"delay", delay, "attempt", attempt+1, "max", c.cfg.MaxRetries)
			c.sleep(delay)
			if ctx.Err() != nil {
				return types.ReputationEntry{}, false
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.log.Warn("reputation service returned non-200", "author", authorName, "status", resp.StatusCode)
			return types.ReputationEntry{}, false
		}

		entry, found, err := decodeAuthor(resp)
		resp.Body.Close()
		if err != nil {
			c.log.Warn("malformed reputation response", "author", authorName, "error", err)
			return types.ReputationEntry{}, false
		}
		return entry, found
	}

	c.log.Warn("reputation lookup retries exhausted", "author", authorName)
	return types.ReputationEntry{}, false
}

// pace enforces the minimum delay between any two outbound queries.
func (c *Client) pace() {
	if !c.last.IsZero() {
		if since := c.now().Sub(c.last); since < c.cfg.RequestSpacing {
			c.sleep(c.cfg.RequestSpacing - since)
		}
	}
	c.last = c.now()
}

func (c *Client) doRequest(ctx context.Context, authorName string) (*http.Response, error) {
	params := url.Values{
		"query":  {authorName},
		"limit":  {"1"},
		"fields": {authorFields},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authorAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}
	return c.httpClient.Do(req)
}

// Semantic Scholar author search response structures. Affiliations may
// arrive as plain strings or as objects with a name field.
type authorResponse struct {
	Data []authorRecord `json:"data"`
}

type authorRecord struct {
	HIndex       int               `json:"hIndex"`
	Affiliations []json.RawMessage `json:"affiliations"`
}

func decodeAuthor(resp *http.Response) (types.ReputationEntry, bool, error) {
	var ar authorResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return types.ReputationEntry{}, false, fmt.Errorf("parsing author response: %w", err)
	}
	if len(ar.Data) == 0 {
		return types.ReputationEntry{}, false, nil
	}

	rec := ar.Data[0]
	entry := types.ReputationEntry{HIndex: rec.HIndex}
	for _, raw := range rec.Affiliations {
		if name := affiliationName(raw); name != "" {
			entry.Affiliations = append(entry.Affiliations, name)
		}
	}
	return entry, true, nil
}

// affiliationName normalizes one affiliation value to a lowercased name.
func affiliationName(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.ToLower(strings.TrimSpace(obj.Name))
	}
	return ""
}
