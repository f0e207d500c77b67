// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/paper-curator/internal/httputil"
	"github.com/pdiddy/paper-curator/pkg/types"
)

// groqAPIBase is the Groq chat-completions endpoint. Declared as a var
// so tests can substitute an httptest server.
var groqAPIBase = "https://api.groq.com/openai/v1/chat/completions"

const groqSystemPrompt = "You are a helpful assistant for summarizing research papers."

// GroqProvider generates summaries through the Groq chat-completions
// API. Requests are throttled client-side with a sliding-window
// limiter so a batch stays under the service's per-minute ceiling.
type GroqProvider struct {
	httpClient *http.Client
	cfg        types.SummarizeConfig
	limiter    *windowLimiter
	log        *slog.Logger

	sleep func(time.Duration)
}

func NewGroqProvider(cfg types.SummarizeConfig, log *slog.Logger) *GroqProvider {
	if cfg.GroqModel == "" {
		cfg.GroqModel = "llama-3.1-8b-instant"
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 25
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &GroqProvider{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		cfg:        cfg,
		limiter:    newWindowLimiter(cfg.RequestsPerMinute, time.Minute),
		log:        log,
		sleep:      time.Sleep,
	}
}

func (g *GroqProvider) Name() string { return "groq" }

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt and returns the completion text. Throttled
// and failed attempts are retried with backoff, honoring a Retry-After
// hint when the service supplies one.
func (g *GroqProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < g.cfg.MaxRetries; attempt++ {
		g.limiter.Wait()

		text, retryable, err := g.tryOnce(ctx, prompt, attempt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("groq: retries exhausted: %w", lastErr)
}

func (g *GroqProvider) tryOnce(ctx context.Context, prompt string, attempt int) (text string, retryable bool, err error) {
	body, err := json.Marshal(groqRequest{
		Model: g.cfg.GroqModel,
		Messages: []groqMessage{
			{Role: "system", Content: groqSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   800,
	})
	if err != nil {
		return "", false, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqAPIBase, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.GroqAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.backoff(attempt)
		return "", true, fmt.Errorf("groq request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		delay, ok := httputil.RetryAfter(resp)
		if !ok {
			delay = httputil.Jitter(time.Duration(1<<attempt) * httputil.RetryBaseDelay)
		}
		g.log.Warn("groq request throttled", "status", resp.StatusCode, "delay", delay, "attempt", attempt+1)
		g.sleep(delay)
		return "", true, fmt.Errorf("groq returned HTTP %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		g.backoff(attempt)
		return "", true, fmt.Errorf("groq returned HTTP %d", resp.StatusCode)
	}

	var gr groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		g.backoff(attempt)
		return "", true, fmt.Errorf("parsing groq response: %w", err)
	}
	if len(gr.Choices) == 0 {
		g.backoff(attempt)
		return "", true, fmt.Errorf("groq response has no choices")
	}
	content := strings.TrimSpace(gr.Choices[0].Message.Content)
	if content == "" {
		g.backoff(attempt)
		return "", true, fmt.Errorf("groq response is empty")
	}
	return content, false, nil
}

// backoff sleeps the jittered exponential delay for a failed attempt.
// Throttled responses sleep separately so a Retry-After hint can win.
func (g *GroqProvider) backoff(attempt int) {
	g.sleep(httputil.Jitter(time.Duration(1<<attempt) * httputil.RetryBaseDelay))
}
