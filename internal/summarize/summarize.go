// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns a paper's extracted sections into a
// structured plain-language summary via a chain of text generation
// providers. Providers are tried in order; the rule-based provider at
// the end of the default chain cannot fail, so a chain built with
// NewDefaultChain always produces a summary.
package summarize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Provider generates text from a prompt. Generate returns an error
// when the backing service is unavailable or produced no usable
// output; the chain then moves to the next provider.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Chain tries providers in order and parses the first response.
type Chain struct {
	providers []Provider
	log       *slog.Logger
}

func NewChain(log *slog.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, log: log}
}

// NewDefaultChain builds the production chain: Groq, then a local
// Ollama server, then rule-based synthesis as the terminal fallback.
// Providers without usable configuration are skipped.
func NewDefaultChain(cfg types.SummarizeConfig, log *slog.Logger) *Chain {
	var providers []Provider
	if cfg.GroqAPIKey != "" {
		providers = append(providers, NewGroqProvider(cfg, log))
	}
	if cfg.OllamaURL != "" {
		providers = append(providers, NewOllamaProvider(cfg))
	}
	providers = append(providers, RuleBasedProvider{})
	return NewChain(log, providers...)
}

// Summarize builds the prompt for one paper and runs it through the
// provider chain. The returned summary records which provider produced
// it. An error is returned only if every provider fails.
func (c *Chain) Summarize(ctx context.Context, title string, sections map[string]string) (types.Summary, error) {
	prompt := buildPrompt(title, sections)

	for _, p := range c.providers {
		text, err := p.Generate(ctx, prompt)
		if err != nil {
			c.log.Warn("summary provider failed", "provider", p.Name(), "error", err)
			continue
		}
		summary := parseSummary(text)
		summary.Provider = p.Name()
		return summary, nil
	}
	return types.Summary{}, fmt.Errorf("all %d summary providers failed", len(c.providers))
}
