// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// OllamaProvider generates summaries through a local Ollama server.
// A single attempt per prompt: when the server is down the chain
// should move on immediately rather than stall the batch.
type OllamaProvider struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

func NewOllamaProvider(cfg types.SummarizeConfig) *OllamaProvider {
	model := cfg.OllamaModel
	if model == "" {
		model = "llama3"
	}
	return &OllamaProvider{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(cfg.OllamaURL, "/"),
		model:      model,
	}
}

func (o *OllamaProvider) Name() string { return "ollama" }

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.7,
			TopP:        0.9,
			MaxTokens:   500,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned HTTP %d", resp.StatusCode)
	}

	var or ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("parsing ollama response: %w", err)
	}
	text := strings.TrimSpace(or.Response)
	if text == "" {
		return "", fmt.Errorf("ollama response is empty")
	}
	return text, nil
}
