// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-curator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// Category pairs a curated category name with the keywords that define it.
// The slice order supplied by the caller is the tie-break order for
// classification and must stay stable across runs.
type Category struct {
	Name     string   `json:"name" yaml:"name" mapstructure:"name"`
	Keywords []string `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

// FetchConfig holds settings for the literature-source client.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxPerCategory is the number of candidates fetched per category
	// (default 3).
	MaxPerCategory int `json:"max_per_category" yaml:"max_per_category" mapstructure:"max_per_category"`
}

// ReputationConfig holds settings for the author-reputation client.
type ReputationConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIKey is an optional Semantic Scholar API key for higher limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// RequestSpacing is the minimum delay enforced between any two
	// outbound queries (default 600ms).
	RequestSpacing time.Duration `json:"request_spacing" yaml:"request_spacing" mapstructure:"request_spacing"`

	// MaxRetries bounds retry attempts on throttling (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// BackoffBase is the exponential backoff base applied when the
	// service provides no wait hint (default 1.8).
	BackoffBase float64 `json:"backoff_base" yaml:"backoff_base" mapstructure:"backoff_base"`
}

// QualityConfig holds settings for the quality scorer.
type QualityConfig struct {
	// MaxAuthors caps how many authors are looked up per paper
	// (default 5).
	MaxAuthors int `json:"max_authors" yaml:"max_authors" mapstructure:"max_authors"`

	// SaturationIndex is the productivity index that maps to a full
	// productivity score; higher values clamp to 1.0 (default 50).
	SaturationIndex float64 `json:"saturation_index" yaml:"saturation_index" mapstructure:"saturation_index"`

	// MinScore is the quality cutoff below which candidates are dropped
	// (default 0.15).
	MinScore float64 `json:"min_score" yaml:"min_score" mapstructure:"min_score"`
}

// SummarizeConfig holds settings for the summarization provider chain.
type SummarizeConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// GroqAPIKey authenticates against the hosted Groq API. An empty key
	// disables the remote provider.
	GroqAPIKey string `json:"groq_api_key,omitempty" yaml:"groq_api_key,omitempty" mapstructure:"groq_api_key"`

	// GroqModel is the hosted model identifier
	// (default "llama-3.1-8b-instant").
	GroqModel string `json:"groq_model" yaml:"groq_model" mapstructure:"groq_model"`

	// RequestsPerMinute is the client-side ceiling for hosted requests in
	// a sliding 60-second window (default 25).
	RequestsPerMinute int `json:"requests_per_minute" yaml:"requests_per_minute" mapstructure:"requests_per_minute"`

	// MaxRetries bounds retry attempts against the hosted provider
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// OllamaURL is the local generation server base URL
	// (default "http://localhost:11434").
	OllamaURL string `json:"ollama_url" yaml:"ollama_url" mapstructure:"ollama_url"`

	// OllamaModel is the local model name (default "llama3").
	OllamaModel string `json:"ollama_model" yaml:"ollama_model" mapstructure:"ollama_model"`
}

// SelectConfig holds settings for category-balanced selection.
type SelectConfig struct {
	// TargetCount is the selection size for one publication cycle
	// (default 10).
	TargetCount int `json:"target_count" yaml:"target_count" mapstructure:"target_count"`
}

// StoreConfig holds settings for the persistent store.
type StoreConfig struct {
	// Path is the SQLite database file path
	// (default "database/papers.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// ScheduleConfig holds settings for the interval scheduler.
type ScheduleConfig struct {
	// Interval is the spacing between scheduled runs (default 168h).
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`

	// MisfireGrace is how late a delayed trigger may still fire
	// (default 1h).
	MisfireGrace time.Duration `json:"misfire_grace" yaml:"misfire_grace" mapstructure:"misfire_grace"`
}

// Config groups all stage configurations for the pipeline.
type Config struct {
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Reputation ReputationConfig `json:"reputation" yaml:"reputation" mapstructure:"reputation"`
	Quality    QualityConfig    `json:"quality" yaml:"quality" mapstructure:"quality"`
	Summarize  SummarizeConfig  `json:"summarize" yaml:"summarize" mapstructure:"summarize"`
	Select     SelectConfig     `json:"select" yaml:"select" mapstructure:"select"`
	Store      StoreConfig      `json:"store" yaml:"store" mapstructure:"store"`
	Schedule   ScheduleConfig   `json:"schedule" yaml:"schedule" mapstructure:"schedule"`
	Categories []Category       `json:"categories" yaml:"categories" mapstructure:"categories"`
}
