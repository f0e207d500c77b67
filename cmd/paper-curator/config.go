// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// defaultCategories are the curated categories used when the config
// file defines none.
var defaultCategories = []types.Category{
	{Name: "Generative AI & LLMs", Keywords: []string{
		"large language model", "llm", "gpt", "transformer",
	}},
	{Name: "Computer Vision & MultiModal AI", Keywords: []string{
		"computer vision", "image", "vision", "multimodal", "multi-modal", "video", "segmentation",
	}},
	{Name: "Agentic AI", Keywords: []string{
		"agent", "agentic", "autonomous agent", "multi-agent", "rl", "reinforcement learning",
	}},
	{Name: "AI in healthcare", Keywords: []string{
		"healthcare", "drug discovery", "biomedical", "clinical",
	}},
	{Name: "Explainable & Ethical AI", Keywords: []string{
		"explainable", "interpretability", "fairness", "ethics", "responsible ai", "bias", "transparency",
	}},
}

// loadConfig materializes the full pipeline configuration from viper
// (config file plus PAPER_CURATOR_* environment), applying defaults
// and secrets for anything unset.
func loadConfig() (*types.Config, error) {
	setDefaults()

	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = defaultCategories
	}
	cfg.Reputation.APIKey = secretDefault("semantic-scholar-api-key", cfg.Reputation.APIKey)
	cfg.Summarize.GroqAPIKey = secretDefault("groq-api-key", cfg.Summarize.GroqAPIKey)
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", "paper-curator/"+version)
	viper.SetDefault("fetch.max_per_category", 3)

	viper.SetDefault("reputation.timeout", 10*time.Second)
	viper.SetDefault("reputation.user_agent", "paper-curator/"+version)
	viper.SetDefault("reputation.request_spacing", 600*time.Millisecond)
	viper.SetDefault("reputation.max_retries", 3)
	viper.SetDefault("reputation.backoff_base", 1.8)

	viper.SetDefault("quality.max_authors", 5)
	viper.SetDefault("quality.saturation_index", 50.0)
	viper.SetDefault("quality.min_score", 0.15)

	viper.SetDefault("summarize.groq_model", "llama-3.1-8b-instant")
	viper.SetDefault("summarize.requests_per_minute", 25)
	viper.SetDefault("summarize.max_retries", 3)
	viper.SetDefault("summarize.ollama_url", "http://localhost:11434")
	viper.SetDefault("summarize.ollama_model", "llama3")

	viper.SetDefault("select.target_count", 10)

	viper.SetDefault("store.path", "database/papers.db")

	viper.SetDefault("schedule.interval", 168*time.Hour)
	viper.SetDefault("schedule.misfire_grace", time.Hour)
}
