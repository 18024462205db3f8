// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process never starts
// a search with half-configured credentials.
package config

import (
	"fmt"
	"os"
)

const (
	DefaultModelID          = "o3-mini"
	AlternateModelID        = "gpt-4o-mini"
	DefaultFirecrawlBaseURL = "https://api.firecrawl.dev"
)

// Config holds all runtime configuration. It is created once in main and
// passed explicitly to every component that needs it.
type Config struct {
	Port             string
	FirecrawlAPIKey  string
	FirecrawlBaseURL string
	OpenAIAPIKey     string
	ModelID          string
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	firecrawlKey := os.Getenv("FIRECRAWL_API_KEY")
	if firecrawlKey == "" {
		return nil, fmt.Errorf("FIRECRAWL_API_KEY is required")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	model := os.Getenv("OPENAI_MODEL_ID")
	if model == "" {
		model = DefaultModelID
	}
	if model != DefaultModelID && model != AlternateModelID {
		return nil, fmt.Errorf("OPENAI_MODEL_ID must be %q or %q, got %q",
			DefaultModelID, AlternateModelID, model)
	}

	baseURL := os.Getenv("FIRECRAWL_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultFirecrawlBaseURL
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:             port,
		FirecrawlAPIKey:  firecrawlKey,
		FirecrawlBaseURL: baseURL,
		OpenAIAPIKey:     openaiKey,
		ModelID:          model,
	}, nil
}
