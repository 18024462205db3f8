package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jobscout-ai/jobscout/internal/config"
	"github.com/jobscout-ai/jobscout/internal/models"
)

// LLMService wraps the language-model client. A call that errors is
// terminal for the run: no retry, no partial recommendation.
type LLMService struct {
	Client llms.Model
}

// NewLLMService builds the OpenAI-backed client with the configured
// model. The client is created once at startup and reused.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	llm, err := openai.New(
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.ModelID),
	)
	if err != nil {
		return nil, fmt.Errorf("create OpenAI client: %w", err)
	}

	return &LLMService{Client: llm}, nil
}

// AnalyzeJobs asks the model for a ranked, explained selection of the
// aggregated postings against the user's criteria.
func (s *LLMService) AnalyzeJobs(ctx context.Context, c models.SearchCriteria, postings []models.JobPosting) (string, error) {
	prompt, err := BuildJobAnalysisPrompt(c, postings)
	if err != nil {
		return "", err
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", fmt.Errorf("job analysis: %w", err)
	}
	return resp, nil
}

// AnalyzeTrends asks the model for a structured summary of the extracted
// industry trend rows.
func (s *LLMService) AnalyzeTrends(ctx context.Context, industry string, trends []models.IndustryTrend) (string, error) {
	prompt, err := BuildTrendsAnalysisPrompt(industry, trends)
	if err != nil {
		return "", err
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", fmt.Errorf("trends analysis: %w", err)
	}
	return resp, nil
}
