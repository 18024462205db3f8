package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("FIRECRAWL_API_KEY", "fc-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL_ID", "")
	t.Setenv("FIRECRAWL_BASE_URL", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fc-test", cfg.FirecrawlAPIKey)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, DefaultModelID, cfg.ModelID)
	assert.Equal(t, DefaultFirecrawlBaseURL, cfg.FirecrawlBaseURL)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_MissingFirecrawlKey(t *testing.T) {
	setRequired(t)
	t.Setenv("FIRECRAWL_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIRECRAWL_API_KEY")
}

func TestLoad_MissingOpenAIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_AlternateModel(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_MODEL_ID", AlternateModelID)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.ModelID)
}

func TestLoad_UnknownModelRejected(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_MODEL_ID", "gpt-3.5-turbo")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_MODEL_ID")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("FIRECRAWL_BASE_URL", "http://localhost:3002")
	t.Setenv("PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3002", cfg.FirecrawlBaseURL)
	assert.Equal(t, "9999", cfg.Port)
}
