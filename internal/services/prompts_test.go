package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout-ai/jobscout/internal/models"
)

var testCriteria = models.SearchCriteria{
	JobTitle:        "Software Engineer",
	Location:        "Remote",
	ExperienceYears: 3,
	Skills:          []string{"Python", "SQL"},
	Industry:        "Tech",
}

func TestBuildJobExtractionPrompt(t *testing.T) {
	p := BuildJobExtractionPrompt(testCriteria)

	assert.Contains(t, p, "related to Software Engineer")
	assert.Contains(t, p, "Location: Remote")
	assert.Contains(t, p, "Around 3 years")
	assert.Contains(t, p, "Python, SQL")
	assert.Contains(t, p, "MAXIMUM 10")
}

func TestBuildJobAnalysisPrompt(t *testing.T) {
	postings := []models.JobPosting{
		{Title: "Backend Engineer", Company: "Acme", JobLink: "https://example.com/1"},
	}

	p, err := BuildJobAnalysisPrompt(testCriteria, postings)
	require.NoError(t, err)

	assert.Contains(t, p, "Backend Engineer")
	assert.Contains(t, p, "Acme")
	assert.Contains(t, p, "SELECTED JOB OPPORTUNITIES")
	assert.Contains(t, p, "Skills: Python, SQL")
}

func TestBuildTrendsAnalysisPrompt(t *testing.T) {
	trends := []models.IndustryTrend{
		{Industry: "Data Science", AvgSalary: 120000, DemandLevel: "High"},
	}

	p, err := BuildTrendsAnalysisPrompt("Data Science", trends)
	require.NoError(t, err)

	assert.Contains(t, p, "industry trends for Data Science")
	assert.Contains(t, p, "INDUSTRY TRENDS SUMMARY")
	assert.Contains(t, p, "120000")
}

// Identical inputs must produce byte-identical prompts: the external
// services are the only non-deterministic part of a run.
func TestPromptConstruction_Deterministic(t *testing.T) {
	postings := []models.JobPosting{
		{Title: "Backend Engineer", Company: "Acme", Skills: []string{"Go", "Postgres"}},
		{Title: "Data Engineer", Company: "Globex"},
	}
	trends := []models.IndustryTrend{
		{Industry: "Tech", AvgSalary: 100000, TopSkills: []string{"Python"}},
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, BuildJobExtractionPrompt(testCriteria), BuildJobExtractionPrompt(testCriteria))
		assert.Equal(t, BuildTrendsExtractionPrompt("Tech"), BuildTrendsExtractionPrompt("Tech"))

		a, err := BuildJobAnalysisPrompt(testCriteria, postings)
		require.NoError(t, err)
		b, err := BuildJobAnalysisPrompt(testCriteria, postings)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		ta, err := BuildTrendsAnalysisPrompt("Tech", trends)
		require.NoError(t, err)
		tb, err := BuildTrendsAnalysisPrompt("Tech", trends)
		require.NoError(t, err)
		assert.Equal(t, ta, tb)
	}
}

func TestSchemas_DescribeExpectedShapes(t *testing.T) {
	jobs := JobPostingsSchema()
	props := jobs["properties"].(map[string]any)
	assert.Contains(t, props, "job_postings")

	trends := IndustryTrendsSchema()
	props = trends["properties"].(map[string]any)
	assert.Contains(t, props, "industry_trends")
}
