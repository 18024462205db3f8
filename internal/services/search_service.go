package services

import (
	"context"
	"fmt"
	"log"

	"github.com/jobscout-ai/jobscout/internal/models"
)

// JobScraper is the orchestrator's view of the scraping stage.
type JobScraper interface {
	ScrapeJobs(ctx context.Context, c models.SearchCriteria) []models.JobPosting
	ScrapeTrends(ctx context.Context, industry string) []models.IndustryTrend
}

// Analyzer is the orchestrator's view of the analysis stage.
type Analyzer interface {
	AnalyzeJobs(ctx context.Context, c models.SearchCriteria, postings []models.JobPosting) (string, error)
	AnalyzeTrends(ctx context.Context, industry string, trends []models.IndustryTrend) (string, error)
}

const noJobsMessage = "No job listings found matching your criteria. " +
	"Try adjusting your search parameters or try different job sites."

// SearchService runs one search end to end: scrape every configured
// site, aggregate, analyze, return the recommendation. One forward pass,
// no state kept between runs.
type SearchService struct {
	Scraper  JobScraper
	Analyzer Analyzer
}

func NewSearchService(scraper JobScraper, analyzer Analyzer) *SearchService {
	return &SearchService{Scraper: scraper, Analyzer: analyzer}
}

// Run executes the full pipeline for one set of criteria. Per-site
// scrape failures are tolerated inside the scraper; an analysis failure
// aborts the run with no partial output.
func (s *SearchService) Run(ctx context.Context, c models.SearchCriteria) (*models.Recommendation, error) {
	log.Printf("[search] starting run: title=%q location=%q experience=%d industry=%q",
		c.JobTitle, c.Location, c.ExperienceYears, c.Industry)

	postings := s.Scraper.ScrapeJobs(ctx, c)
	log.Printf("[search] aggregated %d postings", len(postings))

	var jobsAnalysis string
	if len(postings) == 0 {
		jobsAnalysis = noJobsMessage
	} else {
		analysis, err := s.Analyzer.AnalyzeJobs(ctx, c, postings)
		if err != nil {
			return nil, fmt.Errorf("analyze jobs: %w", err)
		}
		jobsAnalysis = analysis
	}

	trends := s.Scraper.ScrapeTrends(ctx, c.Industry)

	var trendsAnalysis string
	if len(trends) == 0 {
		trendsAnalysis = fmt.Sprintf("No industry trends data available for %s. Try a different industry category.", c.Industry)
	} else {
		analysis, err := s.Analyzer.AnalyzeTrends(ctx, c.Industry, trends)
		if err != nil {
			return nil, fmt.Errorf("analyze trends: %w", err)
		}
		trendsAnalysis = analysis
	}

	log.Printf("[search] run complete")
	return &models.Recommendation{
		JobsAnalysis:   jobsAnalysis,
		TrendsAnalysis: trendsAnalysis,
	}, nil
}
