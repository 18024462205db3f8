package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jobscout-ai/jobscout/internal/models"
)

// Extractor is the crawling service boundary. The real implementation is
// the Firecrawl client; tests substitute fakes.
type Extractor interface {
	Extract(ctx context.Context, urls []string, prompt string, schema map[string]any) (map[string]any, error)
}

// ScrapeService issues one extraction call per configured site and
// aggregates whatever comes back. A site that errors or returns nothing
// is skipped; it never fails the run.
type ScrapeService struct {
	Extractor Extractor
}

func NewScrapeService(extractor Extractor) *ScrapeService {
	return &ScrapeService{Extractor: extractor}
}

// ScrapeJobs walks the job boards in their fixed order and concatenates
// the postings each one returns. No deduplication and no ranking happen
// here — that is the analysis stage's job.
func (s *ScrapeService) ScrapeJobs(ctx context.Context, c models.SearchCriteria) []models.JobPosting {
	prompt := BuildJobExtractionPrompt(c)
	schema := JobPostingsSchema()

	var all []models.JobPosting
	for _, site := range models.JobSites() {
		url := site.SearchURL(c)
		log.Printf("[scrape] %s: extracting from %s", site.ID, url)

		data, err := s.Extractor.Extract(ctx, []string{url}, prompt, schema)
		if err != nil {
			log.Printf("[scrape] %s: skipped: %v", site.ID, err)
			continue
		}

		postings := decodeRecords[models.JobPosting](data, "job_postings")
		if len(postings) == 0 {
			log.Printf("[scrape] %s: no postings returned", site.ID)
			continue
		}

		for i := range postings {
			postings[i].SourceSite = site.ID
		}
		all = append(all, postings...)
		log.Printf("[scrape] %s: got %d postings", site.ID, len(postings))
	}

	return all
}

// ScrapeTrends runs a single extraction call over the trends sources for
// the given industry. An empty result is valid: the run proceeds and the
// trends section reports no data.
func (s *ScrapeService) ScrapeTrends(ctx context.Context, industry string) []models.IndustryTrend {
	urls := models.TrendsSources(industry)
	log.Printf("[scrape] trends: extracting for %q from %v", industry, urls)

	data, err := s.Extractor.Extract(ctx, urls, BuildTrendsExtractionPrompt(industry), IndustryTrendsSchema())
	if err != nil {
		log.Printf("[scrape] trends: skipped: %v", err)
		return nil
	}

	trends := decodeRecords[models.IndustryTrend](data, "industry_trends")
	log.Printf("[scrape] trends: got %d rows", len(trends))
	return trends
}

// decodeRecords coerces the loosely-typed boundary record into typed
// values as early as possible. Items that don't fit the shape are
// dropped individually rather than poisoning the whole batch.
func decodeRecords[T any](data map[string]any, key string) []T {
	items, ok := data[key].([]any)
	if !ok {
		return nil
	}

	var out []T
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
