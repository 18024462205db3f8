package models

import (
	"fmt"
	"net/url"
	"strings"
)

// SearchCriteria is the user's input for one search run.
// It is built once per submission and never mutated afterwards.
type SearchCriteria struct {
	JobTitle        string   `json:"job_title"`
	Location        string   `json:"location"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Industry        string   `json:"industry"`
}

// SkillsString joins skills for embedding into prompts.
func (c SearchCriteria) SkillsString() string {
	return strings.Join(c.Skills, ", ")
}

// JobPosting is one extracted listing. Fields come straight from the
// crawling service; anything it didn't return stays empty. The same job
// may appear more than once if multiple sites list it — we keep it that
// way and let the analysis stage sort it out.
type JobPosting struct {
	Title       string   `json:"job_title"`
	Role        string   `json:"role,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	Region      string   `json:"region,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	SalaryRange string   `json:"salary_range,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	JobType     string   `json:"job_type,omitempty"`
	JobLink     string   `json:"job_link,omitempty"`
	SourceSite  string   `json:"source_site,omitempty"`
}

// IndustryTrend is one row of market data for an industry or sub-category.
type IndustryTrend struct {
	Industry    string   `json:"industry"`
	AvgSalary   float64  `json:"avg_salary,omitempty"`
	GrowthRate  float64  `json:"growth_rate,omitempty"`
	DemandLevel string   `json:"demand_level,omitempty"`
	TopSkills   []string `json:"top_skills,omitempty"`
}

// Recommendation is the final output of one run: two markdown sections
// rendered directly to the user. Never persisted.
type Recommendation struct {
	JobsAnalysis   string `json:"jobs_analysis"`
	TrendsAnalysis string `json:"trends_analysis"`
}

// Site is one scrape target. SearchURL builds the site-specific search
// page for the given criteria.
type Site struct {
	ID        string
	Name      string
	SearchURL func(c SearchCriteria) string
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// JobSites returns the configured job boards in their fixed scrape order.
func JobSites() []Site {
	return []Site{
		{
			ID:   "naukri",
			Name: "Naukri",
			SearchURL: func(c SearchCriteria) string {
				return fmt.Sprintf("https://www.naukri.com/%s-jobs-in-%s",
					slugify(c.JobTitle), slugify(c.Location))
			},
		},
		{
			ID:   "indeed",
			Name: "Indeed",
			SearchURL: func(c SearchCriteria) string {
				q := url.Values{}
				q.Set("q", slugify(c.JobTitle))
				q.Set("l", slugify(c.Location))
				return "https://www.indeed.com/jobs?" + q.Encode()
			},
		},
		{
			ID:   "monster",
			Name: "Monster",
			SearchURL: func(c SearchCriteria) string {
				q := url.Values{}
				q.Set("q", slugify(c.JobTitle))
				q.Set("where", slugify(c.Location))
				return "https://www.monster.com/jobs/search/?" + q.Encode()
			},
		},
	}
}

// TrendsSources returns the salary/trends pages for the given industry.
// Both URLs go out in a single extraction call.
func TrendsSources(industry string) []string {
	return []string{
		fmt.Sprintf("https://www.payscale.com/research/US/Job=%s/Salary",
			strings.ReplaceAll(strings.TrimSpace(industry), " ", "_")),
		fmt.Sprintf("https://www.glassdoor.com/Salaries/%s-salary-SRCH_KO0,%d.htm",
			slugify(industry), len(industry)),
	}
}
