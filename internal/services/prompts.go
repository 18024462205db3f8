package services

import (
	"encoding/json"
	"fmt"

	"github.com/jobscout-ai/jobscout/internal/models"
)

// Prompt construction is deliberately pure: same criteria and same data
// in, byte-identical prompt out. The external services are the only
// non-deterministic part of a run.

const jobExtractionPrompt = `Extract job postings by region, roles, job titles, and experience from this job site.

Look for jobs that match these criteria:
- Job Title: Should be related to %s
- Location: %s (include remote jobs if available)
- Experience: Around %d years
- Skills: Should match at least some of these skills: %s
- Job Type: Full-time, Part-time, Contract, Temporary, Internship

For each job posting, extract:
- job_title: The exact title of the job
- role: The specific role or function (e.g., "Frontend Developer", "Data Analyst")
- company: The company offering the job
- location: Where the job is located
- region: The broader region or area (e.g., "Northeast", "West Coast", "Midwest")
- experience: The experience requirement in years or level (e.g., "3-5 years", "Senior")
- salary_range: The advertised salary if present
- skills: The skills the posting asks for
- job_type: Full-time, Part-time, Contract, Temporary or Internship
- job_link: The link to the job posting

IMPORTANT: Return data for at least 3 different job opportunities. MAXIMUM 10.`

// BuildJobExtractionPrompt parameterizes the extraction instruction for
// one job site.
func BuildJobExtractionPrompt(c models.SearchCriteria) string {
	return fmt.Sprintf(jobExtractionPrompt, c.JobTitle, c.Location, c.ExperienceYears, c.SkillsString())
}

// JobPostingsSchema is the output shape the crawling service is asked to
// fill: an object with a job_postings array.
func JobPostingsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"job_postings": map[string]any{
				"type":        "array",
				"description": "List of job postings",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"job_title":    map[string]any{"type": "string", "description": "Title of the job position"},
						"role":         map[string]any{"type": "string", "description": "Specific role or function within the job category"},
						"company":      map[string]any{"type": "string", "description": "Company offering the position"},
						"location":     map[string]any{"type": "string", "description": "Location of the job"},
						"region":       map[string]any{"type": "string", "description": "Region or area where the job is located"},
						"experience":   map[string]any{"type": "string", "description": "Experience required for the position"},
						"salary_range": map[string]any{"type": "string", "description": "Advertised salary range if any"},
						"skills":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Skills the posting asks for"},
						"job_type":     map[string]any{"type": "string", "description": "Employment type"},
						"job_link":     map[string]any{"type": "string", "description": "Link to the job posting"},
					},
				},
			},
		},
	}
}

const trendsExtractionPrompt = `Extract industry trends data for the %s industry.

For each industry trend, extract:
- industry: The specific industry or sub-category
- avg_salary: The average salary in this industry (as a number)
- growth_rate: The growth rate of this industry (as a number)
- demand_level: The demand level (e.g., "High", "Medium", "Low")
- top_skills: A list of top skills in demand for this industry

IMPORTANT:
- Extract data for at least 3-5 different roles or sub-categories within this industry
- Include salary trends, growth rate, and demand level
- Identify top skills in demand for this industry`

// BuildTrendsExtractionPrompt parameterizes the trends instruction for
// the chosen industry category.
func BuildTrendsExtractionPrompt(industry string) string {
	return fmt.Sprintf(trendsExtractionPrompt, industry)
}

// IndustryTrendsSchema is the expected shape of the trends extraction.
func IndustryTrendsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"industry_trends": map[string]any{
				"type":        "array",
				"description": "List of industry trends",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"industry":     map[string]any{"type": "string", "description": "Industry name"},
						"avg_salary":   map[string]any{"type": "number", "description": "Average salary in the industry"},
						"growth_rate":  map[string]any{"type": "number", "description": "Growth rate of the industry"},
						"demand_level": map[string]any{"type": "string", "description": "Demand level in the industry"},
						"top_skills":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Top skills in demand for this industry"},
					},
				},
			},
		},
	}
}

const jobAnalysisPrompt = `As a career expert, analyze these job opportunities:

Jobs Found in json format:
%s

**IMPORTANT INSTRUCTIONS:**
1. ONLY analyze jobs from the above JSON data that match the user's requirements:
   - Job Title: Related to %s
   - Location/Region: Near %s
   - Experience: Around %d years
   - Skills: %s
   - Job Type: Full-time, Part-time, Contract, Temporary, Internship
2. DO NOT create new job listings
3. From the matching jobs, select 5-6 jobs that best match the user's skills and experience

Please provide your analysis in this format:

💼 SELECTED JOB OPPORTUNITIES
• List only 5-6 best matching jobs
• For each job include:
  - Job Title and Role
  - Region/Location
  - Experience Required
  - Pros and Cons
  - Job Link

🔍 SKILLS MATCH ANALYSIS
• Compare the selected jobs based on:
  - Skills match with user's profile
  - Experience requirements
  - Growth potential

💡 RECOMMENDATIONS
• Top 3 jobs from the selection with reasoning
• Career growth potential
• Points to consider before applying

📝 APPLICATION TIPS
• Job-specific application strategies
• Resume customization tips for these roles

Format your response in a clear, structured way using the above sections.`

// BuildJobAnalysisPrompt embeds the aggregated postings as JSON context
// for the ranking instruction.
func BuildJobAnalysisPrompt(c models.SearchCriteria, postings []models.JobPosting) (string, error) {
	data, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal postings: %w", err)
	}
	return fmt.Sprintf(jobAnalysisPrompt, string(data), c.JobTitle, c.Location, c.ExperienceYears, c.SkillsString()), nil
}

const trendsAnalysisPrompt = `As a career expert, analyze these industry trends for %s:

%s

Please provide:
1. A bullet-point summary of the salary and demand trends
2. Identify the top skills in demand for this industry
3. Career growth opportunities:
   - Roles with highest growth potential
   - Emerging specializations
   - Skills with increasing demand
4. Specific advice for job seekers based on these trends

Format the response as follows:

📊 INDUSTRY TRENDS SUMMARY
• [Bullet points for salary and demand trends]

🔥 TOP SKILLS IN DEMAND
• [Bullet points for most sought-after skills]

📈 CAREER GROWTH OPPORTUNITIES
• [Bullet points with growth insights]

🎯 RECOMMENDATIONS FOR JOB SEEKERS
• [Bullet points with specific advice]`

// BuildTrendsAnalysisPrompt embeds the extracted trend rows as JSON
// context for the summary instruction.
func BuildTrendsAnalysisPrompt(industry string, trends []models.IndustryTrend) (string, error) {
	data, err := json.MarshalIndent(trends, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal trends: %w", err)
	}
	return fmt.Sprintf(trendsAnalysisPrompt, industry, string(data)), nil
}
