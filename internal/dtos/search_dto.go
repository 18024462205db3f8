package dtos

import (
	"strings"

	"github.com/jobscout-ai/jobscout/internal/models"
)

type JobSearchRequest struct {
	JobTitle        string `json:"job_title" binding:"required"`
	Location        string `json:"location" binding:"required"`
	ExperienceYears int    `json:"experience_years" binding:"gte=0"`

	// Optional Fields
	Skills   string `json:"skills"`   // comma-separated
	Industry string `json:"industry"` // job category for the trends lookup
}

// ToCriteria converts the request into the immutable criteria used for
// the rest of the run. Skills are split on commas and trimmed; empty
// tokens are dropped.
func (r *JobSearchRequest) ToCriteria() models.SearchCriteria {
	var skills []string
	for _, s := range strings.Split(r.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	return models.SearchCriteria{
		JobTitle:        strings.TrimSpace(r.JobTitle),
		Location:        strings.TrimSpace(r.Location),
		ExperienceYears: r.ExperienceYears,
		Skills:          skills,
		Industry:        strings.TrimSpace(r.Industry),
	}
}

type JobSearchResponse struct {
	Success        bool   `json:"success"`
	JobsAnalysis   string `json:"jobs_analysis"`
	TrendsAnalysis string `json:"trends_analysis"`
}
