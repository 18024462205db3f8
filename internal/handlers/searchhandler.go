package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jobscout-ai/jobscout/internal/dtos"
	"github.com/jobscout-ai/jobscout/internal/models"
)

// SearchPipeline is the full search run the handler triggers.
type SearchPipeline interface {
	Run(ctx context.Context, c models.SearchCriteria) (*models.Recommendation, error)
}

type SearchHandler struct {
	Pipeline SearchPipeline
}

// NewSearchHandler creates the handler with dependencies
func NewSearchHandler(pipeline SearchPipeline) *SearchHandler {
	return &SearchHandler{Pipeline: pipeline}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "jobscout"})
}

// Search is the POST /api/v1/search endpoint. It runs the whole pipeline
// synchronously and returns both analysis sections in one response.
func (h *SearchHandler) Search(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request",
			"fields": fieldErrors(err),
		})
		return
	}

	rec, err := h.Pipeline.Run(c.Request.Context(), req.ToCriteria())
	if err != nil {
		// Terminal analysis failure: nothing partial goes out.
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Job search failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dtos.JobSearchResponse{
		Success:        true,
		JobsAnalysis:   rec.JobsAnalysis,
		TrendsAnalysis: rec.TrendsAnalysis,
	})
}

// fieldErrors turns binding failures into per-field messages the form
// can surface next to its inputs.
func fieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "JobTitle":
			fields["job_title"] = "job title is required"
		case "Location":
			fields["location"] = "location is required"
		case "ExperienceYears":
			fields["experience_years"] = "experience must be zero or a positive number"
		default:
			fields[fe.Field()] = "invalid value"
		}
	}
	return fields
}
