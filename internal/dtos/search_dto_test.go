package dtos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCriteria_SplitsSkills(t *testing.T) {
	req := JobSearchRequest{
		JobTitle:        "  Software Engineer ",
		Location:        "Remote",
		ExperienceYears: 3,
		Skills:          "Python, SQL, , React ",
		Industry:        "Tech",
	}

	c := req.ToCriteria()

	assert.Equal(t, "Software Engineer", c.JobTitle)
	assert.Equal(t, "Remote", c.Location)
	assert.Equal(t, 3, c.ExperienceYears)
	assert.Equal(t, []string{"Python", "SQL", "React"}, c.Skills)
	assert.Equal(t, "Tech", c.Industry)
}

func TestToCriteria_EmptySkills(t *testing.T) {
	req := JobSearchRequest{JobTitle: "SE", Location: "Remote"}
	c := req.ToCriteria()
	assert.Empty(t, c.Skills)
}
