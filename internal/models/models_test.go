package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobSites_FixedOrder(t *testing.T) {
	sites := JobSites()
	require.Len(t, sites, 3)
	assert.Equal(t, "naukri", sites[0].ID)
	assert.Equal(t, "indeed", sites[1].ID)
	assert.Equal(t, "monster", sites[2].ID)
}

func TestJobSites_SearchURLs(t *testing.T) {
	c := SearchCriteria{JobTitle: "Software Engineer", Location: "New York"}
	sites := JobSites()

	assert.Equal(t, "https://www.naukri.com/software-engineer-jobs-in-new-york", sites[0].SearchURL(c))
	assert.Equal(t, "https://www.indeed.com/jobs?l=new-york&q=software-engineer", sites[1].SearchURL(c))
	assert.Equal(t, "https://www.monster.com/jobs/search/?q=software-engineer&where=new-york", sites[2].SearchURL(c))
}

func TestTrendsSources(t *testing.T) {
	urls := TrendsSources("Data Science")
	require.Len(t, urls, 2)
	assert.Equal(t, "https://www.payscale.com/research/US/Job=Data_Science/Salary", urls[0])
	assert.Equal(t, "https://www.glassdoor.com/Salaries/data-science-salary-SRCH_KO0,12.htm", urls[1])
}

func TestSkillsString(t *testing.T) {
	c := SearchCriteria{Skills: []string{"Python", "SQL"}}
	assert.Equal(t, "Python, SQL", c.SkillsString())

	assert.Equal(t, "", SearchCriteria{}.SkillsString())
}
