package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-dashboard/internal/analysis"
)

func TestCategorizeFirstMatchWins(t *testing.T) {
	cases := map[string]string{
		"Python":     CategoryProgramming,
		"JavaScript": CategoryProgramming,
		"React":      CategoryFrameworks,
		"PostgreSQL": CategoryDatabases,
		"MongoDB":    CategoryProgramming,
		"Kubernetes": CategoryCloudDevOps,
		"Figma":      CategoryOther,
	}
	for skill, want := range cases {
		assert.Equal(t, want, Categorize(skill), skill)
	}
}

func TestGroupByCategoryKeepsOrderAndDropsEmpty(t *testing.T) {
	groups := GroupByCategory([]string{"Docker", "Python", "Figma", "Rust"})

	assert.Equal(t, []CategoryGroup{
		{Category: CategoryProgramming, Skills: []string{"Python", "Rust"}},
		{Category: CategoryCloudDevOps, Skills: []string{"Docker"}},
		{Category: CategoryOther, Skills: []string{"Figma"}},
	}, groups)
}

func TestSkillsMatrix(t *testing.T) {
	rows := SkillsMatrix([]string{"Python", "React", "Vue"}, []string{"Java", "Angular", "Terraform"})

	assert.Equal(t, []MatrixRow{
		{Category: CategoryProgramming, Matched: 1, Missing: 1, Percent: 50},
		{Category: CategoryFrameworks, Matched: 2, Missing: 1, Percent: 67},
		{Category: CategoryCloudDevOps, Matched: 0, Missing: 1, Percent: 0},
	}, rows)
}

func TestSkillsChartEmpty(t *testing.T) {
	chart := SkillsChart(0, 0)

	assert.Len(t, chart, 2)
	assert.Equal(t, 0, chart[0].Percent)
	assert.Equal(t, 0, chart[1].Percent)
}

func TestBuildSkills(t *testing.T) {
	s := BuildSkills(analysis.Result{
		MatchScore:    65,
		MatchedSkills: []string{"Go", "Redis"},
		MissingSkills: []string{"AWS"},
	})

	assert.Equal(t, "medium", s.ScoreBadge)
	assert.Equal(t, 2, s.MatchedCount)
	assert.Equal(t, 1, s.MissingCount)
	assert.Equal(t, 67, s.Chart[0].Percent)
	assert.Equal(t, 33, s.Chart[1].Percent)
	assert.Len(t, s.Matrix, 3)
}
