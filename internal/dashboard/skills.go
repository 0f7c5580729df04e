package dashboard

import (
	"strings"

	"resume-dashboard/internal/analysis"
)

// Skill categories, in match order.
const (
	CategoryProgramming = "Programming"
	CategoryFrameworks  = "Frameworks"
	CategoryDatabases   = "Databases"
	CategoryCloudDevOps = "Cloud/DevOps"
	CategoryOther       = "Other"
)

var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{CategoryProgramming, []string{"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "typescript"}},
	{CategoryFrameworks, []string{"react", "angular", "vue", "django", "flask", "spring", "express", "laravel"}},
	{CategoryDatabases, []string{"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra", "oracle"}},
	{CategoryCloudDevOps, []string{"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible"}},
}

// Categories lists every bucket in display order.
var Categories = []string{CategoryProgramming, CategoryFrameworks, CategoryDatabases, CategoryCloudDevOps, CategoryOther}

// Categorize returns the first category whose keywords appear in the lowercased skill.
// Matching is by substring in category order, so "MongoDB" and "Django" land in
// Programming because both contain "go".
func Categorize(skill string) string {
	lower := strings.ToLower(skill)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return CategoryOther
}

// CategoryGroup is the skills of one category, in their original order.
type CategoryGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// GroupByCategory buckets skills and drops empty categories.
func GroupByCategory(skills []string) []CategoryGroup {
	buckets := make(map[string][]string, len(Categories))
	for _, s := range skills {
		c := Categorize(s)
		buckets[c] = append(buckets[c], s)
	}
	out := make([]CategoryGroup, 0, len(buckets))
	for _, c := range Categories {
		if len(buckets[c]) > 0 {
			out = append(out, CategoryGroup{Category: c, Skills: buckets[c]})
		}
	}
	return out
}

// ChartSlice is one doughnut segment.
type ChartSlice struct {
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
	Border  string `json:"border"`
}

// MatrixRow is the per-category match ratio.
type MatrixRow struct {
	Category string `json:"category"`
	Matched  int    `json:"matched"`
	Missing  int    `json:"missing"`
	Percent  int    `json:"percent"`
}

type Skills struct {
	ScoreBadge    string          `json:"scoreBadge"`
	Chart         []ChartSlice    `json:"chart"`
	MatchedCount  int             `json:"matchedCount"`
	MissingCount  int             `json:"missingCount"`
	MatchedGroups []CategoryGroup `json:"matchedGroups"`
	MissingGroups []CategoryGroup `json:"missingGroups"`
	Matrix        []MatrixRow     `json:"matrix"`
}

// ScoreBadge classifies the match score for the skills header.
func ScoreBadge(score int) string {
	switch {
	case score >= 70:
		return "high"
	case score >= 50:
		return "medium"
	default:
		return "low"
	}
}

// SkillsChart returns the matched-vs-missing doughnut data.
func SkillsChart(matched, missing int) []ChartSlice {
	total := matched + missing
	return []ChartSlice{
		{Label: "Matched Skills", Value: matched, Percent: percent(matched, total), Color: "#10B981", Border: "#059669"},
		{Label: "Missing Skills", Value: missing, Percent: percent(missing, total), Color: "#F59E0B", Border: "#D97706"},
	}
}

// SkillsMatrix computes round(matched/total*100) for every category with skills.
func SkillsMatrix(matched, missing []string) []MatrixRow {
	m := make(map[string]int)
	for _, s := range matched {
		m[Categorize(s)]++
	}
	x := make(map[string]int)
	for _, s := range missing {
		x[Categorize(s)]++
	}
	rows := make([]MatrixRow, 0, len(Categories))
	for _, c := range Categories {
		total := m[c] + x[c]
		if total == 0 {
			continue
		}
		rows = append(rows, MatrixRow{Category: c, Matched: m[c], Missing: x[c], Percent: percent(m[c], total)})
	}
	return rows
}

// BuildSkills derives the skills tab.
func BuildSkills(r analysis.Result) Skills {
	return Skills{
		ScoreBadge:    ScoreBadge(r.MatchScore.Clamped()),
		Chart:         SkillsChart(len(r.MatchedSkills), len(r.MissingSkills)),
		MatchedCount:  len(r.MatchedSkills),
		MissingCount:  len(r.MissingSkills),
		MatchedGroups: GroupByCategory(r.MatchedSkills),
		MissingGroups: GroupByCategory(r.MissingSkills),
		Matrix:        SkillsMatrix(r.MatchedSkills, r.MissingSkills),
	}
}
