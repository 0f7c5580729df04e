package main

import (
	"fmt"
	"io"
	"strings"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/dashboard"
)

// summary is the terminal rendition of the dashboard.
type summary struct {
	FileName       string                    `json:"filename"`
	Score          dashboard.ScoreCard       `json:"score"`
	Recommendation dashboard.Recommendation  `json:"recommendation"`
	Experience     dashboard.Experience      `json:"experience"`
	Education      dashboard.Education       `json:"education"`
	MatchedSkills  []string                  `json:"matchedSkills"`
	MissingSkills  []string                  `json:"missingSkills"`
	ATSScore       int                       `json:"atsScore"`
	ATSIssues      []string                  `json:"atsIssues"`
	Suggestions    []dashboard.PriorityGroup `json:"suggestions"`
	QuickWins      []dashboard.QuickWin      `json:"quickWins"`
	Assessment     string                    `json:"assessment,omitempty"`
}

func summarize(fileName string, r analysis.Result) summary {
	overview := dashboard.BuildOverview(r)
	ats := dashboard.BuildATS(r)
	sugg := dashboard.BuildSuggestions(r, -1)
	return summary{
		FileName:       fileName,
		Score:          dashboard.NewScoreCard(r.MatchScore.Clamped()),
		Recommendation: overview.Recommendation,
		Experience:     overview.Experience,
		Education:      overview.Education,
		MatchedSkills:  r.MatchedSkills,
		MissingSkills:  r.MissingSkills,
		ATSScore:       ats.Score,
		ATSIssues:      r.ATSIssues,
		Suggestions:    sugg.Groups,
		QuickWins:      sugg.QuickWins,
		Assessment:     overview.Assessment,
	}
}

func (s summary) write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.FileName)
	fmt.Fprintf(&b, "Match score: %d%% (%s)\n", s.Score.Score, s.Score.Label)
	fmt.Fprintf(&b, "Recommendation: %s\n", s.Recommendation.Label)
	fmt.Fprintf(&b, "Experience: %s required, %s candidate (%d%%)\n", s.Experience.Required, s.Experience.Candidate, s.Experience.Percent)
	fmt.Fprintf(&b, "Education match: %s\n", s.Education.Answer)
	fmt.Fprintf(&b, "ATS score: %d%%\n", s.ATSScore)
	writeList(&b, "Matched skills", s.MatchedSkills)
	writeList(&b, "Missing skills", s.MissingSkills)
	writeList(&b, "ATS issues", s.ATSIssues)
	for _, g := range s.Suggestions {
		if len(g.Suggestions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", g.Title)
		for _, sg := range g.Suggestions {
			fmt.Fprintf(&b, "  %d. %s\n", sg.Index+1, sg.Text)
		}
	}
	if len(s.QuickWins) > 0 {
		b.WriteString("Quick wins:\n")
		for _, q := range s.QuickWins {
			fmt.Fprintf(&b, "  - %s: %s\n", q.Title, q.Body)
		}
	}
	if s.Assessment != "" {
		fmt.Fprintf(&b, "Assessment: %s\n", s.Assessment)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", title, strings.Join(items, ", "))
}
