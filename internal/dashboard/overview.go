package dashboard

import (
	"strings"

	"resume-dashboard/internal/analysis"
)

const (
	emptyStrengths     = "No specific strengths identified"
	emptyWeaknesses    = "No specific weaknesses identified"
	emptyMatchedSkills = "No skills matched"
	emptyMissingSkills = "All required skills found!"
)

type Overview struct {
	MatchedSkillCount   int            `json:"matchedSkillCount"`
	MissingSkillCount   int            `json:"missingSkillCount"`
	MatchedKeywordCount int            `json:"matchedKeywordCount"`
	Recommendation      Recommendation `json:"recommendation"`
	MatchedSkills       List           `json:"matchedSkills"`
	MissingSkills       List           `json:"missingSkills"`
	Experience          Experience     `json:"experience"`
	Education           Education      `json:"education"`
	Strengths           List           `json:"strengths"`
	Weaknesses          List           `json:"weaknesses"`
	Assessment          string         `json:"assessment,omitempty"`
}

// List is an ordered set of items with the message shown when it is empty.
type List struct {
	Items []string `json:"items"`
	Empty string   `json:"empty"`
}

func newList(items []string, empty string) List {
	if items == nil {
		items = []string{}
	}
	return List{Items: items, Empty: empty}
}

type Recommendation struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
	Icon  string `json:"icon"`
}

type Experience struct {
	Required  string `json:"required"`
	Candidate string `json:"candidate"`
	Percent   int    `json:"percent"`
	Tone      string `json:"tone"`
}

type Education struct {
	Required  string `json:"required"`
	Candidate string `json:"candidate"`
	Match     bool   `json:"match"`
	Answer    string `json:"answer"`
	Tone      string `json:"tone"`
	Icon      string `json:"icon"`
}

// RecommendationBadge maps the verdict label to its tone and icon, case-insensitively.
func RecommendationBadge(rec analysis.Recommendation) Recommendation {
	label := strings.TrimSpace(string(rec))
	if label == "" {
		label = "N/A"
	}
	switch rec.Normalize() {
	case analysis.StrongFit:
		return Recommendation{Label: label, Tone: "success", Icon: "fas fa-thumbs-up"}
	case analysis.Consider:
		return Recommendation{Label: label, Tone: "warning", Icon: "fas fa-balance-scale"}
	case analysis.WeakFit:
		return Recommendation{Label: label, Tone: "danger", Icon: "fas fa-thumbs-down"}
	default:
		return Recommendation{Label: label, Tone: "info", Icon: "fas fa-info-circle"}
	}
}

// ExperienceTone colors the experience match percentage.
func ExperienceTone(pct int) string {
	switch {
	case pct >= 80:
		return "text-success"
	case pct >= 50:
		return "text-warning"
	default:
		return "text-danger"
	}
}

func yearsText(y analysis.Years, fallback string) string {
	if y.IsZero() || (y.Number != nil && *y.Number == 0) {
		return fallback + " years"
	}
	return y.String() + " years"
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// BuildOverview derives the overview tab.
func BuildOverview(r analysis.Result) Overview {
	pct := int(r.ExperienceMatch.MatchPercentage)
	edu := Education{
		Required:  orDefault(r.EducationMatch.Required, "Not specified"),
		Candidate: orDefault(r.EducationMatch.Candidate, "Not determined"),
		Match:     r.EducationMatch.Match,
		Answer:    "No",
		Tone:      "text-warning",
		Icon:      "fa-times",
	}
	if edu.Match {
		edu.Answer, edu.Tone, edu.Icon = "Yes", "text-success", "fa-check"
	}
	return Overview{
		MatchedSkillCount:   len(r.MatchedSkills),
		MissingSkillCount:   len(r.MissingSkills),
		MatchedKeywordCount: len(r.MatchedKeywords),
		Recommendation:      RecommendationBadge(r.Recommendation),
		MatchedSkills:       newList(r.MatchedSkills, emptyMatchedSkills),
		MissingSkills:       newList(r.MissingSkills, emptyMissingSkills),
		Experience: Experience{
			Required:  yearsText(r.ExperienceMatch.RequiredYears, "Not specified"),
			Candidate: yearsText(r.ExperienceMatch.CandidateYears, "Not determined"),
			Percent:   pct,
			Tone:      ExperienceTone(pct),
		},
		Education:  edu,
		Strengths:  newList(r.Strengths, emptyStrengths),
		Weaknesses: newList(r.Weaknesses, emptyWeaknesses),
		Assessment: strings.TrimSpace(r.OverallAssessment),
	}
}
