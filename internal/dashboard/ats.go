package dashboard

import (
	"strings"

	"resume-dashboard/internal/analysis"
)

const (
	emptyATSIssues       = "No ATS issues detected! Your resume format is ATS-friendly."
	emptyMissingSections = "All essential resume sections are present!"
	emptyMatchedKeywords = "No specific keywords identified"
	emptyMissingKeywords = "All important keywords found!"
)

// Tip is a static ATS optimization hint.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ATSTips are shown on every ATS report.
var ATSTips = []Tip{
	{Title: "Simple Formatting", Body: "Use standard fonts (Arial, Calibri, Times New Roman) and avoid complex layouts, tables, or graphics."},
	{Title: "Keywords", Body: "Include relevant keywords from the job description naturally throughout your resume."},
	{Title: "Standard Sections", Body: `Use common section headers like "Work Experience", "Education", "Skills", and "Contact Information".`},
	{Title: "File Format", Body: "Save as PDF or DOCX to preserve formatting across different systems."},
}

// Item is a text entry with its icon.
type Item struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type Issue struct {
	Item
	Severity string `json:"severity"`
}

type ATS struct {
	Score           int     `json:"score"`
	Tone            string  `json:"tone"`
	Issues          []Issue `json:"issues"`
	IssuesEmpty     string  `json:"issuesEmpty"`
	MissingSections []Item  `json:"missingSections"`
	SectionsEmpty   string  `json:"sectionsEmpty"`
	MatchedKeywords List    `json:"matchedKeywords"`
	MissingKeywords List    `json:"missingKeywords"`
	Tips            []Tip   `json:"tips"`
}

// ATSScore estimates compatibility: 100 minus 10 per issue and 5 per missing section, clamped to 0..100.
func ATSScore(issues, missingSections int) int {
	score := 100 - 10*issues - 5*missingSections
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func ATSTone(score int) string {
	switch {
	case score >= 80:
		return "success"
	case score >= 60:
		return "warning"
	default:
		return "danger"
	}
}

func IssueIcon(issue string) string {
	lower := strings.ToLower(issue)
	switch {
	case strings.Contains(lower, "table"):
		return "fas fa-table"
	case strings.Contains(lower, "image"), strings.Contains(lower, "graphic"):
		return "fas fa-image"
	case strings.Contains(lower, "font"):
		return "fas fa-font"
	case strings.Contains(lower, "format"):
		return "fas fa-file-alt"
	default:
		return "fas fa-exclamation-triangle"
	}
}

func SectionIcon(section string) string {
	lower := strings.ToLower(section)
	switch {
	case strings.Contains(lower, "summary"), strings.Contains(lower, "profile"):
		return "fas fa-user"
	case strings.Contains(lower, "experience"), strings.Contains(lower, "work"):
		return "fas fa-briefcase"
	case strings.Contains(lower, "education"):
		return "fas fa-graduation-cap"
	case strings.Contains(lower, "skill"):
		return "fas fa-cogs"
	case strings.Contains(lower, "project"):
		return "fas fa-code"
	case strings.Contains(lower, "certification"):
		return "fas fa-certificate"
	case strings.Contains(lower, "contact"):
		return "fas fa-phone"
	default:
		return "fas fa-file-text"
	}
}

// BuildATS derives the ATS report tab.
func BuildATS(r analysis.Result) ATS {
	score := ATSScore(len(r.ATSIssues), len(r.MissingSections))
	issues := make([]Issue, 0, len(r.ATSIssues))
	for _, text := range r.ATSIssues {
		issues = append(issues, Issue{Item: Item{Text: text, Icon: IssueIcon(text)}, Severity: "High"})
	}
	sections := make([]Item, 0, len(r.MissingSections))
	for _, text := range r.MissingSections {
		sections = append(sections, Item{Text: text, Icon: SectionIcon(text)})
	}
	return ATS{
		Score:           score,
		Tone:            ATSTone(score),
		Issues:          issues,
		IssuesEmpty:     emptyATSIssues,
		MissingSections: sections,
		SectionsEmpty:   emptyMissingSections,
		MatchedKeywords: newList(r.MatchedKeywords, emptyMatchedKeywords),
		MissingKeywords: newList(r.MissingKeywords, emptyMissingKeywords),
		Tips:            ATSTips,
	}
}
