package dashboard

import (
	"fmt"
	"strings"

	"resume-dashboard/internal/analysis"
)

const emptySuggestions = "No specific improvements suggested. Your resume appears to be well-optimized for this job."

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityOrder = []struct {
	priority Priority
	title    string
	icon     string
}{
	{PriorityHigh, "High Priority", "fa-exclamation-circle"},
	{PriorityMedium, "Medium Priority", "fa-clock"},
	{PriorityLow, "Low Priority", "fa-info-circle"},
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// SuggestionPriority ranks a suggestion by the topics it mentions.
func SuggestionPriority(s string) Priority {
	lower := strings.ToLower(s)
	switch {
	case containsAny(lower, "table", "format", "ats"):
		return PriorityHigh
	case containsAny(lower, "skill", "keyword"):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func SuggestionIcon(s string) string {
	lower := strings.ToLower(s)
	switch {
	case containsAny(lower, "summary", "profile"):
		return "fas fa-user-edit"
	case strings.Contains(lower, "skill"):
		return "fas fa-cogs"
	case containsAny(lower, "experience", "work"):
		return "fas fa-briefcase"
	case strings.Contains(lower, "education"):
		return "fas fa-graduation-cap"
	case containsAny(lower, "format", "table"):
		return "fas fa-file-alt"
	case strings.Contains(lower, "keyword"):
		return "fas fa-key"
	case strings.Contains(lower, "project"):
		return "fas fa-code"
	case strings.Contains(lower, "certification"):
		return "fas fa-certificate"
	default:
		return "fas fa-lightbulb"
	}
}

// ActionSteps returns four concrete steps for a suggestion; the first matching topic wins.
func ActionSteps(s string) []string {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "summary"):
		return []string{
			"Write a 2-3 line professional summary at the top of your resume",
			"Include your years of experience and key skills",
			"Mention your career objective or target role",
			"Use keywords from the job description",
		}
	case strings.Contains(lower, "skill"):
		return []string{
			`Add a dedicated "Skills" or "Technical Skills" section`,
			"List both hard and soft skills relevant to the job",
			"Group skills by category (e.g., Programming, Tools, Languages)",
			"Include proficiency levels where appropriate",
		}
	case containsAny(lower, "table", "format"):
		return []string{
			"Remove tables and use simple text formatting",
			"Use standard fonts like Arial, Calibri, or Times New Roman",
			"Stick to black text on white background",
			"Use bullet points instead of complex layouts",
		}
	case strings.Contains(lower, "keyword"):
		return []string{
			"Review the job description for important keywords",
			"Naturally incorporate these keywords in your experience descriptions",
			"Use industry-standard terminology",
			"Match the exact terms used in the job posting when possible",
		}
	default:
		return []string{
			"Review the specific area mentioned in the suggestion",
			"Research best practices for this section",
			"Update your resume accordingly",
			"Test the changes with ATS-friendly formats",
		}
	}
}

type Suggestion struct {
	Index    int      `json:"index"`
	Text     string   `json:"text"`
	Icon     string   `json:"icon"`
	Priority Priority `json:"priority"`
	Expanded bool     `json:"expanded"`
	Steps    []string `json:"steps,omitempty"`
}

type PriorityGroup struct {
	Priority    Priority     `json:"priority"`
	Title       string       `json:"title"`
	Icon        string       `json:"icon"`
	Suggestions []Suggestion `json:"suggestions"`
}

type QuickWin struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Suggestions struct {
	Count     int             `json:"count"`
	Groups    []PriorityGroup `json:"groups"`
	Empty     string          `json:"empty,omitempty"`
	QuickWins []QuickWin      `json:"quickWins"`
	Strengths []string        `json:"strengths"`
}

// GroupSuggestions buckets suggestions High, Medium, Low. Each keeps its position in the
// original list as Index; expanded is that index, or -1 for none.
func GroupSuggestions(suggestions []string, expanded int) []PriorityGroup {
	groups := make([]PriorityGroup, 0, len(priorityOrder))
	for _, p := range priorityOrder {
		g := PriorityGroup{Priority: p.priority, Title: p.title, Icon: p.icon}
		for i, text := range suggestions {
			if SuggestionPriority(text) != p.priority {
				continue
			}
			s := Suggestion{Index: i, Text: text, Icon: SuggestionIcon(text), Priority: p.priority}
			if i == expanded {
				s.Expanded = true
				s.Steps = ActionSteps(text)
			}
			g.Suggestions = append(g.Suggestions, s)
		}
		if len(g.Suggestions) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// QuickWins summarizes the cheapest fixes: missing skills and ATS issues.
func QuickWins(missingSkills, atsIssues []string) []QuickWin {
	var wins []QuickWin
	if n := len(missingSkills); n > 0 {
		head := missingSkills
		if n > 3 {
			head = missingSkills[:3]
		}
		body := "Include " + strings.Join(head, ", ")
		if n > 3 {
			body += fmt.Sprintf(" and %d more", n-3)
		}
		wins = append(wins, QuickWin{Title: "Add Missing Skills", Body: body + " skills if you have experience with them."})
	}
	if n := len(atsIssues); n > 0 {
		plural := ""
		if n > 1 {
			plural = "s"
		}
		wins = append(wins, QuickWin{
			Title: "Fix ATS Issues",
			Body:  fmt.Sprintf("Resolve %d formatting issue%s to improve ATS compatibility.", n, plural),
		})
	}
	if wins == nil {
		return []QuickWin{}
	}
	return wins
}

// ToggleExpanded returns the expand state after clicking index: the same index collapses.
func ToggleExpanded(current, clicked int) int {
	if current == clicked {
		return -1
	}
	return clicked
}

// BuildSuggestions derives the suggestions tab with suggestion expanded open.
func BuildSuggestions(r analysis.Result, expanded int) Suggestions {
	out := Suggestions{
		Count:     len(r.Suggestions),
		Groups:    GroupSuggestions(r.Suggestions, expanded),
		QuickWins: QuickWins(r.MissingSkills, r.ATSIssues),
		Strengths: r.Strengths,
	}
	if out.Strengths == nil {
		out.Strengths = []string{}
	}
	if len(r.Suggestions) == 0 {
		out.Empty = emptySuggestions
	}
	return out
}
