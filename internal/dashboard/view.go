package dashboard

import (
	"strconv"
	"strings"

	"resume-dashboard/internal/analysis"
)

// Tab identifies one dashboard view.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabSkills      Tab = "skills"
	TabATS         Tab = "ats"
	TabSuggestions Tab = "suggestions"
)

// TabLink is one entry of the tab bar.
type TabLink struct {
	ID     Tab    `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

var tabs = []struct {
	id    Tab
	label string
	icon  string
}{
	{TabOverview, "Overview", "fas fa-chart-pie"},
	{TabSkills, "Skills Analysis", "fas fa-cogs"},
	{TabATS, "ATS Report", "fas fa-shield-alt"},
	{TabSuggestions, "Suggestions", "fas fa-lightbulb"},
}

// ParseTab maps a query value to a tab, defaulting to overview.
func ParseTab(raw string) Tab {
	t := Tab(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range tabs {
		if known.id == t {
			return t
		}
	}
	return TabOverview
}

// ParseExpand reads the expanded suggestion index; anything invalid means none.
func ParseExpand(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// View is everything the dashboard renders for one tab.
type View struct {
	FileName    string       `json:"fileName,omitempty"`
	Tab         Tab          `json:"tab"`
	Tabs        []TabLink    `json:"tabs"`
	Score       ScoreCard    `json:"score"`
	Overview    *Overview    `json:"overview,omitempty"`
	Skills      *Skills      `json:"skills,omitempty"`
	ATS         *ATS         `json:"ats,omitempty"`
	Suggestions *Suggestions `json:"suggestions,omitempty"`
	Expanded    int          `json:"expanded"`
}

// Build derives the view for tab from r. Only the active tab's panel is populated.
func Build(r analysis.Result, tab Tab, expanded int) View {
	tab = ParseTab(string(tab))
	v := View{
		Tab:      tab,
		Score:    NewScoreCard(r.MatchScore.Clamped()),
		Expanded: -1,
	}
	for _, t := range tabs {
		v.Tabs = append(v.Tabs, TabLink{ID: t.id, Label: t.label, Icon: t.icon, Active: t.id == tab})
	}
	switch tab {
	case TabSkills:
		s := BuildSkills(r)
		v.Skills = &s
	case TabATS:
		a := BuildATS(r)
		v.ATS = &a
	case TabSuggestions:
		if expanded >= 0 && expanded < len(r.Suggestions) {
			v.Expanded = expanded
		}
		s := BuildSuggestions(r, v.Expanded)
		v.Suggestions = &s
	default:
		o := BuildOverview(r)
		v.Overview = &o
	}
	return v
}
