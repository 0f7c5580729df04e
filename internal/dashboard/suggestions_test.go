package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-dashboard/internal/analysis"
)

func TestSuggestionPriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, SuggestionPriority("Remove the table layout"))
	assert.Equal(t, PriorityHigh, SuggestionPriority("Improve ATS compatibility"))
	assert.Equal(t, PriorityMedium, SuggestionPriority("Add more skills"))
	assert.Equal(t, PriorityMedium, SuggestionPriority("Use keywords from the posting"))
	assert.Equal(t, PriorityLow, SuggestionPriority("Add a professional summary"))
}

func TestActionStepsFirstMatch(t *testing.T) {
	steps := ActionSteps("Add a summary listing your skills")
	require.Len(t, steps, 4)
	assert.Equal(t, "Write a 2-3 line professional summary at the top of your resume", steps[0])

	assert.Equal(t, `Add a dedicated "Skills" or "Technical Skills" section`, ActionSteps("More skills")[0])
	assert.Equal(t, "Remove tables and use simple text formatting", ActionSteps("Fix formatting")[0])
	assert.Equal(t, "Review the job description for important keywords", ActionSteps("keyword density")[0])
	assert.Equal(t, "Review the specific area mentioned in the suggestion", ActionSteps("Be concise")[0])
}

func TestGroupSuggestionsKeepsPositions(t *testing.T) {
	in := []string{
		"Add a professional summary",
		"Remove tables",
		"List more skills",
		"Fix formatting of dates",
	}

	groups := GroupSuggestions(in, 3)

	require.Len(t, groups, 3)
	assert.Equal(t, "High Priority", groups[0].Title)
	require.Len(t, groups[0].Suggestions, 2)
	assert.Equal(t, 1, groups[0].Suggestions[0].Index)
	assert.Equal(t, 3, groups[0].Suggestions[1].Index)
	assert.True(t, groups[0].Suggestions[1].Expanded)
	assert.Len(t, groups[0].Suggestions[1].Steps, 4)
	assert.False(t, groups[0].Suggestions[0].Expanded)
	assert.Nil(t, groups[0].Suggestions[0].Steps)
	assert.Equal(t, "Medium Priority", groups[1].Title)
	assert.Equal(t, 2, groups[1].Suggestions[0].Index)
	assert.Equal(t, "Low Priority", groups[2].Title)
	assert.Equal(t, 0, groups[2].Suggestions[0].Index)
}

func TestGroupSuggestionsDuplicateTextGetsOwnIndex(t *testing.T) {
	groups := GroupSuggestions([]string{"Be concise", "Be concise"}, 1)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Suggestions, 2)
	assert.False(t, groups[0].Suggestions[0].Expanded)
	assert.True(t, groups[0].Suggestions[1].Expanded)
}

func TestQuickWins(t *testing.T) {
	wins := QuickWins([]string{"A", "B", "C", "D", "E"}, []string{"x"})
	require.Len(t, wins, 2)
	assert.Equal(t, "Include A, B, C and 2 more skills if you have experience with them.", wins[0].Body)
	assert.Equal(t, "Resolve 1 formatting issue to improve ATS compatibility.", wins[1].Body)

	wins = QuickWins([]string{"A", "B"}, []string{"x", "y"})
	assert.Equal(t, "Include A, B skills if you have experience with them.", wins[0].Body)
	assert.Equal(t, "Resolve 2 formatting issues to improve ATS compatibility.", wins[1].Body)

	assert.Empty(t, QuickWins(nil, nil))
}

func TestToggleExpanded(t *testing.T) {
	assert.Equal(t, 2, ToggleExpanded(-1, 2))
	assert.Equal(t, -1, ToggleExpanded(2, 2))
	assert.Equal(t, 0, ToggleExpanded(2, 0))
}

func TestBuildSuggestionsEmpty(t *testing.T) {
	s := BuildSuggestions(analysis.Result{}, -1)

	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.Groups)
	assert.Contains(t, s.Empty, "well-optimized")
	assert.Empty(t, s.QuickWins)
	assert.NotNil(t, s.Strengths)
}
