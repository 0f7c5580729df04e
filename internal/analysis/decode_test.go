package analysis

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResult = `{
  "match_score": 85,
  "matched_skills": ["React", "JavaScript"],
  "missing_skills": ["Node.js", "AWS"],
  "matched_keywords": ["frontend"],
  "missing_keywords": ["backend"],
  "experience_match": {"required_years": 3, "candidate_years": 2, "match_percentage": 67},
  "education_match": {"required": "BSc CS", "candidate": "BSc IT", "match": true},
  "missing_sections": ["Summary"],
  "ats_issues": ["Tables detected"],
  "suggestions": ["Add a professional summary at the beginning"],
  "strengths": ["Strong frontend development experience"],
  "weaknesses": ["Limited backend experience"],
  "overall_assessment": "Strong candidate.",
  "recommendation": "CONSIDER"
}`

func TestDecodeFullResult(t *testing.T) {
	res, err := Decode([]byte(sampleResult))
	require.NoError(t, err)

	assert.Equal(t, Score(85), res.MatchScore)
	assert.Equal(t, []string{"React", "JavaScript"}, res.MatchedSkills)
	assert.Equal(t, "3", res.ExperienceMatch.RequiredYears.String())
	assert.Equal(t, Score(67), res.ExperienceMatch.MatchPercentage)
	assert.True(t, res.EducationMatch.Match)
	assert.Equal(t, Consider, res.Recommendation.Normalize())
}

func TestDecodeFillsMissingLists(t *testing.T) {
	res, err := Decode([]byte(`{"match_score": 40}`))
	require.NoError(t, err)

	assert.NotNil(t, res.MatchedSkills)
	assert.Empty(t, res.MatchedSkills)
	assert.NotNil(t, res.Suggestions)
	assert.NotNil(t, res.ATSIssues)
	assert.True(t, res.ExperienceMatch.RequiredYears.IsZero())
}

func TestDecodeTextualYears(t *testing.T) {
	res, err := Decode([]byte(`{
	  "match_score": "72.6",
	  "experience_match": {"required_years": "Not specified", "candidate_years": "Not determined", "match_percentage": 50}
	}`))
	require.NoError(t, err)

	assert.Equal(t, Score(73), res.MatchScore)
	assert.Equal(t, "Not specified", res.ExperienceMatch.RequiredYears.String())
	assert.Nil(t, res.ExperienceMatch.RequiredYears.Number)
}

func TestDecodeRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ``},
		{name: "null", raw: `null`},
		{name: "score not a number", raw: `{"match_score": "NaN"}`},
		{name: "score infinite", raw: `{"match_score": "-Inf"}`},
		{name: "skills not strings", raw: `{"match_score": 1, "matched_skills": [1, 2]}`},
		{name: "not an object", raw: `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidResult), "got %v", err)
		})
	}
}

func TestSchemaErrorListsViolations(t *testing.T) {
	err := ValidateShape([]byte(`{"match_score": true}`))
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.NotEmpty(t, schemaErr.Violations)
}

func TestYearsRoundTrip(t *testing.T) {
	in := ExperienceMatch{RequiredYears: YearsOf(2.5), CandidateYears: Years{Text: "Not determined"}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"required_years":2.5,"candidate_years":"Not determined","match_percentage":0}`, string(data))
}

func TestDecodeMissingScoreIsZero(t *testing.T) {
	for _, raw := range []string{
		`{"matched_skills": ["Go"], "suggestions": []}`,
		`{"match_score": null}`,
	} {
		res, err := Decode([]byte(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, Score(0), res.MatchScore, raw)
		assert.Equal(t, []string{}, res.MissingSkills, raw)
	}
}

func TestScoreClamped(t *testing.T) {
	assert.Equal(t, 0, Score(-4).Clamped())
	assert.Equal(t, 100, Score(140).Clamped())
	assert.Equal(t, 55, Score(55).Clamped())

	tests := []struct {
		name    string
		raw     string
		clamped int
		wantErr bool
	}{
		{name: "huge number", raw: `1e30`, clamped: 100},
		{name: "huge negative", raw: `-1e30`, clamped: 0},
		{name: "huge string", raw: `"1e400"`, clamped: 100},
		{name: "tiny string", raw: `"1e-400"`, clamped: 0},
		{name: "percent string", raw: `"88.4%"`, clamped: 88},
		{name: "nan string", raw: `"NaN"`, wantErr: true},
		{name: "inf string", raw: `"Inf"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Score
			err := json.Unmarshal([]byte(tt.raw), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.clamped, s.Clamped())
		})
	}
}

func TestRecommendationKnown(t *testing.T) {
	assert.True(t, Recommendation(" strong_fit ").Known())
	assert.True(t, Recommendation("weak_fit").Known())
	assert.False(t, Recommendation("maybe").Known())
	assert.False(t, Recommendation("").Known())
}
