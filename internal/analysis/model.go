package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is the structured analysis returned by the analysis API.
// It is treated as immutable once decoded; every display value is derived from it.
type Result struct {
	MatchScore        Score           `json:"match_score"`
	MatchedSkills     []string        `json:"matched_skills"`
	MissingSkills     []string        `json:"missing_skills"`
	MatchedKeywords   []string        `json:"matched_keywords"`
	MissingKeywords   []string        `json:"missing_keywords"`
	ATSIssues         []string        `json:"ats_issues"`
	MissingSections   []string        `json:"missing_sections"`
	ExperienceMatch   ExperienceMatch `json:"experience_match"`
	EducationMatch    EducationMatch  `json:"education_match"`
	Strengths         []string        `json:"strengths"`
	Weaknesses        []string        `json:"weaknesses"`
	Suggestions       []string        `json:"suggestions"`
	OverallAssessment string          `json:"overall_assessment"`
	Recommendation    Recommendation  `json:"recommendation"`
}

type ExperienceMatch struct {
	RequiredYears   Years `json:"required_years"`
	CandidateYears  Years `json:"candidate_years"`
	MatchPercentage Score `json:"match_percentage"`
}

type EducationMatch struct {
	Required  string `json:"required"`
	Candidate string `json:"candidate"`
	Match     bool   `json:"match"`
}

// Envelope is the response body of POST /analyze.
type Envelope struct {
	Success  bool            `json:"success"`
	Analysis json.RawMessage `json:"analysis,omitempty"`
	Error    string          `json:"error,omitempty"`
	Filename string          `json:"filename,omitempty"`
}

// Score is an integer percentage. It accepts JSON numbers (rounded) and numeric strings.
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
		if raw == "" {
			*s = 0
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				return fmt.Errorf("score %q: %w", raw, err)
			}
			// Overflow parses to a signed infinity, underflow to zero.
			if math.IsInf(f, 0) {
				f = math.Copysign(scoreLimit, f)
			}
		}
		return s.set(f)
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	return s.set(f)
}

// scoreLimit bounds decoded scores so the int conversion cannot overflow.
const scoreLimit = 1e6

func (s *Score) set(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("score %v: not a finite number", f)
	}
	*s = Score(math.Round(math.Max(-scoreLimit, math.Min(scoreLimit, f))))
	return nil
}

// Clamped returns the score bounded to 0..100 for display.
func (s Score) Clamped() int {
	switch {
	case s < 0:
		return 0
	case s > 100:
		return 100
	default:
		return int(s)
	}
}

// Years holds an experience figure that the API sends either as a number or as text
// such as "Not specified".
type Years struct {
	Number *float64
	Text   string
}

// YearsOf returns a numeric Years value.
func YearsOf(n float64) Years {
	return Years{Number: &n}
}

func (y *Years) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*y = Years{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &y.Text)
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("years: %w", err)
	}
	y.Number = &f
	return nil
}

func (y Years) MarshalJSON() ([]byte, error) {
	switch {
	case y.Number != nil:
		return json.Marshal(*y.Number)
	case y.Text != "":
		return json.Marshal(y.Text)
	default:
		return []byte("null"), nil
	}
}

// IsZero reports whether no value was provided.
func (y Years) IsZero() bool {
	return y.Number == nil && strings.TrimSpace(y.Text) == ""
}

func (y Years) String() string {
	if y.Number != nil {
		return strconv.FormatFloat(*y.Number, 'f', -1, 64)
	}
	return strings.TrimSpace(y.Text)
}

// Recommendation is the hiring verdict label.
type Recommendation string

const (
	StrongFit Recommendation = "STRONG_FIT"
	Consider  Recommendation = "CONSIDER"
	WeakFit   Recommendation = "WEAK_FIT"
)

// Normalize upper-cases the label so comparisons are case-insensitive.
func (r Recommendation) Normalize() Recommendation {
	return Recommendation(strings.ToUpper(strings.TrimSpace(string(r))))
}

// Known reports whether r is one of the three recognized labels.
func (r Recommendation) Known() bool {
	switch r.Normalize() {
	case StrongFit, Consider, WeakFit:
		return true
	}
	return false
}
