package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidResult = errors.New("invalid analysis result")

// Decode validates raw against the schema and decodes it into a Result.
// Missing list fields decode to empty slices.
func Decode(raw []byte) (Result, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Result{}, fmt.Errorf("%w: empty payload", ErrInvalidResult)
	}
	if err := ValidateShape(raw); err != nil {
		return Result{}, err
	}
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return res.withEmptyLists(), nil
}

func (r Result) withEmptyLists() Result {
	for _, list := range []*[]string{
		&r.MatchedSkills, &r.MissingSkills,
		&r.MatchedKeywords, &r.MissingKeywords,
		&r.ATSIssues, &r.MissingSections,
		&r.Strengths, &r.Weaknesses, &r.Suggestions,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
	return r
}
