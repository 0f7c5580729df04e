package analysis

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const resultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "match_score": {"type": ["number", "string", "null"]},
    "matched_skills": {"$ref": "#/definitions/stringList"},
    "missing_skills": {"$ref": "#/definitions/stringList"},
    "matched_keywords": {"$ref": "#/definitions/stringList"},
    "missing_keywords": {"$ref": "#/definitions/stringList"},
    "ats_issues": {"$ref": "#/definitions/stringList"},
    "missing_sections": {"$ref": "#/definitions/stringList"},
    "strengths": {"$ref": "#/definitions/stringList"},
    "weaknesses": {"$ref": "#/definitions/stringList"},
    "suggestions": {"$ref": "#/definitions/stringList"},
    "overall_assessment": {"type": ["string", "null"]},
    "recommendation": {"type": ["string", "null"]},
    "experience_match": {
      "type": ["object", "null"],
      "properties": {
        "required_years": {"type": ["number", "string", "null"]},
        "candidate_years": {"type": ["number", "string", "null"]},
        "match_percentage": {"type": ["number", "string", "null"]}
      }
    },
    "education_match": {
      "type": ["object", "null"],
      "properties": {
        "required": {"type": ["string", "null"]},
        "candidate": {"type": ["string", "null"]},
        "match": {"type": ["boolean", "null"]}
      }
    }
  },
  "definitions": {
    "stringList": {
      "type": ["array", "null"],
      "items": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(resultSchema)

// SchemaError lists the shape violations of an analysis payload.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "analysis schema mismatch: " + strings.Join(e.Violations, "; ")
}

func (e *SchemaError) Unwrap() error {
	return ErrInvalidResult
}

// ValidateShape checks raw against the analysis JSON schema.
func ValidateShape(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	if res.Valid() {
		return nil
	}
	out := &SchemaError{}
	for _, e := range res.Errors() {
		out.Violations = append(out.Violations, e.Field()+": "+e.Description())
	}
	return out
}
