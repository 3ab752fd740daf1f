package client

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Response shapes the service must honor. Only what the client reads is
// required; extra fields pass.
const (
	healthSchemaJSON = `{
  "type": "object",
  "required": ["status"],
  "properties": {"status": {"type": "string"}}
}`

	jobsSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title"],
    "properties": {
      "id": {"type": "string"},
      "title": {"type": "string"}
    }
  }
}`

	recommendSchemaJSON = `{
  "type": "object",
  "required": ["results"],
  "properties": {
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["job_id", "title", "score", "why", "matched_skills"],
        "properties": {
          "job_id": {"type": "string"},
          "title": {"type": "string"},
          "score": {"type": "number"},
          "why": {"type": "string"},
          "matched_skills": {"type": "array", "items": {"type": "string"}},
          "key_terms_overlap": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "debug": {"type": ["object", "null"]}
  }
}`

	analyzeSchemaJSON = `{
  "type": "object",
  "required": ["suggestions"],
  "properties": {
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "message"],
        "properties": {
          "type": {"type": "string"},
          "message": {"type": "string"},
          "details": {"type": ["object", "null"]}
        }
      }
    },
    "detected_skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "missing_keywords": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`
)

var (
	healthSchema    = mustSchema(healthSchemaJSON)
	jobsSchema      = mustSchema(jobsSchemaJSON)
	recommendSchema = mustSchema(recommendSchemaJSON)
	analyzeSchema   = mustSchema(analyzeSchemaJSON)
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile response schema: %v", err))
	}
	return s
}

// checkShape validates body against schema. Invalid JSON and shape
// violations both come back as an error describing the problem.
func checkShape(schema *gojsonschema.Schema, body []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if !res.Valid() {
		errs := make([]string, len(res.Errors()))
		for i, desc := range res.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("unexpected response shape: %s", strings.Join(errs, "; "))
	}
	return nil
}
