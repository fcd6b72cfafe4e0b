package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"alfredoptarigan/ats-scorer/internal/models"
)

var resultSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"overall_score": map[string]interface{}{
			"anyOf": []interface{}{
				map[string]interface{}{"type": "number"},
				map[string]interface{}{"type": "string", "pattern": `^\s*-?[0-9]+(\.[0-9]+)?\s*$`},
			},
		},
		"analysis": map[string]interface{}{"type": "string"},
		"matching_skills": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"missing_skills": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"improvement_summary": map[string]interface{}{"type": "string"},
	},
	"required":             OutputKeys,
	"additionalProperties": false,
}

var resultJSONSchema = mustCompileSchema(resultSchema)

func mustCompileSchema(schema map[string]interface{}) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid result schema: %v", err))
	}
	return compiled
}

// ParseResult validates a completion payload against the result contract.
// Every key in OutputKeys must be present and no other key may appear.
// Errors are always *models.ParseError.
func ParseResult(raw string) (*models.AnalysisResult, error) {
	var fields map[string]json.RawMessage
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformed, Detail: err.Error()}
	}
	if fields == nil {
		return nil, &models.ParseError{Kind: models.ParseMalformed, Detail: "payload is null"}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &models.ParseError{Kind: models.ParseMalformed, Detail: "trailing data after JSON object"}
	}

	for _, key := range OutputKeys {
		if _, ok := fields[key]; !ok {
			return nil, &models.ParseError{Kind: models.ParseMissingField, Field: key}
		}
	}

	if extra := unexpectedKeys(fields); len(extra) > 0 {
		return nil, &models.ParseError{Kind: models.ParseUnexpectedField, Field: extra[0]}
	}

	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	score, err := coerceScore(fields["overall_score"])
	if err != nil {
		return nil, &models.ParseError{Kind: models.ParseInvalidField, Field: "overall_score", Detail: err.Error()}
	}
	result.OverallScore = score

	targets := map[string]interface{}{
		"analysis":            &result.Analysis,
		"matching_skills":     &result.MatchingSkills,
		"missing_skills":      &result.MissingSkills,
		"improvement_summary": &result.ImprovementSummary,
	}
	for key, target := range targets {
		if err := json.Unmarshal(fields[key], target); err != nil {
			return nil, &models.ParseError{Kind: models.ParseInvalidField, Field: key, Detail: err.Error()}
		}
	}

	return &result, nil
}

func unexpectedKeys(fields map[string]json.RawMessage) []string {
	allowed := make(map[string]bool, len(OutputKeys))
	for _, key := range OutputKeys {
		allowed[key] = true
	}

	var extra []string
	for key := range fields {
		if !allowed[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

func validateShape(raw string) error {
	result, err := resultJSONSchema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return &models.ParseError{Kind: models.ParseMalformed, Detail: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	// Report the first offending key in contract order so the error is stable.
	byField := make(map[string]string)
	for _, desc := range result.Errors() {
		field := desc.Field()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[:i]
		}
		if _, seen := byField[field]; !seen {
			byField[field] = desc.Description()
		}
	}
	for _, key := range OutputKeys {
		if detail, ok := byField[key]; ok {
			return &models.ParseError{Kind: models.ParseInvalidField, Field: key, Detail: detail}
		}
	}

	first := result.Errors()[0]
	return &models.ParseError{Kind: models.ParseInvalidField, Field: first.Field(), Detail: first.Description()}
}

// coerceScore accepts a JSON number or a numeric string and truncates
// fractions toward zero.
func coerceScore(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)

	var text string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
	} else {
		text = string(raw)
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	// Same bound as the integer path: anything that fits an int passes through.
	if math.IsNaN(f) || f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%q is not a usable score", text)
	}
	return int(math.Trunc(f)), nil
}
