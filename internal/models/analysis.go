package models

import (
	"fmt"

	"github.com/google/uuid"
)

// AnalysisRequest holds the two free-text inputs of one analysis.
type AnalysisRequest struct {
	ResumeText         string `json:"resume_text" form:"resume_text"`
	JobDescriptionText string `json:"job_description_text" form:"job_description_text"`
}

// AnalysisResult is the model's JSON answer after validation.
type AnalysisResult struct {
	OverallScore       int      `json:"overall_score"`
	Analysis           string   `json:"analysis"`
	MatchingSkills     []string `json:"matching_skills"`
	MissingSkills      []string `json:"missing_skills"`
	ImprovementSummary string   `json:"improvement_summary"`
}

// ScoreOutOfRange reports a score the model returned outside [0,100].
// Such scores are kept as-is.
func (r *AnalysisResult) ScoreOutOfRange() bool {
	return r.OverallScore < 0 || r.OverallScore > 100
}

// Analysis is what one successful run of the pipeline produces. Raw is the
// completion text exactly as returned and is the downloadable artifact.
type Analysis struct {
	ID       uuid.UUID
	Raw      string
	Result   AnalysisResult
	Warnings []string
}

// CallOutcome is the result of one completion call: RawText on success,
// Failure otherwise.
type CallOutcome struct {
	RawText string
	Failure *CallFailure
}

func (o CallOutcome) Success() bool {
	return o.Failure == nil
}

func SuccessOutcome(raw string) CallOutcome {
	return CallOutcome{RawText: raw}
}

func FailureOutcome(kind ErrorKind, message string) CallOutcome {
	return CallOutcome{Failure: &CallFailure{Kind: kind, Message: message}}
}

// SessionContext is the state a browser session carries between requests:
// the most recent successful analysis, overwritten by each new one.
type SessionContext struct {
	AnalysisID string
	RawResult  string
}

func (s SessionContext) HasResult() bool {
	return s.AnalysisID != "" && s.RawResult != ""
}

func (s SessionContext) String() string {
	return fmt.Sprintf("session result %s (%d bytes)", s.AnalysisID, len(s.RawResult))
}
