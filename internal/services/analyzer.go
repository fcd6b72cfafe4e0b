package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-scorer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error)
}

type analyzerService struct {
	completion    CompletionService
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewAnalyzerService(completion CompletionService, timeout time.Duration) AnalyzerService {
	return &analyzerService{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// ValidateRequest rejects requests that must not reach the network.
func ValidateRequest(req models.AnalysisRequest) error {
	resumeEmpty := strings.TrimSpace(req.ResumeText) == ""
	jobEmpty := strings.TrimSpace(req.JobDescriptionText) == ""

	switch {
	case resumeEmpty && jobEmpty:
		return &models.InputError{Field: "resume_text", Message: "Please provide both a resume and job description."}
	case resumeEmpty:
		return &models.InputError{Field: "resume_text", Message: "Please provide a resume."}
	case jobEmpty:
		return &models.InputError{Field: "job_description_text", Message: "Please provide a job description."}
	}
	return nil
}

// Analyze validates the inputs, issues one completion call and validates the
// payload. It returns *models.InputError, *models.CallFailure or
// *models.ParseError on failure.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildATSPrompt(req.ResumeText, req.JobDescriptionText)
	log.Printf("📝 ATS prompt length: %d characters", len(prompt))

	outcome := a.completion.Complete(ctx, prompt, ATSSystemMessage, a.timeout)
	if !outcome.Success() {
		log.Printf("❌ Completion failed (%s): %s", outcome.Failure.Kind, outcome.Failure.Message)
		return nil, outcome.Failure
	}
	log.Printf("✅ Completion received: %d characters", len(outcome.RawText))

	result, err := ParseResult(outcome.RawText)
	if err != nil {
		log.Printf("❌ Failed to parse completion payload: %v", err)
		return nil, err
	}

	analysis := &models.Analysis{
		ID:       uuid.New(),
		Raw:      outcome.RawText,
		Result:   *result,
		Warnings: resultWarnings(result),
	}
	for _, warning := range analysis.Warnings {
		log.Printf("⚠️  %s", warning)
	}

	return analysis, nil
}

// RestoreAnalysis rebuilds the analysis a session holds by re-parsing its
// raw text.
func RestoreAnalysis(sc models.SessionContext) (*models.Analysis, error) {
	if !sc.HasResult() {
		return nil, errors.New("session holds no result")
	}

	id, err := uuid.Parse(sc.AnalysisID)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis id in session: %w", err)
	}

	result, err := ParseResult(sc.RawResult)
	if err != nil {
		return nil, err
	}

	return &models.Analysis{
		ID:       id,
		Raw:      sc.RawResult,
		Result:   *result,
		Warnings: resultWarnings(result),
	}, nil
}

func resultWarnings(result *models.AnalysisResult) []string {
	if !result.ScoreOutOfRange() {
		return nil
	}
	return []string{
		fmt.Sprintf("The model returned a score of %d, outside the expected 0-100 range. It is shown unchanged.", result.OverallScore),
	}
}
