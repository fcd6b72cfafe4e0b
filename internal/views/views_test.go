package views

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-scorer/internal/models"
)

func render(t *testing.T, data PageData) string {
	t.Helper()

	var out bytes.Buffer
	require.NoError(t, NewEngine().Render(&out, "index", data, Layout))
	return out.String()
}

func TestRenderEmptyState(t *testing.T) {
	page := render(t, PageData{Title: "ATS Score Calculator", Accept: ".pdf,.docx,.txt"})

	assert.Contains(t, page, "Calculate ATS Score")
	assert.Contains(t, page, "to see results here")
	assert.Contains(t, page, "This tool helps you optimize your resume")
	assert.NotContains(t, page, "Download Analysis")
}

func TestRenderReport(t *testing.T) {
	analysis := &models.Analysis{
		ID: uuid.New(),
		Result: models.AnalysisResult{
			OverallScore:       90,
			Analysis:           "Strong match",
			MatchingSkills:     []string{"Python", "<AWS>"},
			MissingSkills:      []string{},
			ImprovementSummary: "Mention Terraform",
		},
	}

	page := render(t, PageData{Title: "ATS Score Calculator", Report: NewReportView(analysis)})

	assert.Contains(t, page, "90/100")
	assert.Contains(t, page, "Excellent match!")
	assert.Contains(t, page, "#4CAF50")
	assert.Contains(t, page, "<li>Python</li>")
	assert.Contains(t, page, "&lt;AWS&gt;")
	assert.Contains(t, page, "No missing skills identified.")
	assert.NotContains(t, page, "No matching skills found.")
	assert.Contains(t, page, "Mention Terraform")
	assert.Contains(t, page, "/download/"+analysis.ID.String())
}

func TestRenderErrorWithHint(t *testing.T) {
	page := render(t, PageData{
		Error: "Timeout Error: the request took too long",
		Hint:  "Please try again in a few minutes.",
		Form:  FormValues{ResumeText: "kept resume"},
	})

	assert.Contains(t, page, "Timeout Error")
	assert.Contains(t, page, "Please try again in a few minutes.")
	assert.Contains(t, page, "kept resume")
}
