package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-scorer/internal/models"
	"alfredoptarigan/ats-scorer/internal/services"
)

type APIHandler struct {
	analyzer services.AnalyzerService
	provider string
}

func NewAPIHandler(analyzer services.AnalyzerService, provider string) *APIHandler {
	return &APIHandler{
		analyzer: analyzer,
		provider: provider,
	}
}

// HandleAnalyze handles POST /api/v1/analyze
func (h *APIHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalysisRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
			Kind:  "input",
		})
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), req)
	if err != nil {
		view := describeError(err)
		return c.Status(view.Status).JSON(view.response())
	}

	return c.JSON(models.AnalyzeResponse{
		ID:       analysis.ID.String(),
		Result:   analysis.Result,
		Raw:      analysis.Raw,
		Warnings: analysis.Warnings,
	})
}

// HandleHealth handles GET /api/v1/health
func (h *APIHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"provider": h.provider,
		"time":     time.Now(),
	})
}
