package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DownloadFilename is the name of the downloaded artifact.
const DownloadFilename = "ats_analysis.json"

type DownloadHandler struct {
	sessions *SessionSlot
}

func NewDownloadHandler(sessions *SessionSlot) *DownloadHandler {
	return &DownloadHandler{
		sessions: sessions,
	}
}

// HandleDownload handles GET /download/:id. The body is the completion text
// exactly as the model returned it.
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
	idParam := c.Params("id")
	if _, err := uuid.Parse(idParam); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	_, sc, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	// Only the session that produced the analysis may download it.
	if !sc.HasResult() || sc.AnalysisID != idParam {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	c.Attachment(DownloadFilename)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(sc.RawResult)
}
