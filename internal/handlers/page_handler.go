package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-scorer/internal/models"
	"alfredoptarigan/ats-scorer/internal/services"
	"alfredoptarigan/ats-scorer/internal/views"
)

const pageTitle = "ATS Score Calculator"

type PageHandler struct {
	analyzer services.AnalyzerService
	uploads  *UploadHandler
	sessions *SessionSlot
}

func NewPageHandler(
	analyzer services.AnalyzerService,
	uploads *UploadHandler,
	sessions *SessionSlot,
) *PageHandler {
	return &PageHandler{
		analyzer: analyzer,
		uploads:  uploads,
		sessions: sessions,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	data := newPageData()

	_, sc, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	if sc.HasResult() {
		analysis, err := services.RestoreAnalysis(sc)
		if err != nil {
			log.Printf("⚠️  Failed to restore %s: %v", sc, err)
			view := describeError(err)
			data.Error = view.Message
			data.Hint = view.Hint
		} else {
			data.Report = views.NewReportView(analysis)
		}
	}

	return c.Render("index", data, views.Layout)
}

// HandleAnalyze handles POST /analyze
func (h *PageHandler) HandleAnalyze(c *fiber.Ctx) error {
	data := newPageData()
	req := models.AnalysisRequest{
		ResumeText:         c.FormValue("resume_text"),
		JobDescriptionText: c.FormValue("job_description_text"),
	}

	uploads, err := h.uploads.extract(c)
	if err != nil {
		data.Form = formValues(req)
		data.Error = err.Error()
		return c.Status(fiber.StatusBadRequest).Render("index", data, views.Layout)
	}
	data.Info, data.Warning = applyUploads(uploads, &req)
	data.Form = formValues(req)

	sess, _, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	sessionID := sess.ID()
	if !h.sessions.Acquire(sessionID) {
		data.Error = "An analysis is already running for this session. Please wait for it to finish."
		return c.Status(fiber.StatusTooManyRequests).Render("index", data, views.Layout)
	}
	defer h.sessions.Release(sessionID)

	analysis, err := h.analyzer.Analyze(c.UserContext(), req)
	if err != nil {
		view := describeError(err)
		data.Error = view.Message
		data.Hint = view.Hint
		return c.Status(view.Status).Render("index", data, views.Layout)
	}

	if err := h.sessions.Save(sess, analysis); err != nil {
		log.Printf("❌ %v", err)
		return err
	}

	data.Success = "Analysis completed successfully!"
	data.Report = views.NewReportView(analysis)
	return c.Render("index", data, views.Layout)
}

// applyUploads fills empty text areas from the extracted uploads. A text area
// that already holds text wins over its upload.
func applyUploads(uploads []models.UploadResponse, req *models.AnalysisRequest) (info []string, warning string) {
	var ignored []string

	for _, upload := range uploads {
		target := &req.ResumeText
		if upload.Field == FieldJobFile {
			target = &req.JobDescriptionText
		}

		if strings.TrimSpace(*target) != "" {
			ignored = append(ignored, upload.Filename)
			continue
		}

		*target = upload.Text
		info = append(info, fmt.Sprintf("Text extracted from %s (%d characters).", upload.Filename, upload.Characters))
	}

	if len(ignored) > 0 {
		warning = fmt.Sprintf("The text area was already filled, so %s was not used.", strings.Join(ignored, ", "))
	}
	return info, warning
}

func newPageData() views.PageData {
	return views.PageData{
		Title:  pageTitle,
		Accept: strings.Join(services.SupportedUploadExtensions, ","),
	}
}

func formValues(req models.AnalysisRequest) views.FormValues {
	return views.FormValues{
		ResumeText:         req.ResumeText,
		JobDescriptionText: req.JobDescriptionText,
	}
}
