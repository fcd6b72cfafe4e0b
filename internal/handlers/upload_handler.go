package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-scorer/internal/models"
	"alfredoptarigan/ats-scorer/internal/services"
)

// Multipart fields accepted by the form and the upload endpoint.
const (
	FieldResumeFile = "resume_file"
	FieldJobFile    = "job_file"
)

type UploadHandler struct {
	extractor services.TextExtractor
}

func NewUploadHandler(extractor services.TextExtractor) *UploadHandler {
	return &UploadHandler{
		extractor: extractor,
	}
}

// HandleUpload handles POST /api/v1/upload. Nothing is stored; the extracted
// text is returned to the caller.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	if !isMultipart(c) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to parse multipart form",
			Kind:  "input",
		})
	}

	uploads, err := h.extract(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
			Kind:  "input",
		})
	}

	if len(uploads) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("No valid files uploaded. Please upload '%s' and/or '%s' as %s files.",
				FieldResumeFile, FieldJobFile, strings.Join(services.SupportedUploadExtensions, ", ")),
			Kind: "input",
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Files extracted successfully",
		"documents": uploads,
	})
}

// extract returns the text of every non-empty upload field in the request.
// Requests that are not multipart carry no uploads.
func (h *UploadHandler) extract(c *fiber.Ctx) ([]models.UploadResponse, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	var uploads []models.UploadResponse
	for _, field := range []string{FieldResumeFile, FieldJobFile} {
		files, exists := form.File[field]
		if !exists || len(files) == 0 || files[0].Filename == "" {
			continue
		}
		file := files[0]

		text, err := h.extractor.ExtractUpload(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", uploadLabel(field), err)
		}

		uploads = append(uploads, models.UploadResponse{
			Field:      field,
			Filename:   file.Filename,
			Text:       text,
			Characters: utf8.RuneCountInString(text),
		})
	}

	return uploads, nil
}

func uploadLabel(field string) string {
	if field == FieldJobFile {
		return "Job description file"
	}
	return "Resume file"
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}
