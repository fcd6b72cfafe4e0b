package handlers

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Page     *PageHandler
	Download *DownloadHandler
	Upload   *UploadHandler
	API      *APIHandler
}

// Register mounts every route on app.
func Register(app *fiber.App, h Handlers) {
	app.Get("/", h.Page.HandleIndex)
	app.Post("/analyze", h.Page.HandleAnalyze)
	app.Get("/download/:id", h.Download.HandleDownload)

	api := app.Group("/api/v1")
	api.Get("/health", h.API.HandleHealth)
	api.Post("/analyze", h.API.HandleAnalyze)
	api.Post("/upload", h.Upload.HandleUpload)
}
