package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// Layout is the layout every page renders into.
const Layout = "layouts/main"

// PageData is passed to every page template.
type PageData struct {
	Title string

	// Flash messages
	Error   string
	Hint    string
	Warning string
	Success string
	Info    []string

	Form   FormValues
	Report *ReportView

	// Accept is the accept attribute of the upload inputs.
	Accept string
}

// FormValues keeps the submitted text so it survives a failed submission.
type FormValues struct {
	ResumeText         string
	JobDescriptionText string
}

// NewEngine returns the fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("lines", func(s string) []string {
		return strings.Split(strings.TrimSpace(s), "\n")
	})
	return engine
}
