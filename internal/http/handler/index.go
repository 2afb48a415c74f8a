package handler

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"

	"docsummary/internal/extract"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	Accept      string
	MaxUploadMB int
}

// Index renders the upload page once and serves the cached bytes.
func Index(maxUploadBytes int) fiber.Handler {
	exts := extract.AllowedExtensions()
	for i, e := range exts {
		exts[i] = "." + e
	}

	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexData{
		Accept:      strings.Join(exts, ","),
		MaxUploadMB: maxUploadBytes >> 20,
	})
	page := buf.Bytes()

	return func(c *fiber.Ctx) error {
		if err != nil {
			return err
		}
		c.Type("html", "utf-8")
		return c.Send(page)
	}
}
