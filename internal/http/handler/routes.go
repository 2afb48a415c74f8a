package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"docsummary/internal/service"
)

// Deps are the collaborators the routes are wired with.
type Deps struct {
	// DB is the audit database; nil disables /summaries and the health ping.
	DB             *sql.DB
	Summaries      service.SummaryService
	Gatherer       prometheus.Gatherer
	Log            *zap.Logger
	MaxUploadBytes int
	SwaggerEnabled bool
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/", Index(d.MaxUploadBytes))
	app.Post("/upload", UploadFile(d.Summaries, d.Log))

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", Metrics(d.Gatherer))
	}
	if d.DB != nil {
		app.Get("/summaries", ListSummaries(d.Summaries))
	}
	if d.SwaggerEnabled {
		app.Get("/swagger/*", Swagger())
	}
}
