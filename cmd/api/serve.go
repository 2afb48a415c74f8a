package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"docsummary/internal/config"
	"docsummary/internal/database"
	handlers "docsummary/internal/http/handler"
	"docsummary/internal/http/middleware"
	"docsummary/internal/logger"
	"docsummary/internal/otel"
	"docsummary/internal/repository"
	"docsummary/internal/repository/postgres"
	"docsummary/internal/service"
	"docsummary/internal/summarizer"
)

const shutdownTimeout = 10 * time.Second

type ServeCommand struct {
	Port string `help:"Override the listen port from PORT." default:""`
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	// Configuration comes from the environment (.env auto-loaded if present).
	cfg := config.Load()
	if c.Port != "" {
		cfg.Port = c.Port
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	loc := cfg.Location()
	log := logger.New(cfg.LogLevel, loc)
	defer func() { _ = log.Sync() }()

	if err = cfg.EnsureUploadDir(); err != nil {
		return err
	}

	shutdownTracing, err := otel.Init(ctx, Version, log)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	// Without DB_HOST the audit log is disabled and the service keeps no state.
	db, err := database.OpenAudit(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open audit database: %w", err)
	}
	var repo repository.SummaryRepository
	if db != nil {
		defer db.Close()
		repo = postgres.NewSummaryPostgres(db)
	}

	sum, err := summarizer.NewGeminiFromConfig(ctx, cfg.Gemini)
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	svc := service.NewSummaryService(sum, repo, metrics, log)

	app, err := newApp(cfg, log, reg, handlers.Deps{
		DB:             db,
		Summaries:      svc,
		Gatherer:       reg,
		Log:            log,
		MaxUploadBytes: cfg.MaxUploadBytes,
		SwaggerEnabled: cfg.SwaggerEnabled,
	})
	if err != nil {
		return err
	}

	return listen(ctx, app, net.JoinHostPort(cfg.AppHost, cfg.Port), log)
}

// newApp builds the Fiber app with global middleware and routes.
func newApp(cfg *config.AppConfig, log *zap.Logger, reg prometheus.Registerer, deps handlers.Deps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "docsummary " + Version,
		BodyLimit:             cfg.MaxUploadBytes,
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register http metrics: %w", err)
	}

	// RequestID adds/propagates X-Request-ID before anything logs it.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, deps)
	return app, nil
}

// listen serves until SIGINT/SIGTERM or ctx ends, then drains in-flight requests.
func listen(ctx context.Context, app *fiber.App, addr string, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Info("server_stopped")
	return nil
}
