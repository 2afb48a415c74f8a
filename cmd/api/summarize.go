package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"docsummary/internal/config"
	"docsummary/internal/extract"
	"docsummary/internal/logger"
	"docsummary/internal/service"
	"docsummary/internal/summarizer"
)

// errProcessFile marks a file that was read but could not be summarized.
var errProcessFile = errors.New("failed to process file")

type SummarizeCommand struct {
	File     string `arg:"" help:"Path of the PNG, JPEG, PDF or DOCX file to summarize." type:"existingfile"`
	MIMEType string `help:"Content type to send instead of the one implied by the extension." default:""`
}

func (c SummarizeCommand) Run(ctx context.Context) (err error) {
	cfg := config.Load()
	if err = cfg.Validate(); err != nil {
		return err
	}
	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel, cfg.Location())
	defer func() { _ = log.Sync() }()

	sum, err := summarizer.NewGeminiFromConfig(ctx, cfg.Gemini)
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %w", err)
	}
	return c.run(ctx, sum, log, os.Stdout)
}

func (c SummarizeCommand) run(ctx context.Context, sum summarizer.Summarizer, log *zap.Logger, w io.Writer) error {
	name := filepath.Base(c.File)
	if !extract.Allowed(name) {
		return extract.ErrUnsupportedType
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	req, err := service.NewUploadRequest(name, c.MIMEType, data)
	if err != nil {
		return err
	}

	svc := service.NewSummaryService(sum, nil, nil, log)
	summary, err := svc.Summarize(ctx, req)
	if err != nil {
		log.Error("summarize_failed", zap.String("file", c.File), zap.Error(err))
		return fmt.Errorf("%w: %w", errProcessFile, err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summary.Envelope()); err != nil {
		return err
	}
	if summary.Result.Failed() {
		return fmt.Errorf("summary failed: %s", summary.Result.Failure.Reason)
	}
	return nil
}

// userMessage renders err the way the upload endpoint words the same failure.
func userMessage(err error) string {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		return "File type not allowed"
	case errors.Is(err, service.ErrNoSelectedFile):
		return "No selected file"
	case errors.Is(err, errProcessFile):
		return "Failed to process file"
	default:
		return err.Error()
	}
}
