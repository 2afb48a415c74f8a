package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"docsummary/internal/extract"
	"docsummary/internal/model"
	"docsummary/internal/repository"
	"docsummary/internal/summarizer"
)

var (
	// ErrExtraction wraps failures to read text out of an uploaded document.
	ErrExtraction = errors.New("failed to extract document text")
	// ErrAuditDisabled is returned by List when no repository is configured.
	ErrAuditDisabled = errors.New("summary audit log is disabled")
)

// Upload kinds used as metric labels.
const (
	KindDocument = "document"
	KindPDF      = "pdf"
	KindImage    = "image"
)

// SummaryListResult is the service-level DTO for paginated audit records.
type SummaryListResult struct {
	Items []model.SummaryRecord `json:"data"`
	Total int                   `json:"total"`
}

// SummaryService defines the upload-and-summarize use case.
type SummaryService interface {
	// Summarize dispatches req by extension, calls the summarizer and returns
	// the typed result. Summarizer failures are part of the result, not an error.
	// An error is returned only when a document cannot be read locally.
	Summarize(ctx context.Context, req model.UploadRequest) (*model.Summary, error)

	// List returns audit records newest first.
	List(ctx context.Context, limit, offset int) (*SummaryListResult, error)
}

type summaryService struct {
	summarizer summarizer.Summarizer
	repo       repository.SummaryRepository
	metrics    *Metrics
	log        *zap.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// NewSummaryService constructs a SummaryService. repo and metrics may be nil.
func NewSummaryService(sum summarizer.Summarizer, repo repository.SummaryRepository, metrics *Metrics, log *zap.Logger) SummaryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &summaryService{
		summarizer: sum,
		repo:       repo,
		metrics:    metrics,
		log:        log,
		tracer:     otel.Tracer("docsummary/internal/service"),
		now:        time.Now,
	}
}

func (s *summaryService) Summarize(ctx context.Context, req model.UploadRequest) (*model.Summary, error) {
	mimeType := extract.ResolveMIME(req.MIMEType, req.Extension)
	kind := kindOf(req.Extension, req.MIMEType)

	ctx, span := s.tracer.Start(ctx, "SummaryService.Summarize", trace.WithAttributes(
		attribute.String("file.extension", req.Extension),
		attribute.String("file.mime_type", mimeType),
		attribute.Int64("file.size", req.Size()),
		attribute.String("summary.kind", kind),
	))
	defer span.End()

	var (
		content string
		text    string
		err     error
	)
	start := s.now()
	if kind == KindDocument {
		content, err = extract.DocxText(bytes.NewReader(req.Data), req.Size())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "extraction failed")
			return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
		}
		start = s.now()
		text, err = s.summarizer.SummarizeText(ctx, content)
	} else {
		content = extract.Placeholder(req.Extension, req.MIMEType)
		text, err = s.summarizer.SummarizeFile(ctx, req.Data, mimeType)
	}
	latency := s.now().Sub(start)

	result := model.Succeeded(text)
	outcome := model.OutcomeOK
	if err != nil {
		result = model.Failed(err)
		outcome = model.OutcomeFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, "summarizer failed")
		s.log.Warn("summary_failed",
			zap.String("filename", req.Filename),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
	span.SetAttributes(attribute.String("summary.outcome", outcome))
	s.metrics.observe(kind, outcome, latency)
	s.record(ctx, req, mimeType, result, latency)

	return &model.Summary{
		Filename:        req.Filename,
		Result:          result,
		OriginalContent: content,
	}, nil
}

// record writes the audit row. Failures are logged and never surface.
func (s *summaryService) record(ctx context.Context, req model.UploadRequest, mimeType string, result model.SummaryResult, latency time.Duration) {
	if s.repo == nil {
		return
	}
	rec := &model.SummaryRecord{
		ID:          uuid.NewString(),
		Filename:    req.Filename,
		Extension:   req.Extension,
		ContentType: mimeType,
		Size:        req.Size(),
		Outcome:     model.OutcomeOK,
		LatencyMs:   latency.Milliseconds(),
		CreatedAt:   s.now().UTC(),
	}
	if result.Failed() {
		rec.Outcome = model.OutcomeFailed
		rec.FailureReason = result.Failure.Reason
	}
	// The response is already decided; a disconnecting client must not drop the row.
	if _, err := s.repo.Create(context.WithoutCancel(ctx), rec); err != nil {
		s.log.Error("summary_audit_failed", zap.String("filename", req.Filename), zap.Error(err))
	}
}

// List returns paginated audit records without exposing repository types.
func (s *summaryService) List(ctx context.Context, limit, offset int) (*SummaryListResult, error) {
	if s.repo == nil {
		return nil, ErrAuditDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SummaryListResult{Items: res.Items, Total: res.Total}, nil
}

func kindOf(ext, declaredMIME string) string {
	switch {
	case extract.IsDocument(ext):
		return KindDocument
	case extract.Placeholder(ext, declaredMIME) == extract.PDFPlaceholder:
		return KindPDF
	default:
		return KindImage
	}
}
