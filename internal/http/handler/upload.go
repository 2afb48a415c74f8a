package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docsummary/internal/extract"
	"docsummary/internal/http/middleware"
	"docsummary/internal/model"
	"docsummary/internal/service"
)

const (
	formField = "file"

	// SummaryStatusHeader tells clients whether the summary field holds model
	// output or an inline error message.
	SummaryStatusHeader = "X-Summary-Status"
)

// UploadFile godoc
// @Summary      Summarize an uploaded file
// @Description  Accepts one PNG, JPEG, PDF or DOCX file and returns an AI generated summary.
// @Tags         summaries
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to summarize"
// @Success      200  {object}  model.ResponseEnvelope
// @Failure      400  {object}  errorPayload
// @Failure      413  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /upload [post]
func UploadFile(svc service.SummaryService, log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, msgNoFilePart)
		}

		files := form.File[formField]
		if len(files) == 0 {
			// A part with an empty filename is parsed as a plain form value.
			if _, ok := form.Value[formField]; ok {
				return writeError(c, fiber.StatusBadRequest, msgNoSelectedFile)
			}
			return writeError(c, fiber.StatusBadRequest, msgNoFilePart)
		}
		fh := files[0]

		// Validate the name before reading the payload.
		if _, err := service.NewUploadRequest(fh.Filename, "", nil); err != nil {
			return writeUploadError(c, err)
		}

		f, err := fh.Open()
		if err != nil {
			log.Error("upload_open_failed", zap.String("request_id", requestID(c)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, msgProcessFailed)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			log.Error("upload_read_failed", zap.String("request_id", requestID(c)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, msgProcessFailed)
		}

		req, err := service.NewUploadRequest(fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
		if err != nil {
			return writeUploadError(c, err)
		}

		summary, err := svc.Summarize(c.UserContext(), req)
		if err != nil {
			log.Error("summarize_failed",
				zap.String("request_id", requestID(c)),
				zap.String("filename", req.Filename),
				zap.Error(err),
			)
			return writeError(c, fiber.StatusInternalServerError, msgProcessFailed)
		}

		status := model.OutcomeOK
		if summary.Result.Failed() {
			status = model.OutcomeFailed
		}
		c.Set(SummaryStatusHeader, status)
		return c.JSON(summary.Envelope())
	}
}

func writeUploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoSelectedFile):
		return writeError(c, fiber.StatusBadRequest, msgNoSelectedFile)
	case errors.Is(err, extract.ErrUnsupportedType):
		return writeError(c, fiber.StatusBadRequest, msgTypeNotAllowed)
	default:
		return writeError(c, fiber.StatusBadRequest, msgNoFilePart)
	}
}

func requestID(c *fiber.Ctx) string {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return rid
}
