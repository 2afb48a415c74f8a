package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Client-facing error messages.
const (
	msgNoFilePart      = "No file part"
	msgNoSelectedFile  = "No selected file"
	msgTypeNotAllowed  = "File type not allowed"
	msgFileTooLarge    = "File too large"
	msgProcessFailed   = "Failed to process file"
	msgInternal        = "Internal Server Error"
	msgUnavailable     = "dependency unavailable"
	msgInvalidLimit    = "invalid limit"
	msgInvalidOffset   = "invalid offset"
	msgAuditNotEnabled = "summary audit log is disabled"
)

// errorPayload is the JSON body of every error response.
type errorPayload struct {
	Error string `json:"error"`
}

// writeError writes {"error": message} with the given status.
// The message must be safe to show; internal errors are logged, not returned.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// ErrorHandler returns the Fiber global error handler. Framework errors keep
// their status and message, oversized bodies get the upload message, and
// anything else is logged and hidden behind a generic 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.Error("unhandled_error",
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return writeError(c, fiber.StatusInternalServerError, msgInternal)
		}

		switch {
		case fe.Code == fiber.StatusRequestEntityTooLarge:
			return writeError(c, fe.Code, msgFileTooLarge)
		case fe.Code >= fiber.StatusInternalServerError:
			return writeError(c, fe.Code, msgInternal)
		default:
			return writeError(c, fe.Code, fe.Message)
		}
	}
}
