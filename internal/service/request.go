package service

import (
	"errors"

	"docsummary/internal/extract"
	"docsummary/internal/model"
)

// ErrNoSelectedFile is returned when the upload carries an empty filename.
var ErrNoSelectedFile = errors.New("no selected file")

// NewUploadRequest validates a client filename and builds the request.
// The extension is taken from the raw name; the sanitized name is echoed back.
func NewUploadRequest(filename, mimeType string, data []byte) (model.UploadRequest, error) {
	if filename == "" {
		return model.UploadRequest{}, ErrNoSelectedFile
	}
	if !extract.Allowed(filename) {
		return model.UploadRequest{}, extract.ErrUnsupportedType
	}
	ext, _ := extract.Extension(filename)
	return model.UploadRequest{
		Filename:         extract.SecureFilename(filename),
		OriginalFilename: filename,
		Extension:        ext,
		MIMEType:         mimeType,
		Data:             data,
	}, nil
}
