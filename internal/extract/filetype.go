// Package extract decides how an upload is handled by type and pulls plain
// text out of document formats that can be parsed locally.
package extract

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// ErrUnsupportedType is returned for extensions outside the allowed set.
var ErrUnsupportedType = errors.New("file type not allowed")

// Placeholders stored in original_content for types sent to the summarizer as bytes.
const (
	PDFPlaceholder   = "[PDF Binary Data - Sent to AI for analysis]"
	ImagePlaceholder = "[Image Data - Sent to AI for analysis]"
)

const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeOctet = "application/octet-stream"
)

// allowed maps each accepted extension to the MIME type implied by it.
var allowed = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"pdf":  mimePDF,
	"docx": mimeDOCX,
}

// Extension returns the lower-cased text after the last dot of filename.
// The second result is false when filename has no dot.
func Extension(filename string) (string, bool) {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "", false
	}
	return strings.ToLower(filename[i+1:]), true
}

// Allowed reports whether filename carries one of png, jpg, jpeg, pdf or docx,
// compared case-insensitively.
func Allowed(filename string) bool {
	ext, ok := Extension(filename)
	if !ok {
		return false
	}
	_, ok = allowed[ext]
	return ok
}

// AllowedExtensions returns the accepted extensions, sorted, without dots.
func AllowedExtensions() []string {
	return slices.Sorted(maps.Keys(allowed))
}

// IsDocument reports whether ext is extracted locally instead of being
// forwarded as bytes.
func IsDocument(ext string) bool {
	return ext == "docx"
}

// ResolveMIME returns the declared type, or the type implied by ext when the
// client sent none or a generic one.
func ResolveMIME(declared, ext string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != mimeOctet {
		return declared
	}
	if m, ok := allowed[ext]; ok {
		return m
	}
	if declared == "" {
		return mimeOctet
	}
	return declared
}

// Placeholder returns the original_content text for a non-extracted upload.
func Placeholder(ext, mimeType string) string {
	if ext == "pdf" || mimeType == mimePDF {
		return PDFPlaceholder
	}
	return ImagePlaceholder
}
