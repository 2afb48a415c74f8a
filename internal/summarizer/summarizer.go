// Package summarizer is the boundary to the external generative AI service.
package summarizer

import (
	"context"
	"errors"
)

// Prompt is sent with every request.
const Prompt = "Provide a comprehensive summary of this file. " +
	"Describe what kind of file it is and its main contents. " +
	"If it contains data or text, summarize the key points."

var (
	// ErrEmptyResponse is returned when the model answers without any candidate.
	ErrEmptyResponse = errors.New("model returned no content")
	// ErrNoData is returned when a file payload is empty.
	ErrNoData = errors.New("file payload is empty")
)

// Summarizer produces a natural-language summary of a file.
type Summarizer interface {
	// SummarizeText summarizes locally extracted document text.
	SummarizeText(ctx context.Context, text string) (string, error)

	// SummarizeFile summarizes raw file bytes of the given MIME type.
	SummarizeFile(ctx context.Context, data []byte, mimeType string) (string, error)
}
