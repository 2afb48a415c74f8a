package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docsummary/internal/extract"
	"docsummary/internal/model"
	"docsummary/internal/service"
	sumMocks "docsummary/internal/summarizer/mocks"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestSummarizeCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("prints the response envelope", func(t *testing.T) {
		data := []byte("%PDF-1.7")
		m := new(sumMocks.MockSummarizer)
		m.On("SummarizeFile", mock.Anything, data, "application/pdf").Return("A quarterly report.", nil)

		var out bytes.Buffer
		cmd := SummarizeCommand{File: writeTemp(t, "Q3 report.pdf", data)}
		err := cmd.run(ctx, m, zap.NewNop(), &out)

		require.NoError(t, err)
		var got model.ResponseEnvelope
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, model.ResponseEnvelope{
			Filename:        "Q3_report.pdf",
			Summary:         "A quarterly report.",
			OriginalContent: extract.PDFPlaceholder,
		}, got)
		m.AssertExpectations(t)
	})

	t.Run("mime override", func(t *testing.T) {
		data := []byte{0xff, 0xd8}
		m := new(sumMocks.MockSummarizer)
		m.On("SummarizeFile", mock.Anything, data, "image/webp").Return("ok", nil)

		cmd := SummarizeCommand{File: writeTemp(t, "photo.jpg", data), MIMEType: "image/webp"}
		require.NoError(t, cmd.run(ctx, m, zap.NewNop(), &bytes.Buffer{}))
		m.AssertExpectations(t)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		m := new(sumMocks.MockSummarizer)
		cmd := SummarizeCommand{File: writeTemp(t, "notes.txt", []byte("hi"))}

		err := cmd.run(ctx, m, zap.NewNop(), &bytes.Buffer{})

		assert.ErrorIs(t, err, extract.ErrUnsupportedType)
		assert.Equal(t, "File type not allowed", userMessage(err))
		m.AssertNotCalled(t, "SummarizeFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("corrupt document", func(t *testing.T) {
		m := new(sumMocks.MockSummarizer)
		cmd := SummarizeCommand{File: writeTemp(t, "broken.docx", []byte("not a zip"))}

		err := cmd.run(ctx, m, zap.NewNop(), &bytes.Buffer{})

		assert.ErrorIs(t, err, errProcessFile)
		assert.ErrorIs(t, err, service.ErrExtraction)
		assert.Equal(t, "Failed to process file", userMessage(err))
	})

	t.Run("failed summary still prints and exits non-zero", func(t *testing.T) {
		m := new(sumMocks.MockSummarizer)
		m.On("SummarizeFile", mock.Anything, mock.Anything, "image/png").Return("", errors.New("quota exceeded"))

		var out bytes.Buffer
		cmd := SummarizeCommand{File: writeTemp(t, "cat.png", []byte("png"))}
		err := cmd.run(ctx, m, zap.NewNop(), &out)

		assert.EqualError(t, err, "summary failed: quota exceeded")
		assert.Equal(t, "summary failed: quota exceeded", userMessage(err))
		assert.Contains(t, out.String(), `"summary": "Error generating summary: quota exceeded"`)
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unsupported type", err: extract.ErrUnsupportedType, want: "File type not allowed"},
		{name: "empty filename", err: service.ErrNoSelectedFile, want: "No selected file"},
		{name: "wrapped processing error", err: fmt.Errorf("%w: %w", errProcessFile, errors.New("bad zip")), want: "Failed to process file"},
		{name: "other", err: errors.New("GEMINI_API_KEY is required"), want: "GEMINI_API_KEY is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
