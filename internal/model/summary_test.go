package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryResult(t *testing.T) {
	ok := Succeeded("a summary")
	assert.False(t, ok.Failed())
	assert.Equal(t, "a summary", ok.Render())

	bad := Failed(errors.New("quota exceeded"))
	assert.True(t, bad.Failed())
	assert.Equal(t, "Error generating summary: quota exceeded", bad.Render())
}

func TestSummaryEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    ResponseEnvelope
	}{
		{
			name:    "extracted text",
			summary: Summary{Filename: "a.docx", Result: Succeeded("s"), OriginalContent: "Hello"},
			want:    ResponseEnvelope{Filename: "a.docx", Summary: "s", OriginalContent: "Hello"},
		},
		{
			name:    "empty content falls back",
			summary: Summary{Filename: "a.docx", Result: Succeeded("s")},
			want:    ResponseEnvelope{Filename: "a.docx", Summary: "s", OriginalContent: FallbackContent},
		},
		{
			name:    "failure rendered inline",
			summary: Summary{Filename: "a.png", Result: Failed(errors.New("boom")), OriginalContent: "[Image Data - Sent to AI for analysis]"},
			want: ResponseEnvelope{
				Filename:        "a.png",
				Summary:         "Error generating summary: boom",
				OriginalContent: "[Image Data - Sent to AI for analysis]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Envelope())
		})
	}
}

func TestUploadRequestSize(t *testing.T) {
	assert.Equal(t, int64(3), UploadRequest{Data: []byte("abc")}.Size())
	assert.Zero(t, UploadRequest{}.Size())
}
