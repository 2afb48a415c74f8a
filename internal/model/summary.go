package model

import "time"

// SummaryErrorPrefix is prepended to a failure reason when a failed result
// is rendered into the summary field.
const SummaryErrorPrefix = "Error generating summary: "

// FallbackContent is used for original_content when neither extracted text
// nor a placeholder is available.
const FallbackContent = "Content extracted by AI."

// SummaryFailure describes why the summarizer produced no text.
type SummaryFailure struct {
	Reason string
}

// SummaryResult carries either summary text or a failure, never both.
type SummaryResult struct {
	Text    string
	Failure *SummaryFailure
}

// Succeeded builds a successful result.
func Succeeded(text string) SummaryResult {
	return SummaryResult{Text: text}
}

// Failed builds a failed result from err.
func Failed(err error) SummaryResult {
	return SummaryResult{Failure: &SummaryFailure{Reason: err.Error()}}
}

// Failed reports whether the summarizer call failed.
func (r SummaryResult) Failed() bool {
	return r.Failure != nil
}

// Render returns the string placed in the summary field of a response.
func (r SummaryResult) Render() string {
	if r.Failure != nil {
		return SummaryErrorPrefix + r.Failure.Reason
	}
	return r.Text
}

// Summary is the outcome of summarizing one upload.
type Summary struct {
	Filename        string
	Result          SummaryResult
	OriginalContent string
}

// Envelope converts s into its wire representation.
func (s Summary) Envelope() ResponseEnvelope {
	content := s.OriginalContent
	if content == "" {
		content = FallbackContent
	}
	return ResponseEnvelope{
		Filename:        s.Filename,
		Summary:         s.Result.Render(),
		OriginalContent: content,
	}
}

// ResponseEnvelope is the JSON body returned for a successful upload.
type ResponseEnvelope struct {
	Filename        string `json:"filename"`
	Summary         string `json:"summary"`
	OriginalContent string `json:"original_content"`
}

// Summary outcomes recorded in the audit log and metrics.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// SummaryRecord is the metadata-only audit row for one summary.
// It never carries file bytes or extracted text.
type SummaryRecord struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	Extension     string    `json:"extension"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	Outcome       string    `json:"outcome"`
	FailureReason string    `json:"failure_reason,omitempty"`
	LatencyMs     int64     `json:"latency_ms"`
	CreatedAt     time.Time `json:"created_at"`
}
