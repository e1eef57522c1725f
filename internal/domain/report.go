package domain

import "time"

// SchemaReport is the outcome of inspecting a database file's catalog.
type SchemaReport struct {
	Path             string   `json:"path"`
	Exists           bool     `json:"exists"`
	TableNames       []string `json:"table_names"`
	ExpectedTable    string   `json:"expected_table"`
	HasExpectedTable bool     `json:"has_expected_table"`
}

// ExtractionPath records which branch produced the diagnostic output for a 500 response.
type ExtractionPath string

const (
	ExtractionNone      ExtractionPath = "none"
	ExtractionExtracted ExtractionPath = "extracted"
	ExtractionFallback  ExtractionPath = "fallback"
)

// ExtractionOutcome describes what happened when the exception text was looked for.
type ExtractionOutcome struct {
	Path    ExtractionPath `json:"path"`
	Failure string         `json:"failure,omitempty"`
}

// DiagnosticResult is produced once per reproduce run. It is printed, not stored.
type DiagnosticResult struct {
	RunID      string `json:"run_id"`
	StatusCode int    `json:"status_code"`

	ExtractedExceptionText *string `json:"extracted_exception_text,omitempty"`
	ResponseBodyPreview    *string `json:"response_body_preview,omitempty"`

	// RawBody is set for non-500 responses, which are shown verbatim.
	RawBody *string `json:"raw_body,omitempty"`

	Extraction ExtractionOutcome `json:"extraction"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// ServerFailed reports whether the probe hit the server error under investigation.
func (r DiagnosticResult) ServerFailed() bool {
	return r.StatusCode == 500
}
