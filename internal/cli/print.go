package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

type schemaOutput struct {
	Report domain.SchemaReport `json:"report"`
	Error  *errorOutput        `json:"error,omitempty"`
}

type diagnosticOutput struct {
	Result domain.DiagnosticResult `json:"result"`
	Error  *errorOutput            `json:"error,omitempty"`
}

type errorOutput struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

func toErrorOutput(err error) *errorOutput {
	if err == nil {
		return nil
	}
	kind := domain.KindOf(err)
	if kind == "" {
		kind = domain.KindExecution
	}
	return &errorOutput{Kind: kind, Message: err.Error()}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSchema(w io.Writer, format string, report domain.SchemaReport, err error) error {
	if format == "json" {
		return writeJSON(w, schemaOutput{Report: report, Error: toErrorOutput(err)})
	}

	th := defaultTheme()
	fmt.Fprintf(w, "Checking database at: %s\n", report.Path)

	if domain.IsKind(err, domain.KindResourceMissing) {
		fmt.Fprintln(w, th.Fail.Render("Database file not found!"))
		return nil
	}
	if err != nil {
		fmt.Fprintln(w, th.Fail.Render(fmt.Sprintf("Schema query failed: %v", err)))
		return nil
	}

	fmt.Fprintln(w, th.Title.Render("Tables found:"))
	for _, name := range report.TableNames {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w)

	if report.HasExpectedTable {
		fmt.Fprintln(w, th.OK.Render(fmt.Sprintf("%s table exists.", report.ExpectedTable)))
	} else {
		fmt.Fprintln(w, th.Fail.Render(fmt.Sprintf("%s table MISSING.", report.ExpectedTable)))
	}
	return nil
}

// printDiagnostic writes the run summary. In pretty mode the step-by-step
// progress has already been written by the use case.
func printDiagnostic(w io.Writer, format string, res domain.DiagnosticResult, err error) error {
	if format == "json" {
		return writeJSON(w, diagnosticOutput{Result: res, Error: toErrorOutput(err)})
	}

	th := defaultTheme()
	fmt.Fprintln(w)

	switch {
	case err != nil:
		kind := domain.KindOf(err)
		if kind == "" {
			kind = domain.KindExecution
		}
		fmt.Fprintln(w, th.Fail.Render(fmt.Sprintf("✗ run aborted (%s): %v", kind, err)))
	case res.ServerFailed() && res.Extraction.Path == domain.ExtractionExtracted:
		fmt.Fprintln(w, th.Fail.Render("✗ server error reproduced, exception extracted"))
	case res.ServerFailed():
		fmt.Fprintln(w, th.Fail.Render("✗ server error reproduced, exception not found in the page"))
	case res.StatusCode >= 200 && res.StatusCode < 300:
		fmt.Fprintln(w, th.OK.Render(fmt.Sprintf("✓ task created (status %d)", res.StatusCode)))
	default:
		fmt.Fprintln(w, th.Warn.Render(fmt.Sprintf("! unexpected status %d", res.StatusCode)))
	}

	if !res.StartedAt.IsZero() && !res.EndedAt.IsZero() {
		fmt.Fprintln(w, th.Faint.Render(fmt.Sprintf("run %s in %s", res.RunID, res.EndedAt.Sub(res.StartedAt).Round(time.Millisecond))))
	}
	return nil
}
