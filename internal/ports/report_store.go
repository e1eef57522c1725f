package ports

import "github.com/Kedar1021/to-do-app/internal/domain"

// ReportStore persists diagnostic results. It returns the saved report's id.
type ReportStore interface {
	SaveDiagnostic(res domain.DiagnosticResult) (string, error)
}
