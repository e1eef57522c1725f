package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrMissingToken  = errors.New("access token missing from login response")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindResourceMissing   ErrorKind = "resource_missing"
	KindQueryFailure      ErrorKind = "query_failure"
	KindAuthFailure       ErrorKind = "auth_failure"
	KindExtractionFailure ErrorKind = "extraction_failure"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindExecution         ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path or endpoint
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// HTTPStatusError carries an unexpected response verbatim so it can be shown to a human.
type HTTPStatusError struct {
	Status int
	Body   []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// ResponseBody returns the failing body verbatim if err carries one.
func ResponseBody(err error) (string, bool) {
	var se *HTTPStatusError
	if errors.As(err, &se) {
		return string(se.Body), true
	}
	return "", false
}
