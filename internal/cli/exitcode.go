package cli

import (
	"errors"
	"fmt"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

// Exit codes used with --strict. Without it every reported outcome exits 0.
const (
	ExitOK               = 0
	ExitGeneric          = 1
	ExitDatabaseMissing  = 2
	ExitQueryFailure     = 3
	ExitAuthFailure      = 4
	ExitServerError      = 5
	ExitUnexpectedStatus = 6
	ExitTableMissing     = 7
)

// ExitError carries a process exit code for an outcome that was already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitGeneric
}

// isQuietExit reports whether err only signals an exit code for an outcome already printed.
func isQuietExit(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee)
}

func codeForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindResourceMissing:
		return ExitDatabaseMissing
	case domain.KindQueryFailure:
		return ExitQueryFailure
	case domain.KindAuthFailure:
		return ExitAuthFailure
	default:
		return ExitGeneric
	}
}

func codeForStatus(status int) int {
	switch {
	case status >= 200 && status < 300:
		return ExitOK
	case status == 500:
		return ExitServerError
	default:
		return ExitUnexpectedStatus
	}
}

// verdict turns a reported outcome into the command's return value.
func (o *rootOpts) verdict(code int, err error) error {
	if code == ExitOK || !o.strict {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}
