package cli

import (
	"errors"
	"fmt"
)

// Exit codes of tunecalc.
const (
	exitFailed  = 1 // at least one setup was rejected
	exitUsage   = 2
	exitOutputs = 3
)

// ExitError tells Run which exit code an error from run maps to.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

func asExitError(err error) (ExitError, bool) {
	var ee ExitError
	if errors.As(err, &ee) {
		return ee, true
	}
	return ExitError{}, false
}
