// Package apperr provides the error type shared by tally's packages. Errors
// are declared once as package-level templates and specialised with Fmt or
// Wrap at the call site, so callers can match them with errors.Is.
package apperr

import "fmt"

// Error is an application error built from a message template.
type Error struct {
	Cause   error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}

// Fmt returns a copy of the error with its message arguments set.
func (e *Error) Fmt(args ...any) *Error {
	err := *e
	err.Context = args

	return &err
}

// Wrap returns a copy of the error that wraps cause.
func (e *Error) Wrap(cause error) *Error {
	err := *e
	err.Cause = cause

	return &err
}
