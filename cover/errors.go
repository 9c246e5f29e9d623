package cover

import (
	"github.com/pkg/errors"
)

// An InputError is returned when an instance cannot be read or is not valid.
// Path is the file the instance was read from, if any, and Field the
// offending field, if a single one can be blamed.
type InputError struct {
	Path  string
	Field string
	Err   error
}

func (e *InputError) Error() string {
	msg := "invalid instance"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap gives access to the underlying error.
func (e *InputError) Unwrap() error { return e.Err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *InputError) Cause() error { return e.Err }

// IsInputError is true iff err is, or wraps, an *InputError.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// withPath sets the path of err if it is an *InputError, or wraps it in a new one.
func withPath(err error, path string) error {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		inputErr.Path = path
		return err
	}
	return &InputError{Path: path, Err: err}
}
