// Package errs defines the validation errors surfaced by the data
// preparation pipeline. Anomalies that are not listed here (unparseable
// filenames, unknown dataset names) are skipped silently by the callers.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the explicit failure modes of the pipeline.
var (
	// ErrInconsistentShape indicates that chunks of the same task disagree
	// on the node-count axis.
	ErrInconsistentShape = errors.New("inconsistent node count across chunks")

	// ErrMissingParameter indicates that a required parameter combination
	// was not supplied.
	ErrMissingParameter = errors.New("required parameter is missing")

	// ErrUnknownMethod indicates an unrecognized method name.
	ErrUnknownMethod = errors.New("unknown method")
)

// ValidationError carries the field and reason of a failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed for %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validation creates a validation error with field details.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationWrap creates a validation error wrapping a sentinel error.
func ValidationWrap(err error, field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
