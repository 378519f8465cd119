package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates a product mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration, range or format error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// an unsupported bit-width. It indicates that the application cannot proceed
// due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// RangeError reports a value that cannot be represented in a signed
// two's-complement field of Width bits, i.e. outside [Min, Max].
type RangeError struct {
	Value int64
	Width int
	Min   int64
	Max   int64
}

// Error returns a formatted message describing the range violation.
func (e RangeError) Error() string {
	return fmt.Sprintf("value %d out of range for %d-bit two's complement [%d, %d]",
		e.Value, e.Width, e.Min, e.Max)
}

// FormatError reports a malformed two's-complement bit-string.
type FormatError struct {
	// Input is the offending string.
	Input string
	// Reason explains what is wrong with it.
	Reason string
}

// Error returns a formatted message describing the format error.
func (e FormatError) Error() string {
	return fmt.Sprintf("invalid bit-string %q: %s", e.Input, e.Reason)
}

// CalculationError encapsulates a multiplication error while preserving the
// original cause, typically a RangeError or ConfigError raised by the
// codec, together with the name of the algorithm that failed.
type CalculationError struct {
	// Algorithm is the name of the multiplier that reported the error.
	Algorithm string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string {
	if e.Algorithm == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsRangeError reports whether err carries a RangeError anywhere in its chain.
func IsRangeError(err error) bool {
	var re RangeError
	return errors.As(err, &re)
}

// IsFormatError reports whether err carries a FormatError anywhere in its chain.
func IsFormatError(err error) bool {
	var fe FormatError
	return errors.As(err, &fe)
}

// IsConfigError reports whether err carries a ConfigError anywhere in its chain.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}

// ExitCodeFor maps an error to the process exit code that best describes it.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case IsConfigError(err), IsRangeError(err), IsFormatError(err):
		return ExitErrorConfig
	default:
		var ve ValidationError
		if errors.As(err, &ve) {
			return ExitErrorConfig
		}
		return ExitErrorGeneric
	}
}
