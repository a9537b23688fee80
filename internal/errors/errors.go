package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0   // Indicates successful execution.
	ExitErrorGeneric = 1   // Indicates a generic error.
	ExitErrorTimeout = 2   // Indicates the operation timed out.
	ExitErrorPartial = 3   // Indicates a batch run where some entries failed.
	ExitErrorConfig  = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// InvalidParameterError represents a physically meaningless simulation
// parameter, such as a negative fiber length or a non-positive bend radius.
// It identifies the offending parameter and carries the rejected value so
// callers can report precisely what was wrong.
type InvalidParameterError struct {
	// Param is the name of the rejected parameter.
	Param string
	// Value is the rejected value, formatted with %v.
	Value any
	// Message explains the constraint that was violated.
	Message string
}

// Error returns a formatted message describing the invalid parameter.
//
// Returns:
//   - string: The error message string.
func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %v (%s)", e.Param, e.Value, e.Message)
}

// NewInvalidParameter creates an InvalidParameterError for the given
// parameter, value, and constraint description.
//
// Parameters:
//   - param: The name of the rejected parameter.
//   - value: The rejected value.
//   - message: The constraint that was violated.
//
// Returns:
//   - error: A new InvalidParameterError instance.
func NewInvalidParameter(param string, value any, message string) error {
	return InvalidParameterError{Param: param, Value: value, Message: message}
}

// IsInvalidParameter reports whether err is (or wraps) an InvalidParameterError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an invalid parameter error.
func IsInvalidParameter(err error) bool {
	var ipe InvalidParameterError
	return errors.As(err, &ipe)
}

// UnknownFiberTypeError represents a lookup of a fiber type name outside the
// preset table. It carries the requested name and the known names so the
// presentation layer can suggest valid choices.
type UnknownFiberTypeError struct {
	// Name is the fiber type name that was requested.
	Name string
	// Known lists the valid fiber type names, in table order.
	Known []string
}

// Error returns a formatted message describing the failed lookup.
//
// Returns:
//   - string: The error message string.
func (e UnknownFiberTypeError) Error() string {
	return fmt.Sprintf("unknown fiber type %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// IsUnknownFiberType reports whether err is (or wraps) an UnknownFiberTypeError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an unknown fiber type error.
func IsUnknownFiberType(err error) bool {
	var ufe UnknownFiberTypeError
	return errors.As(err, &ufe)
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
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

// SimulationError encapsulates a simulation failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a loss computation or sweep.
type SimulationError struct {
	// Cause is the underlying error that triggered this simulation error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e SimulationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the SimulationError.
func (e SimulationError) Unwrap() error { return e.Cause }

// TimeoutError represents a simulation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure at an outer
// boundary, such as an HTTP query parameter that does not parse. It
// identifies which field failed validation and provides a human-readable
// explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
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
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
