package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI escape codes for error display. It decouples
// error presentation from the UI theme implementation so this package does
// not depend on presentation code.
type ColorProvider interface {
	// Red returns the escape code for error text.
	Red() string
	// Yellow returns the escape code for warning text.
	Yellow() string
	// Reset returns the escape code that clears formatting.
	Reset() string
}

// HandleSimulationError reports a simulation failure to the user and maps it
// to the appropriate process exit code. Context errors are distinguished so
// a Ctrl-C and a timeout produce different exit statuses.
//
// Parameters:
//   - err: The error returned by the simulation.
//   - duration: How long the operation ran before failing.
//   - out: The writer for user-facing error messages.
//   - colors: The color provider for message formatting.
//
// Returns:
//   - int: The process exit code corresponding to the error class.
func HandleSimulationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout after %s.%s\n", colors.Red(), duration.Round(time.Millisecond), colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled after %s.%s\n", colors.Yellow(), duration.Round(time.Millisecond), colors.Reset())
		return ExitErrorCanceled
	case IsInvalidParameter(err), IsUnknownFiberType(err):
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	default:
		fmt.Fprintf(out, "%sSimulation failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
