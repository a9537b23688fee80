package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/format"
	"github.com/navaneethred/opticfibresimulation/internal/orchestration"
	"github.com/navaneethred/opticfibresimulation/internal/progress"
	"github.com/navaneethred/opticfibresimulation/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active theme.
type CLIColorProvider struct{}

// Red returns the escape code for error text.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the escape code for warning text.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the escape code that clears formatting.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numEntries int, out io.Writer) {
	DisplayProgress(wg, progressChan, numEntries, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for run results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentScenarioTable displays the batch summary table with entry names,
// durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentScenarioTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Batch Summary ---\n")

	// Find the maximum entry name width for proper alignment
	maxNameLen := 5    // "Entry" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sEntry%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-5),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentRunResult displays one entry's final result: the single-point
// values, or the sweep summary for sweep entries.
func (CLIResultPresenter) PresentRunResult(result orchestration.RunResult, verbose bool, out io.Writer) {
	if result.Err != nil {
		return
	}
	if result.Series != nil {
		DisplaySweepSummary(result.Series, out)
		return
	}
	fmt.Fprintf(out, "\n%s%s%s: %s = %s%.4f dB%s, output current %s%.4f µA%s\n",
		ui.ColorBlue(), result.Name, ui.ColorReset(),
		result.Mode,
		ui.ColorGreen(), result.Result.LossDB, ui.ColorReset(),
		ui.ColorGreen(), result.Result.OutputCurrentUA, ui.ColorReset())
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError handles run errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleSimulationError(err, duration, out, CLIColorProvider{})
}
