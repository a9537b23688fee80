package orchestration

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"io"
	"sync"
	"time"

	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/progress"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
)

// RunResult encapsulates the outcome of a single scenario entry run.
// It serves as the shared domain type between orchestration and presentation
// layers. Exactly one of Result and Series carries the outcome: Series is
// non-nil for sweep entries, Result is valid for single-point entries.
type RunResult struct {
	// Name is the entry label from the scenario file.
	Name string
	// Mode is the loss component that was evaluated.
	Mode loss.Mode
	// Result is the single-point outcome. Valid only when Series is nil.
	Result loss.Result
	// Series is the swept curve for sweep entries, nil otherwise.
	Series *sweep.Series
	// ChartFile is the entry's requested chart path, if any.
	ChartFile string
	// Duration is the time taken to complete the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation
// layer: the orchestrator coordinates the runs while implementations handle
// the visual representation (spinners, progress bars, etc.).
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from the runs.
	//   - numEntries: The number of concurrent entries being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numEntries int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numEntries int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numEntries int, out io.Writer) {
	f(wg, progressChan, numEntries, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting run results.
// This interface decouples the orchestration layer from presentation
// concerns, allowing different output formats (CLI, JSON, etc.) without
// modifying the orchestration logic.
type ResultPresenter interface {
	// PresentScenarioTable displays the batch summary table.
	PresentScenarioTable(results []RunResult, out io.Writer)

	// PresentRunResult displays one entry's final result.
	PresentRunResult(result RunResult, verbose bool, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
