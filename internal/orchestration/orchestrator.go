package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/navaneethred/opticfibresimulation/internal/config"
	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/progress"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking run goroutines
// when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// progressGranularity is how many updates a sweep entry emits over its run.
const progressGranularity = 20

// ExecuteScenario orchestrates the concurrent execution of a batch of
// scenario entries.
//
// It manages the lifecycle of the run goroutines, collects their results,
// and coordinates the display of progress updates. This function is the core
// of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - entries: The validated scenario entries to execute.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []RunResult: A slice containing the result of each entry, in entry order.
func ExecuteScenario(ctx context.Context, entries []config.ResolvedEntry, progressReporter ProgressReporter, out io.Writer) []RunResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]RunResult, len(entries))
	progressChan := make(chan progress.Update, len(entries)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(entries), out)

	for i, e := range entries {
		idx, entry := i, e
		g.Go(func() error {
			startTime := time.Now()
			res := runEntry(ctx, entry, func(value float64) {
				select {
				case progressChan <- progress.Update{EntryIndex: idx, Value: value}:
				case <-ctx.Done():
				}
			})
			res.Duration = time.Since(startTime)
			results[idx] = res
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// runEntry executes one entry, reporting completion fractions through report.
func runEntry(ctx context.Context, entry config.ResolvedEntry, report progress.Callback) RunResult {
	res := RunResult{
		Name:      entry.Name,
		Mode:      entry.Mode,
		ChartFile: entry.ChartFile,
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	if entry.Sweep == nil {
		point, err := loss.Compute(entry.Mode, entry.Request)
		if err != nil {
			res.Err = apperrors.SimulationError{Cause: err}
			return res
		}
		res.Result = point
		report(1.0)
		return res
	}

	series, err := buildSweep(entry)
	if err != nil {
		res.Err = apperrors.SimulationError{Cause: err}
		return res
	}

	// Walk the series to force evaluation, emitting progress as we go.
	n := series.Len()
	stride := n / progressGranularity
	if stride == 0 {
		stride = 1
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		series.At(i)
		if i%stride == 0 || i == n-1 {
			report(float64(i+1) / float64(n))
		}
	}
	res.Series = series
	return res
}

func buildSweep(entry config.ResolvedEntry) (*sweep.Series, error) {
	if entry.Total {
		return sweep.BuildTotal(entry.Mode, entry.Request, *entry.Sweep)
	}
	return sweep.Build(entry.Mode, entry.Request, *entry.Sweep)
}

// AnalyzeScenarioResults processes the results of a batch run and generates
// a summary report.
//
// It sorts the results so successful entries come first, fastest first,
// displays the batch table, and derives the overall exit status: success when
// every entry succeeded, partial failure when some did, and the error
// handler's verdict when none did.
//
// Parameters:
//   - results: The slice of run results to analyze.
//   - presenter: The result presenter for display formatting.
//   - errorHandler: Maps the first error to an exit code when all entries fail.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeScenarioResults(results []RunResult, presenter ResultPresenter, errorHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstError error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
		}
	}

	presenter.PresentScenarioTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nBatch status: failure. No entry could complete.\n")
		return errorHandler.HandleError(firstError, 0, out)
	}

	if successCount < len(results) {
		fmt.Fprintf(out, "\nBatch status: partial failure. %d of %d entries completed.\n",
			successCount, len(results))
		return apperrors.ExitErrorPartial
	}

	fmt.Fprintf(out, "\nBatch status: success. All %d entries completed.\n", len(results))
	return apperrors.ExitSuccess
}
