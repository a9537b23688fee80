package app

import (
	"context"
	"fmt"
	"io"

	"github.com/navaneethred/opticfibresimulation/internal/chart"
	"github.com/navaneethred/opticfibresimulation/internal/cli"
	"github.com/navaneethred/opticfibresimulation/internal/config"
	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/orchestration"
)

// runScenario loads a YAML batch file and executes its entries
// concurrently.
func (a *Application) runScenario(ctx context.Context, out io.Writer) int {
	sc, entries, err := config.LoadScenario(a.Config.ScenarioFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	if !a.Config.Quiet {
		name := sc.Name
		if name == "" {
			name = a.Config.ScenarioFile
		}
		fmt.Fprintf(out, "Scenario %q: %d entries\n\n", name, len(entries))
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteScenario(ctx, entries, progressReporter, progressOut)

	if code := a.renderScenarioCharts(results, out); code != apperrors.ExitSuccess {
		return code
	}

	if a.Config.Verbose {
		presenter := cli.CLIResultPresenter{}
		for _, result := range results {
			presenter.PresentRunResult(result, true, out)
		}
	}

	return orchestration.AnalyzeScenarioResults(results, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)
}

// renderScenarioCharts writes the chart file of every successful sweep
// entry that asked for one.
func (a *Application) renderScenarioCharts(results []orchestration.RunResult, out io.Writer) int {
	for _, result := range results {
		if result.ChartFile == "" || result.Err != nil || result.Series == nil {
			continue
		}
		modeName := result.Mode.String()
		title := fmt.Sprintf("%s: loss vs %s", result.Name, modeName)
		line, err := chart.SweepChart(title, chart.SweepTitles(modeName),
			chart.Series{Name: result.Name, Sweep: result.Series})
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error building chart for %s: %v\n", result.Name, err)
			return apperrors.ExitErrorGeneric
		}
		if err := chart.WriteHTML(line, result.ChartFile); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing chart for %s: %v\n", result.Name, err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "✓ Chart for %s saved to: %s\n", result.Name, result.ChartFile)
		}
	}
	return apperrors.ExitSuccess
}
