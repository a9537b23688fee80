package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/navaneethred/opticfibresimulation/internal/chart"
	"github.com/navaneethred/opticfibresimulation/internal/cli"
	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/orchestration"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
	"github.com/navaneethred/opticfibresimulation/internal/ui"
)

// runCompute evaluates a single point and displays the result with its
// breakdown.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	ft, err := fiber.Get(a.Config.Fiber)
	if err != nil {
		return a.handleError(err, 0, out)
	}
	req := a.Config.Request(ft)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	start := time.Now()
	res, err := loss.Compute(a.Config.Mode, req)
	if err != nil {
		return a.handleError(err, time.Since(start), out)
	}
	bd, err := loss.ComputeBreakdown(req)
	if err != nil {
		return a.handleError(err, time.Since(start), out)
	}
	duration := time.Since(start)

	if err := ctx.Err(); err != nil {
		return a.handleError(err, duration, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, res, bd, req, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	a.displayMemoryStatsIfVerbose(out)
	return apperrors.ExitSuccess
}

// runSweep builds one series per selected fiber and reports the curves,
// optionally rendering them to an HTML chart.
func (a *Application) runSweep(ctx context.Context, out io.Writer) int {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	fibers, err := orchestration.GetFibersToRun(a.Config.Fiber)
	if err != nil {
		return a.handleError(err, 0, out)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(fibers, out)
	}

	rng := sweep.Range{
		From:    a.Config.SweepFrom,
		To:      a.Config.SweepTo,
		Samples: a.Config.SweepSamples,
	}

	start := time.Now()
	chartSeries := make([]chart.Series, 0, len(fibers))
	for _, ft := range fibers {
		if err := ctx.Err(); err != nil {
			return a.handleError(err, time.Since(start), out)
		}

		req := a.Config.Request(ft)
		series, err := a.buildSweep(req, rng)
		if err != nil {
			return a.handleError(err, time.Since(start), out)
		}
		chartSeries = append(chartSeries, chart.Series{Name: ft.Name, Sweep: series})

		if !a.Config.Quiet {
			if len(fibers) > 1 {
				fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorBold(), ft.Name, ui.ColorReset())
			}
			cli.DisplaySweepSummary(series, out)
		}
	}
	duration := time.Since(start)

	if a.Config.OutputFile != "" && len(fibers) == 1 {
		outputCfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			Quiet:      a.Config.Quiet,
			Verbose:    a.Config.Verbose,
		}
		req := a.Config.Request(fibers[0])
		if err := cli.WriteSweepToFile(chartSeries[0].Sweep, req, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving sweep: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Sweep saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	if a.Config.ChartFile != "" {
		if code := a.renderSweepChart(chartSeries, out); code != apperrors.ExitSuccess {
			return code
		}
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "\nCompleted in %s.\n", cli.FormatExecutionDuration(duration))
	}
	a.displayMemoryStatsIfVerbose(out)
	return apperrors.ExitSuccess
}

func (a *Application) buildSweep(req loss.Request, rng sweep.Range) (*sweep.Series, error) {
	if a.Config.SweepTotal {
		return sweep.BuildTotal(a.Config.Mode, req, rng)
	}
	return sweep.Build(a.Config.Mode, req, rng)
}

// renderSweepChart writes the collected series to the configured chart
// file.
func (a *Application) renderSweepChart(series []chart.Series, out io.Writer) int {
	modeName := a.Config.Mode.String()
	title := fmt.Sprintf("Fiber loss vs %s", modeName)
	line, err := chart.SweepChart(title, chart.SweepTitles(modeName), series...)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error building chart: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return a.writeChart(line, out)
}
