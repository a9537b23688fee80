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
	"github.com/navaneethred/opticfibresimulation/internal/raysim"
	"github.com/navaneethred/opticfibresimulation/internal/ui"
)

// runMonteCarlo traces a ray bundle with randomly perturbed bend radii and
// reports the output current statistics.
func (a *Application) runMonteCarlo(ctx context.Context, out io.Writer) int {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	ft, err := fiber.Get(a.Config.Fiber)
	if err != nil {
		return a.handleError(err, 0, out)
	}

	params := raysim.MonteCarloParams{
		Fiber:          ft,
		LengthKm:       a.Config.LengthKm,
		TemperatureC:   a.Config.TemperatureC,
		Rays:           a.Config.Rays,
		BendsPerRay:    a.Config.Turns,
		RadiusMeanCm:   a.Config.BendRadiusCm,
		InputCurrentUA: a.Config.InputCurrentUA,
	}

	if !a.Config.Quiet {
		rays := params.Rays
		if rays == 0 {
			rays = raysim.DefaultRays
		}
		fmt.Fprintf(out, "Monte Carlo: %d rays through %g km of %s (seed %d)\n",
			rays, params.LengthKm, ft.Name, a.Config.Seed)
	}

	start := time.Now()
	result, err := raysim.NewSimulator(a.Config.Seed).MonteCarlo(ctx, params)
	duration := time.Since(start)
	if err != nil {
		return a.handleError(err, duration, out)
	}

	if a.Config.Quiet {
		fmt.Fprintf(out, "%.6f\n", result.MeanUA)
	} else {
		fmt.Fprintf(out, "\nOutput current: mean %.4f µA, stddev %.4f µA over %d rays\n",
			result.MeanUA, result.StdDevUA, len(result.OutputCurrentsUA))
		fmt.Fprintf(out, "Completed in %s.\n", cli.FormatExecutionDuration(duration))
	}

	if a.Config.ChartFile != "" {
		title := fmt.Sprintf("Output current distribution (%s)", ft.Name)
		bar, err := chart.HistogramChart(title, result.Histogram)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error building chart: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if code := a.writeChart(bar, out); code != apperrors.ExitSuccess {
			return code
		}
	}

	a.displayMemoryStatsIfVerbose(out)
	return apperrors.ExitSuccess
}

// runHybrid walks the fiber in slices with discrete bend events and reports
// the cumulative loss profile.
func (a *Application) runHybrid(ctx context.Context, out io.Writer) int {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	ft, err := fiber.Get(a.Config.Fiber)
	if err != nil {
		return a.handleError(err, 0, out)
	}

	params := raysim.HybridParams{
		Fiber:        ft,
		LengthKm:     a.Config.LengthKm,
		TemperatureC: a.Config.TemperatureC,
		Steps:        a.Config.Steps,
		Events:       a.Config.Events,
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "Hybrid propagation: %g km of %s (seed %d)\n",
			params.LengthKm, ft.Name, a.Config.Seed)
	}

	start := time.Now()
	result, err := raysim.NewSimulator(a.Config.Seed).Hybrid(ctx, params)
	duration := time.Since(start)
	if err != nil {
		return a.handleError(err, duration, out)
	}

	if a.Config.Quiet {
		fmt.Fprintf(out, "%.6f\n", result.TotalLossDB)
	} else {
		fmt.Fprintf(out, "\nTotal loss: %.4f dB over %d steps with %d bend events\n",
			result.TotalLossDB, len(result.Profile), len(result.EventStepsKm))
		fmt.Fprintf(out, "Completed in %s.\n", cli.FormatExecutionDuration(duration))
	}

	if a.Config.ChartFile != "" {
		title := fmt.Sprintf("Cumulative loss profile (%s)", ft.Name)
		line, err := chart.ProfileChart(title, result)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error building chart: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if code := a.writeChart(line, out); code != apperrors.ExitSuccess {
			return code
		}
	}

	a.displayMemoryStatsIfVerbose(out)
	return apperrors.ExitSuccess
}

// writeChart renders a chart to the configured chart file and confirms it.
func (a *Application) writeChart(c chart.Renderable, out io.Writer) int {
	if err := chart.WriteHTML(c, a.Config.ChartFile); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing chart: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "%s✓ Chart saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.ChartFile, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}
