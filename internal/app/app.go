// Package app wires the parsed configuration to the run modes: single
// computation, parameter sweep, random-process simulations, batch
// scenarios, and the HTTP server.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/navaneethred/opticfibresimulation/internal/cli"
	"github.com/navaneethred/opticfibresimulation/internal/config"
	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/metrics"
	"github.com/navaneethred/opticfibresimulation/internal/ui"
)

// Application represents one invocation of the simulator.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "fiberlosscalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.Serve:
		return a.runServe(ctx)
	case a.Config.ScenarioFile != "":
		return a.runScenario(ctx, out)
	case a.Config.MonteCarlo:
		return a.runMonteCarlo(ctx, out)
	case a.Config.Hybrid:
		return a.runHybrid(ctx, out)
	case a.Config.Sweep:
		return a.runSweep(ctx, out)
	default:
		return a.runCompute(ctx, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, fiber.Names()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// lifecycleContext bounds ctx by the configured timeout and the usual
// termination signals. The caller must invoke the returned stop function.
func (a *Application) lifecycleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// handleError reports err through the shared error handler and returns the
// matching exit code.
func (a *Application) handleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleSimulationError(err, duration, out, cli.CLIColorProvider{})
}

// displayMemoryStatsIfVerbose appends a runtime memory report in verbose
// mode.
func (a *Application) displayMemoryStatsIfVerbose(out io.Writer) {
	if !a.Config.Verbose {
		return
	}
	snap := metrics.NewMemoryCollector().Snapshot()
	cli.DisplayMemoryStats(snap.HeapAlloc, snap.TotalAlloc, snap.NumGC, snap.PauseTotalNs, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
