// Package config parses the application configuration from command-line
// flags with environment variable overrides, and loads batch scenario files.
// Priority order is CLI flag > FIBERSIM_* environment variable > default.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
)

// EnvPrefix is prepended to every environment variable key this package
// reads.
const EnvPrefix = "FIBERSIM_"

// FiberAll selects every preset at once where that makes sense (multi-series
// sweep charts, scenario-free comparisons).
const FiberAll = "all"

// Defaults for the simulation parameters. These mirror a typical access
// network drop: a 10 km run at room temperature with five 90° bends at the
// standard tray radius.
const (
	DefaultLengthKm     = 10.0
	DefaultTemperatureC = 25.0
	DefaultBendRadiusCm = 5.0
	DefaultTurns        = loss.DefaultTurns
	DefaultTimeout      = 5 * time.Minute
	DefaultServeAddr    = ":8080"
	DefaultSweepSamples = 100
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// Fiber is the preset name, or "all" for multi-fiber sweeps.
	Fiber string
	// Mode is the loss component to evaluate.
	Mode loss.Mode
	// Model selects the bending loss model.
	Model loss.BendModel

	// Physical parameters.
	LengthKm       float64
	TemperatureC   float64
	BendRadiusCm   float64
	Turns          int
	BendAngleDeg   float64
	InputCurrentUA float64

	// Sweep configures the sweep run mode.
	Sweep        bool
	SweepFrom    float64
	SweepTo      float64
	SweepSamples int
	SweepTotal   bool

	// MonteCarlo and Hybrid select the random-process simulators.
	MonteCarlo bool
	Hybrid     bool
	Rays       int
	Steps      int
	Events     int
	Seed       int64

	// ScenarioFile names a YAML batch file; non-empty selects batch mode.
	ScenarioFile string

	// Serve starts the HTTP API instead of a one-shot run.
	Serve bool
	Addr  string

	// Output controls.
	ChartFile  string
	OutputFile string
	Quiet      bool
	Verbose    bool
	NoColor    bool

	// Completion names a shell to emit a completion script for.
	Completion string

	// Timeout bounds any one-shot run.
	Timeout time.Duration
}

// Request assembles the loss.Request described by the configuration. The
// fiber must already be resolved by the caller since Fiber may be "all".
func (c AppConfig) Request(ft fiber.FiberType) loss.Request {
	return loss.Request{
		Fiber:          ft,
		LengthKm:       c.LengthKm,
		TemperatureC:   c.TemperatureC,
		BendRadiusCm:   c.BendRadiusCm,
		Turns:          c.Turns,
		BendAngleDeg:   c.BendAngleDeg,
		InputCurrentUA: c.InputCurrentUA,
		Model:          c.Model,
	}
}

// ParseConfig parses args into an AppConfig, applying environment overrides
// for flags not set explicitly, then validates the result.
//
// Parameters:
//   - programName: Used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for flag parse errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -help was requested, or a ConfigError for
//     invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	var modeName, modelName string

	fs.StringVar(&cfg.Fiber, "fiber", fiber.NameG652D,
		fmt.Sprintf("fiber type (%v) or %q for multi-fiber sweeps", fiber.Names(), FiberAll))
	fs.StringVar(&modeName, "mode", "length", "loss component: length, bending, or turns")
	fs.StringVar(&modelName, "model", "empirical", "bending model: empirical or waveguide")

	fs.Float64Var(&cfg.LengthKm, "length", DefaultLengthKm, "fiber length in km")
	fs.Float64Var(&cfg.TemperatureC, "temp", DefaultTemperatureC, "ambient temperature in °C")
	fs.Float64Var(&cfg.BendRadiusCm, "radius", DefaultBendRadiusCm, "bend radius in cm")
	fs.IntVar(&cfg.Turns, "turns", DefaultTurns, "number of bends")
	fs.Float64Var(&cfg.BendAngleDeg, "angle", loss.DefaultBendAngleDeg, "bend angle in degrees")
	fs.Float64Var(&cfg.InputCurrentUA, "current", loss.DefaultInputCurrentUA, "input current in µA")

	fs.BoolVar(&cfg.Sweep, "sweep", false, "sweep the mode's parameter and emit a curve")
	fs.Float64Var(&cfg.SweepFrom, "from", 0, "sweep range start (mode-dependent default)")
	fs.Float64Var(&cfg.SweepTo, "to", 0, "sweep range end (mode-dependent default)")
	fs.IntVar(&cfg.SweepSamples, "samples", DefaultSweepSamples, "sweep sample count")
	fs.BoolVar(&cfg.SweepTotal, "total", false, "sweep total loss instead of the single component")

	fs.BoolVar(&cfg.MonteCarlo, "montecarlo", false, "run the Monte Carlo ray bundle simulation")
	fs.BoolVar(&cfg.Hybrid, "hybrid", false, "run the hybrid propagation profile simulation")
	fs.IntVar(&cfg.Rays, "rays", 0, "Monte Carlo ray count (0 = default)")
	fs.IntVar(&cfg.Steps, "steps", 0, "hybrid propagation step count (0 = default)")
	fs.IntVar(&cfg.Events, "events", 0, "hybrid bend event count (0 = default)")
	fs.Int64Var(&cfg.Seed, "seed", 1, "random seed for the simulators")

	fs.StringVar(&cfg.ScenarioFile, "scenario", "", "YAML scenario file to run as a batch")

	fs.BoolVar(&cfg.Serve, "serve", false, "serve the calculator over HTTP")
	fs.StringVar(&cfg.Addr, "addr", DefaultServeAddr, "HTTP listen address")

	fs.StringVar(&cfg.ChartFile, "chart", "", "write an HTML chart to this path")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "minimal output for scripting")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "include memory statistics and extra detail")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script: bash, zsh, fish, or powershell")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, &modeName, &modelName, fs)

	mode, err := loss.ParseMode(modeName)
	if err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid -mode: %v", err)
	}
	cfg.Mode = mode

	model, err := loss.ParseBendModel(modelName)
	if err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid -model: %v", err)
	}
	cfg.Model = model

	applySweepDefaults(&cfg, isFlagSetAny(fs, "from"), isFlagSetAny(fs, "to"))

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// applySweepDefaults fills in the mode-appropriate sweep range when the user
// did not set one. Length sweeps span 0–100 km, bend sweeps 0.5–10 cm, turn
// sweeps 0–20 turns.
func applySweepDefaults(cfg *AppConfig, fromSet, toSet bool) {
	if !fromSet {
		switch cfg.Mode {
		case loss.ModeBending:
			cfg.SweepFrom = 0.5
		default:
			cfg.SweepFrom = 0
		}
	}
	if !toSet {
		switch cfg.Mode {
		case loss.ModeLength:
			cfg.SweepTo = 100
		case loss.ModeBending:
			cfg.SweepTo = 10
		case loss.ModeTurns:
			cfg.SweepTo = 20
		}
	}
}

// validate rejects configurations no run mode could accept. Parameter-level
// constraints (negative length and the like) are enforced again by the
// calculator; catching them here gives the user a config-class exit code.
func validate(cfg AppConfig) error {
	if cfg.Fiber != FiberAll {
		if _, err := fiber.Get(cfg.Fiber); err != nil {
			return apperrors.NewConfigError("invalid -fiber: %v", err)
		}
	} else if !cfg.Sweep {
		return apperrors.NewConfigError("-fiber=all requires -sweep")
	}
	if cfg.LengthKm < 0 {
		return apperrors.NewConfigError("invalid -length: must be >= 0, got %g", cfg.LengthKm)
	}
	if cfg.BendRadiusCm <= 0 {
		return apperrors.NewConfigError("invalid -radius: must be > 0, got %g", cfg.BendRadiusCm)
	}
	if cfg.Turns < 0 {
		return apperrors.NewConfigError("invalid -turns: must be >= 0, got %d", cfg.Turns)
	}
	if cfg.Sweep && cfg.SweepSamples < 2 {
		return apperrors.NewConfigError("invalid -samples: must be >= 2, got %d", cfg.SweepSamples)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("invalid -timeout: must be positive, got %s", cfg.Timeout)
	}
	if cfg.MonteCarlo && cfg.Hybrid {
		return apperrors.NewConfigError("-montecarlo and -hybrid are mutually exclusive")
	}
	return nil
}
