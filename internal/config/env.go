// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// parseFloatEnv parses a float environment variable value, keeping the
// default when the value does not parse.
func parseFloatEnv(val string, defaultVal float64) float64 {
	if parsed, err := strconv.ParseFloat(val, 64); err == nil {
		return parsed
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBERSIM_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*envTarget, string)
}

// envTarget bundles the config with the raw mode and model names, which are
// resolved to their typed values after overrides apply.
type envTarget struct {
	cfg   *AppConfig
	mode  *string
	model *string
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped the way the flags are declared (selection, numeric, duration,
// string, bool).
var envOverrides = []envOverride{
	// Selection overrides
	{"FIBER", []string{"fiber"}, func(t *envTarget, v string) {
		t.cfg.Fiber = v
	}},
	{"MODE", []string{"mode"}, func(t *envTarget, v string) {
		*t.mode = v
	}},
	{"MODEL", []string{"model"}, func(t *envTarget, v string) {
		*t.model = v
	}},

	// Numeric overrides
	{"LENGTH", []string{"length"}, func(t *envTarget, v string) {
		t.cfg.LengthKm = parseFloatEnv(v, t.cfg.LengthKm)
	}},
	{"TEMP", []string{"temp"}, func(t *envTarget, v string) {
		t.cfg.TemperatureC = parseFloatEnv(v, t.cfg.TemperatureC)
	}},
	{"RADIUS", []string{"radius"}, func(t *envTarget, v string) {
		t.cfg.BendRadiusCm = parseFloatEnv(v, t.cfg.BendRadiusCm)
	}},
	{"TURNS", []string{"turns"}, func(t *envTarget, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.cfg.Turns = parsed
		}
	}},
	{"SAMPLES", []string{"samples"}, func(t *envTarget, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.cfg.SweepSamples = parsed
		}
	}},
	{"RAYS", []string{"rays"}, func(t *envTarget, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.cfg.Rays = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(t *envTarget, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			t.cfg.Seed = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(t *envTarget, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			t.cfg.Timeout = parsed
		}
	}},

	// String overrides
	{"ADDR", []string{"addr"}, func(t *envTarget, v string) {
		t.cfg.Addr = v
	}},
	{"CHART", []string{"chart"}, func(t *envTarget, v string) {
		t.cfg.ChartFile = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(t *envTarget, v string) {
		t.cfg.OutputFile = v
	}},
	{"SCENARIO", []string{"scenario"}, func(t *envTarget, v string) {
		t.cfg.ScenarioFile = v
	}},

	// Boolean overrides
	{"QUIET", []string{"quiet", "q"}, func(t *envTarget, v string) {
		t.cfg.Quiet = parseBoolEnv(v, t.cfg.Quiet)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(t *envTarget, v string) {
		t.cfg.Verbose = parseBoolEnv(v, t.cfg.Verbose)
	}},
	{"NO_COLOR", []string{"no-color"}, func(t *envTarget, v string) {
		t.cfg.NoColor = parseBoolEnv(v, t.cfg.NoColor)
	}},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with FIBERSIM_):
//   - FIBER, MODE, MODEL, LENGTH, TEMP, RADIUS, TURNS, SAMPLES, RAYS,
//     SEED, TIMEOUT, ADDR, CHART, OUTPUT, SCENARIO, QUIET, VERBOSE,
//     NO_COLOR
func applyEnvOverrides(cfg *AppConfig, modeName, modelName *string, fs *flag.FlagSet) {
	target := &envTarget{cfg: cfg, mode: modeName, model: modelName}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(target, val)
		}
	}
}
