package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("fiberlosscalc", args, &buf)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Fiber != "G.652D" {
		t.Errorf("Fiber = %q, want G.652D", cfg.Fiber)
	}
	if cfg.Mode != loss.ModeLength {
		t.Errorf("Mode = %v, want length", cfg.Mode)
	}
	if cfg.Model != loss.ModelEmpirical {
		t.Errorf("Model = %v, want empirical", cfg.Model)
	}
	if cfg.LengthKm != DefaultLengthKm {
		t.Errorf("LengthKm = %g, want %g", cfg.LengthKm, DefaultLengthKm)
	}
	if cfg.BendRadiusCm != DefaultBendRadiusCm {
		t.Errorf("BendRadiusCm = %g, want %g", cfg.BendRadiusCm, DefaultBendRadiusCm)
	}
	if cfg.Turns != loss.DefaultTurns {
		t.Errorf("Turns = %d, want %d", cfg.Turns, loss.DefaultTurns)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Addr != DefaultServeAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultServeAddr)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t,
		"-fiber", "G.657A",
		"-mode", "turns",
		"-model", "waveguide",
		"-length", "25.5",
		"-temp", "-10",
		"-radius", "2.5",
		"-turns", "12",
		"-timeout", "30s",
		"-quiet",
	)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Fiber != "G.657A" {
		t.Errorf("Fiber = %q, want G.657A", cfg.Fiber)
	}
	if cfg.Mode != loss.ModeTurns {
		t.Errorf("Mode = %v, want turns", cfg.Mode)
	}
	if cfg.Model != loss.ModelWaveguide {
		t.Errorf("Model = %v, want waveguide", cfg.Model)
	}
	if cfg.LengthKm != 25.5 || cfg.TemperatureC != -10 || cfg.BendRadiusCm != 2.5 || cfg.Turns != 12 {
		t.Errorf("physical parameters not parsed: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
}

func TestParseConfig_SweepDefaults(t *testing.T) {
	tests := []struct {
		mode     string
		wantFrom float64
		wantTo   float64
	}{
		{"length", 0, 100},
		{"bending", 0.5, 10},
		{"turns", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg, err := parse(t, "-sweep", "-mode", tt.mode)
			if err != nil {
				t.Fatalf("ParseConfig returned error: %v", err)
			}
			if cfg.SweepFrom != tt.wantFrom || cfg.SweepTo != tt.wantTo {
				t.Errorf("sweep range = [%g, %g], want [%g, %g]",
					cfg.SweepFrom, cfg.SweepTo, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestParseConfig_ExplicitSweepRangeWins(t *testing.T) {
	cfg, err := parse(t, "-sweep", "-mode", "bending", "-from", "1", "-to", "4", "-samples", "10")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.SweepFrom != 1 || cfg.SweepTo != 4 || cfg.SweepSamples != 10 {
		t.Errorf("sweep range = [%g, %g] x%d, want [1, 4] x10", cfg.SweepFrom, cfg.SweepTo, cfg.SweepSamples)
	}
}

func TestParseConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown fiber", []string{"-fiber", "G.999Z"}},
		{"unknown mode", []string{"-mode", "banana"}},
		{"unknown model", []string{"-model", "psychic"}},
		{"negative length", []string{"-length", "-1"}},
		{"zero radius", []string{"-radius", "0"}},
		{"negative turns", []string{"-turns", "-3"}},
		{"one sweep sample", []string{"-sweep", "-samples", "1"}},
		{"all without sweep", []string{"-fiber", "all"}},
		{"montecarlo and hybrid", []string{"-montecarlo", "-hybrid"}},
		{"zero timeout", []string{"-timeout", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var ce apperrors.ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("err = %v, want ConfigError", err)
			}
		})
	}
}

func TestParseConfig_HelpFlag(t *testing.T) {
	_, err := parse(t, "-help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"FIBER", "G.655")
	t.Setenv(EnvPrefix+"MODE", "bending")
	t.Setenv(EnvPrefix+"RADIUS", "3.5")
	t.Setenv(EnvPrefix+"QUIET", "true")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Fiber != "G.655" {
		t.Errorf("Fiber = %q, want env override G.655", cfg.Fiber)
	}
	if cfg.Mode != loss.ModeBending {
		t.Errorf("Mode = %v, want bending", cfg.Mode)
	}
	if cfg.BendRadiusCm != 3.5 {
		t.Errorf("BendRadiusCm = %g, want 3.5", cfg.BendRadiusCm)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set from env")
	}
}

func TestParseConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"LENGTH", "99")

	cfg, err := parse(t, "-length", "7")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.LengthKm != 7 {
		t.Errorf("LengthKm = %g, want CLI value 7 over env 99", cfg.LengthKm)
	}
}

func TestRequest_CarriesParameters(t *testing.T) {
	cfg, err := parse(t, "-fiber", "G.657B", "-length", "3", "-temp", "40", "-radius", "2", "-turns", "8")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	req := cfg.Request(fiber.MustGet(cfg.Fiber))
	if req.Fiber.Name != "G.657B" || req.LengthKm != 3 || req.TemperatureC != 40 ||
		req.BendRadiusCm != 2 || req.Turns != 8 {
		t.Errorf("Request did not carry parameters: %+v", req)
	}
}
