package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
)

// Scenario is a batch of named simulation entries loaded from a YAML file.
type Scenario struct {
	// Name labels the batch in output and logs.
	Name string `yaml:"name"`
	// Entries are run concurrently by the orchestrator.
	Entries []ScenarioEntry `yaml:"entries"`
}

// ScenarioEntry describes one simulation of a batch. The YAML field names
// follow the CLI flags, so a scenario entry reads like a saved command line.
type ScenarioEntry struct {
	Name  string `yaml:"name"`
	Fiber string `yaml:"fiber"`
	Mode  string `yaml:"mode"`
	Model string `yaml:"model,omitempty"`

	LengthKm       float64 `yaml:"length_km,omitempty"`
	TemperatureC   float64 `yaml:"temperature_c,omitempty"`
	BendRadiusCm   float64 `yaml:"bend_radius_cm,omitempty"`
	Turns          int     `yaml:"turns,omitempty"`
	BendAngleDeg   float64 `yaml:"bend_angle_deg,omitempty"`
	InputCurrentUA float64 `yaml:"input_current_ua,omitempty"`

	// Sweep, when present, makes the entry a sweep instead of a single
	// point.
	Sweep *ScenarioSweep `yaml:"sweep,omitempty"`

	// ChartFile, when set, renders the entry's sweep to this HTML path.
	ChartFile string `yaml:"chart_file,omitempty"`
}

// ScenarioSweep is the swept range of a scenario entry.
type ScenarioSweep struct {
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Samples int     `yaml:"samples,omitempty"`
	Total   bool    `yaml:"total,omitempty"`
}

// ResolvedEntry is a scenario entry with its references validated and
// resolved to domain types, ready for the orchestrator.
type ResolvedEntry struct {
	Name      string
	Mode      loss.Mode
	Request   loss.Request
	Sweep     *sweep.Range
	Total     bool
	ChartFile string
}

// LoadScenario reads and validates a scenario file. Every entry passes
// through the same constructors the CLI path uses, so a scenario cannot
// smuggle in parameters the calculator would reject.
//
// Parameters:
//   - path: The YAML file to load.
//
// Returns:
//   - Scenario: The raw scenario, for naming and reporting.
//   - []ResolvedEntry: The validated entries in file order.
//   - error: A ConfigError describing the first invalid entry.
func LoadScenario(path string) (Scenario, []ResolvedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, nil, apperrors.NewConfigError("reading scenario file %q: %v", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, nil, apperrors.NewConfigError("parsing scenario file %q: %v", path, err)
	}
	if len(sc.Entries) == 0 {
		return Scenario{}, nil, apperrors.NewConfigError("scenario file %q contains no entries", path)
	}

	resolved := make([]ResolvedEntry, 0, len(sc.Entries))
	for i, entry := range sc.Entries {
		re, err := resolveEntry(entry, i)
		if err != nil {
			return Scenario{}, nil, apperrors.NewConfigError("scenario entry %d (%s): %v", i, entryLabel(entry, i), err)
		}
		resolved = append(resolved, re)
	}
	return sc, resolved, nil
}

func entryLabel(entry ScenarioEntry, index int) string {
	if entry.Name != "" {
		return entry.Name
	}
	return fmt.Sprintf("entry-%d", index)
}

// resolveEntry validates one entry through the fiber registry, the mode and
// model parsers, and — for sweeps — a probe construction of the series.
func resolveEntry(entry ScenarioEntry, index int) (ResolvedEntry, error) {
	ft, err := fiber.Get(entry.Fiber)
	if err != nil {
		return ResolvedEntry{}, err
	}
	mode, err := loss.ParseMode(entry.Mode)
	if err != nil {
		return ResolvedEntry{}, err
	}
	model := loss.ModelEmpirical
	if entry.Model != "" {
		model, err = loss.ParseBendModel(entry.Model)
		if err != nil {
			return ResolvedEntry{}, err
		}
	}

	req := loss.Request{
		Fiber:          ft,
		LengthKm:       entry.LengthKm,
		TemperatureC:   entry.TemperatureC,
		BendRadiusCm:   entry.BendRadiusCm,
		Turns:          entry.Turns,
		BendAngleDeg:   entry.BendAngleDeg,
		InputCurrentUA: entry.InputCurrentUA,
		Model:          model,
	}
	if req.BendRadiusCm == 0 {
		req.BendRadiusCm = DefaultBendRadiusCm
	}
	if req.TemperatureC == 0 {
		req.TemperatureC = DefaultTemperatureC
	}

	re := ResolvedEntry{
		Name:      entryLabel(entry, index),
		Mode:      mode,
		Request:   req,
		ChartFile: entry.ChartFile,
	}

	if entry.Sweep != nil {
		rng := sweep.Range{From: entry.Sweep.From, To: entry.Sweep.To, Samples: entry.Sweep.Samples}
		// Probe-build the series so range errors surface at load time.
		if entry.Sweep.Total {
			_, err = sweep.BuildTotal(mode, req, rng)
		} else {
			_, err = sweep.Build(mode, req, rng)
		}
		if err != nil {
			return ResolvedEntry{}, err
		}
		re.Sweep = &rng
		re.Total = entry.Sweep.Total
	} else {
		// Validate the single point the same way the run will compute it.
		if _, err := loss.Compute(mode, req); err != nil {
			return ResolvedEntry{}, err
		}
	}
	return re, nil
}
