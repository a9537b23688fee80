package orchestration

import (
	"github.com/navaneethred/opticfibresimulation/internal/config"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
)

// GetFibersToRun determines which fiber presets a run covers based on the
// configured name. Presets come back in table order for consistent,
// reproducible output.
//
// Parameters:
//   - name: A preset name, or config.FiberAll for every preset.
//
// Returns:
//   - []fiber.FiberType: The presets to run.
//   - error: An UnknownFiberTypeError when the name matches no preset.
func GetFibersToRun(name string) ([]fiber.FiberType, error) {
	if name == config.FiberAll {
		return fiber.All(), nil
	}
	ft, err := fiber.Get(name)
	if err != nil {
		return nil, err
	}
	return []fiber.FiberType{ft}, nil
}
