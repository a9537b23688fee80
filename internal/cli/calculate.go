package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/navaneethred/opticfibresimulation/internal/config"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the fiber selection, the simulation mode, the physical parameters,
// and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Simulating %s%s%s loss for fiber %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Mode, ui.ColorReset(),
		ui.ColorBlue(), cfg.Fiber, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Parameters: length=%s%g km%s, temperature=%s%g °C%s, bend radius=%s%g cm%s, turns=%s%d%s.\n",
		ui.ColorCyan(), cfg.LengthKm, ui.ColorReset(),
		ui.ColorCyan(), cfg.TemperatureC, ui.ColorReset(),
		ui.ColorCyan(), cfg.BendRadiusCm, ui.ColorReset(),
		ui.ColorCyan(), cfg.Turns, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single fiber vs comparison).
//
// Parameters:
//   - fibers: The fiber presets that will be simulated.
//   - out: The writer for standard output.
func PrintExecutionMode(fibers []fiber.FiberType, out io.Writer) {
	var modeDesc string
	if len(fibers) > 1 {
		modeDesc = "Comparison of all fiber types"
	} else {
		modeDesc = fmt.Sprintf("Single simulation for the %s%s%s fiber",
			ui.ColorGreen(), fibers[0].Name, ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
