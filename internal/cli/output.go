// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile], [WriteSweepToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
	"github.com/navaneethred/opticfibresimulation/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose enables the itemized loss breakdown display.
	Verbose bool
}

// DisplayResult shows a single-point result: the loss of the selected
// component and the attenuated output current.
//
// Parameters:
//   - res: The computed result.
//   - req: The request that produced it, for labeling.
//   - duration: The computation duration.
//   - out: The output writer.
func DisplayResult(res loss.Result, req loss.Request, duration time.Duration, out io.Writer) {
	fmt.Fprintf(out, "\n--- Simulation Result ---\n")
	fmt.Fprintf(out, "Fiber:          %s%s%s (%s)\n",
		ui.ColorBlue(), req.Fiber.Name, ui.ColorReset(), req.Fiber.Description)
	fmt.Fprintf(out, "Mode:           %s%s%s\n", ui.ColorMagenta(), res.Mode, ui.ColorReset())
	fmt.Fprintf(out, "Loss:           %s%.4f dB%s\n", ui.ColorGreen(), res.LossDB, ui.ColorReset())
	fmt.Fprintf(out, "Output current: %s%.4f µA%s\n", ui.ColorGreen(), res.OutputCurrentUA, ui.ColorReset())
	fmt.Fprintf(out, "Duration:       %s%s%s\n",
		ui.ColorYellow(), FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayBreakdown shows the itemized loss components the way an
// installation report presents them.
//
// Parameters:
//   - bd: The itemized breakdown.
//   - out: The output writer.
func DisplayBreakdown(bd loss.Breakdown, out io.Writer) {
	fmt.Fprintf(out, "\n--- Loss Breakdown ---\n")
	fmt.Fprintf(out, "Length loss:        %10.4f dB\n", bd.LengthLossDB)
	fmt.Fprintf(out, "Bend loss per turn: %10.4f dB\n", bd.BendLossPerTurnDB)
	fmt.Fprintf(out, "Turns loss:         %10.4f dB\n", bd.TurnsLossDB)
	fmt.Fprintf(out, "%sTotal loss:         %10.4f dB%s\n",
		ui.ColorBold(), bd.TotalLossDB, ui.ColorReset())
	fmt.Fprintf(out, "Output current:     %10.4f µA\n", bd.OutputCurrentUA)
}

// DisplaySweepSummary shows the endpoints and extrema of a swept curve.
//
// Parameters:
//   - series: The computed series.
//   - out: The output writer.
func DisplaySweepSummary(series *sweep.Series, out io.Writer) {
	points := series.Points()
	if len(points) == 0 {
		return
	}
	minY, maxY := points[0].LossDB, points[0].LossDB
	for _, p := range points[1:] {
		if p.LossDB < minY {
			minY = p.LossDB
		}
		if p.LossDB > maxY {
			maxY = p.LossDB
		}
	}

	first, last := points[0], points[len(points)-1]
	fmt.Fprintf(out, "\n--- Sweep Summary (%s) ---\n", series.Mode())
	fmt.Fprintf(out, "Samples: %s%d%s from %s%g%s to %s%g%s\n",
		ui.ColorCyan(), len(points), ui.ColorReset(),
		ui.ColorCyan(), first.X, ui.ColorReset(),
		ui.ColorCyan(), last.X, ui.ColorReset())
	fmt.Fprintf(out, "Loss range: %s%.4f dB%s to %s%.4f dB%s\n",
		ui.ColorGreen(), minY, ui.ColorReset(), ui.ColorGreen(), maxY, ui.ColorReset())
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
//
// Parameters:
//   - res: The computed result.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(res loss.Result) string {
	return fmt.Sprintf("%.6f", res.LossDB)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - res: The computed result.
func DisplayQuietResult(out io.Writer, res loss.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// ensureParentDir creates the directory for path if it does not exist.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteResultToFile writes a single-point result to a file.
//
// Parameters:
//   - res: The computed result.
//   - req: The request that produced it.
//   - duration: The computation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res loss.Result, req loss.Request, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := ensureParentDir(config.OutputFile); err != nil {
		return err
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Fiber Loss Simulation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Fiber: %s\n", req.Fiber.Name)
	fmt.Fprintf(file, "# Mode: %s\n", res.Mode)
	fmt.Fprintf(file, "# Length: %g km\n", req.LengthKm)
	fmt.Fprintf(file, "# Temperature: %g °C\n", req.TemperatureC)
	fmt.Fprintf(file, "# Bend radius: %g cm\n", req.BendRadiusCm)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "loss_db = %.6f\n", res.LossDB)
	fmt.Fprintf(file, "output_current_ua = %.6f\n", res.OutputCurrentUA)

	return nil
}

// WriteSweepToFile writes a swept curve to a file as whitespace-separated
// x/loss pairs, one sample per line, with a commented header.
//
// Parameters:
//   - series: The computed series.
//   - req: The request the sweep was built from.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteSweepToFile(series *sweep.Series, req loss.Request, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := ensureParentDir(config.OutputFile); err != nil {
		return err
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fiber Loss Sweep\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Fiber: %s\n", req.Fiber.Name)
	fmt.Fprintf(file, "# Mode: %s\n", series.Mode())
	fmt.Fprintf(file, "# Samples: %d\n", series.Len())
	fmt.Fprintf(file, "\n")

	for _, p := range series.Points() {
		fmt.Fprintf(file, "%g\t%.6f\n", p.X, p.LossDB)
	}
	return nil
}

// DisplayResultWithConfig displays a single-point result with the given
// output configuration. This is a unified function that handles all output
// modes.
//
// Parameters:
//   - out: The output writer.
//   - res: The computed result.
//   - bd: The itemized breakdown, shown in verbose mode.
//   - req: The request that produced the result.
//   - duration: The computation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, res loss.Result, bd loss.Breakdown, req loss.Request, duration time.Duration, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(res, req, duration, out)
		if config.Verbose {
			DisplayBreakdown(bd, out)
		}
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(res, req, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
