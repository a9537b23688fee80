// Package chart renders simulation output as self-contained HTML charts
// using go-echarts. Sweeps and propagation profiles become line charts,
// Monte Carlo output becomes a bar histogram. Rendering writes a single
// HTML file the caller names; nothing else is persisted.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/raysim"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
)

// Series pairs a display name with the sweep it plots. Multi-series charts
// take one Series per fiber type.
type Series struct {
	// Name labels the series in the legend.
	Name string
	// Sweep supplies the points.
	Sweep *sweep.Series
}

// AxisTitles carries the axis labels, units included.
type AxisTitles struct {
	X string
	Y string
}

// SweepTitles returns the conventional axis titles for a sweep of the given
// mode name ("length", "bending", or "turns").
func SweepTitles(mode string) AxisTitles {
	switch mode {
	case "length":
		return AxisTitles{X: "Length (km)", Y: "Loss (dB)"}
	case "bending":
		return AxisTitles{X: "Bend radius (cm)", Y: "Loss (dB)"}
	case "turns":
		return AxisTitles{X: "Turns", Y: "Loss (dB)"}
	default:
		return AxisTitles{X: mode, Y: "Loss (dB)"}
	}
}

// SweepChart builds a line chart from one or more sweep series. All series
// must share the same axis; the first series supplies the x values.
//
// Parameters:
//   - title: The chart page title.
//   - axes: The axis labels.
//   - series: One or more sweeps to plot.
//
// Returns:
//   - *charts.Line: The configured chart, ready to render.
//   - error: An InvalidParameterError if no series are given.
func SweepChart(title string, axes AxisTitles, series ...Series) (*charts.Line, error) {
	if len(series) == 0 {
		return nil, apperrors.NewInvalidParameter("series", len(series), "need at least one series to chart")
	}

	line := charts.NewLine()
	applyLineOptions(line, title, axes)

	line.SetXAxis(series[0].Sweep.Xs())
	for _, s := range series {
		data := make([]opts.LineData, s.Sweep.Len())
		for i := 0; i < s.Sweep.Len(); i++ {
			data[i] = opts.LineData{Value: s.Sweep.At(i).LossDB}
		}
		line.AddSeries(s.Name, data)
	}
	return line, nil
}

// ProfileChart builds a line chart from a hybrid propagation profile, with
// the bend event positions marked in the series name.
func ProfileChart(title string, result raysim.HybridResult) (*charts.Line, error) {
	if len(result.Profile) == 0 {
		return nil, apperrors.NewInvalidParameter("profile", 0, "empty propagation profile")
	}

	line := charts.NewLine()
	applyLineOptions(line, title, AxisTitles{X: "Distance (km)", Y: "Cumulative loss (dB)"})

	xs := make([]float64, len(result.Profile))
	data := make([]opts.LineData, len(result.Profile))
	for i, pt := range result.Profile {
		xs[i] = pt.DistanceKm
		data[i] = opts.LineData{Value: pt.LossDB}
	}
	line.SetXAxis(xs)
	line.AddSeries(fmt.Sprintf("Cumulative loss (%d bend events)", len(result.EventStepsKm)), data)
	return line, nil
}

// HistogramChart builds a bar chart from a Monte Carlo output current
// histogram. Each bar is labeled with its bucket's lower edge.
func HistogramChart(title string, hist raysim.Histogram) (*charts.Bar, error) {
	if len(hist.Counts) == 0 {
		return nil, apperrors.NewInvalidParameter("histogram", 0, "empty histogram")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithToolboxOpts(defaultToolbox()),
		charts.WithXAxisOpts(opts.XAxis{Name: "Output current (µA)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Rays"}),
	)

	labels := make([]string, len(hist.Counts))
	data := make([]opts.BarData, len(hist.Counts))
	for i, count := range hist.Counts {
		labels[i] = fmt.Sprintf("%.1f", hist.Edges[i])
		data[i] = opts.BarData{Value: count}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Rays", data)
	return bar, nil
}

// Renderable is the part of a go-echarts chart this package needs for
// output. Both charts.Line and charts.Bar satisfy it.
type Renderable interface {
	Render(w io.Writer) error
}

// WriteHTML renders a chart to the given path, creating parent directories
// as needed.
func WriteHTML(c Renderable, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "creating chart directory %q", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return apperrors.WrapError(err, "creating chart file %q", path)
	}
	defer f.Close()

	if err := c.Render(f); err != nil {
		return apperrors.WrapError(err, "rendering chart to %q", path)
	}
	return nil
}

// applyLineOptions sets the shared global options of a line chart: titles,
// tooltip with crosshair, slider and inside zoom, and the save/restore
// toolbox.
func applyLineOptions(line *charts.Line, title string, axes AxisTitles) {
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithToolboxOpts(defaultToolbox()),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      axes.X,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      axes.Y,
			Type:      "value",
			Show:      opts.Bool(true),
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)
}

func defaultToolbox() opts.Toolbox {
	return opts.Toolbox{
		Show: opts.Bool(true),
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  opts.Bool(true),
				Type:  "png",
				Name:  "chart",
				Title: "Save as image",
			},
			Restore: &opts.ToolBoxFeatureRestore{
				Show:  opts.Bool(true),
				Title: "refresh",
			},
		},
	}
}
