package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/raysim"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
)

func buildTestSweep(t *testing.T, name string) Series {
	t.Helper()
	ft := fiber.MustGet(name)
	s, err := sweep.Build(loss.ModeLength, loss.Request{Fiber: ft, TemperatureC: 25}, sweep.Range{
		From: 0, To: 100, Samples: 20,
	})
	if err != nil {
		t.Fatalf("building sweep: %v", err)
	}
	return Series{Name: name, Sweep: s}
}

func TestSweepChart_SingleSeries(t *testing.T) {
	t.Parallel()
	line, err := SweepChart("Attenuation vs length", SweepTitles("length"), buildTestSweep(t, "G.652D"))
	if err != nil {
		t.Fatalf("SweepChart returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Attenuation vs length", "G.652D", "Length (km)", "Loss (dB)"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML should contain %q", want)
		}
	}
}

func TestSweepChart_MultiSeriesOnePerFiber(t *testing.T) {
	t.Parallel()
	series := make([]Series, 0, fiber.Count())
	for _, name := range fiber.Names() {
		series = append(series, buildTestSweep(t, name))
	}

	line, err := SweepChart("All fiber types", SweepTitles("length"), series...)
	if err != nil {
		t.Fatalf("SweepChart returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	html := buf.String()
	for _, name := range fiber.Names() {
		if !strings.Contains(html, name) {
			t.Errorf("rendered HTML should contain series %q", name)
		}
	}
}

func TestSweepChart_NoSeries(t *testing.T) {
	t.Parallel()
	_, err := SweepChart("empty", SweepTitles("length"))
	if !apperrors.IsInvalidParameter(err) {
		t.Errorf("err = %v, want InvalidParameterError", err)
	}
}

func TestSweepTitles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode  string
		wantX string
	}{
		{"length", "Length (km)"},
		{"bending", "Bend radius (cm)"},
		{"turns", "Turns"},
	}
	for _, tt := range tests {
		if got := SweepTitles(tt.mode); got.X != tt.wantX {
			t.Errorf("SweepTitles(%q).X = %q, want %q", tt.mode, got.X, tt.wantX)
		}
	}
}

func TestProfileChart(t *testing.T) {
	t.Parallel()
	res, err := raysim.NewSimulator(5).Hybrid(context.Background(), raysim.HybridParams{
		Fiber:    fiber.MustGet("G.652D"),
		LengthKm: 10,
		Steps:    40,
		Events:   4,
	})
	if err != nil {
		t.Fatalf("Hybrid returned error: %v", err)
	}

	line, err := ProfileChart("Propagation profile", res)
	if err != nil {
		t.Fatalf("ProfileChart returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Propagation profile", "Distance (km)", "bend events"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML should contain %q", want)
		}
	}
}

func TestProfileChart_Empty(t *testing.T) {
	t.Parallel()
	_, err := ProfileChart("empty", raysim.HybridResult{})
	if !apperrors.IsInvalidParameter(err) {
		t.Errorf("err = %v, want InvalidParameterError", err)
	}
}

func TestHistogramChart(t *testing.T) {
	t.Parallel()
	res, err := raysim.NewSimulator(5).MonteCarlo(context.Background(), raysim.MonteCarloParams{
		Fiber:    fiber.MustGet("G.657A"),
		LengthKm: 5,
		Rays:     500,
	})
	if err != nil {
		t.Fatalf("MonteCarlo returned error: %v", err)
	}

	bar, err := HistogramChart("Output current distribution", res.Histogram)
	if err != nil {
		t.Fatalf("HistogramChart returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Output current distribution") {
		t.Error("rendered HTML should contain the chart title")
	}
}

func TestHistogramChart_Empty(t *testing.T) {
	t.Parallel()
	_, err := HistogramChart("empty", raysim.Histogram{})
	if !apperrors.IsInvalidParameter(err) {
		t.Errorf("err = %v, want InvalidParameterError", err)
	}
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	line, err := SweepChart("file output", SweepTitles("length"), buildTestSweep(t, "G.652D"))
	if err != nil {
		t.Fatalf("SweepChart returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "chart.html")
	if err := WriteHTML(line, path); err != nil {
		t.Fatalf("WriteHTML returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart file: %v", err)
	}
	if !strings.Contains(string(content), "file output") {
		t.Error("chart file should contain the chart title")
	}
}
