package loss

import (
	"math"
	"testing"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
)

// TestWaveguideBendLoss_Monotonic verifies loss strictly decreases as the
// bend relaxes.
func TestWaveguideBendLoss_Monotonic(t *testing.T) {
	t.Parallel()
	for _, ft := range fiber.All() {
		radii := []float64{0.3, 0.5, 0.8, 1.0, 1.5, 2.0, 3.0, 5.0}
		prev := math.Inf(1)
		for _, r := range radii {
			got, err := WaveguideBendLoss(ft, r)
			if err != nil {
				t.Fatalf("%s at %v cm: %v", ft.Name, r, err)
			}
			if got < 0 {
				t.Errorf("%s at %v cm: loss %v is negative", ft.Name, r, got)
			}
			if got >= prev {
				t.Errorf("%s: loss at %v cm (%v) should be below the tighter bend's (%v)", ft.Name, r, got, prev)
			}
			prev = got
		}
	}
}

// TestWaveguideBendLoss_Magnitudes checks the model's characteristic shape:
// negligible at the ideal radius scale, significant in the sub-centimetre
// range.
func TestWaveguideBendLoss_Magnitudes(t *testing.T) {
	t.Parallel()
	ft := fiber.MustGet("G.652D")

	atIdeal, err := WaveguideBendLoss(ft, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	if atIdeal > 1e-10 {
		t.Errorf("loss at 5 cm = %v, want negligible", atIdeal)
	}

	tight, err := WaveguideBendLoss(ft, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if tight < 1.0 || tight > 2.0 {
		t.Errorf("loss at 0.5 cm = %v, want on the order of 1.4 dB", tight)
	}
}

// TestWaveguideBendLoss_ContrastOrdering verifies that higher index
// contrast buys bend insensitivity: at the same radius, G.655 and G.657B
// must lose less than standard G.652D.
func TestWaveguideBendLoss_ContrastOrdering(t *testing.T) {
	t.Parallel()
	const radiusCm = 1.0

	standard, err := WaveguideBendLoss(fiber.MustGet("G.652D"), radiusCm)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"G.655", "G.657B"} {
		got, err := WaveguideBendLoss(fiber.MustGet(name), radiusCm)
		if err != nil {
			t.Fatal(err)
		}
		if got >= standard {
			t.Errorf("%s loss %v should be below G.652D loss %v at %v cm", name, got, standard, radiusCm)
		}
	}
}

// TestWaveguideBendLoss_InvalidRadius verifies validation matches the
// empirical model's.
func TestWaveguideBendLoss_InvalidRadius(t *testing.T) {
	t.Parallel()
	ft := fiber.MustGet("G.657A")
	for _, bad := range []float64{0, -1, math.NaN()} {
		if _, err := WaveguideBendLoss(ft, bad); !apperrors.IsInvalidParameter(err) {
			t.Errorf("radius %v: error = %v, want InvalidParameterError", bad, err)
		}
	}
}

// TestCompute_WaveguideModel verifies model selection through the request.
func TestCompute_WaveguideModel(t *testing.T) {
	t.Parallel()
	req := Request{
		Fiber:        fiber.MustGet("G.652D"),
		BendRadiusCm: 0.5,
		Turns:        3,
		Model:        ModelWaveguide,
	}

	res, err := Compute(ModeBending, req)
	if err != nil {
		t.Fatal(err)
	}
	want, err := WaveguideBendLoss(req.Fiber, req.BendRadiusCm)
	if err != nil {
		t.Fatal(err)
	}
	if res.LossDB != want {
		t.Errorf("bending via request = %v, want waveguide value %v", res.LossDB, want)
	}

	turns, err := Compute(ModeTurns, req)
	if err != nil {
		t.Fatal(err)
	}
	if turns.LossDB != 3*want {
		t.Errorf("turns via request = %v, want %v", turns.LossDB, 3*want)
	}
}
