package sweep

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
)

// TestSweep_ExactSampleCount_PropertyBased verifies a float sweep of N
// samples yields exactly N points with strictly increasing positions.
func TestSweep_ExactSampleCount_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, ft := range fiber.All() {
		ft := ft
		properties.Property(ft.Name+" sweep has exactly N strictly increasing samples", prop.ForAll(
			func(from, span float64, samples int) bool {
				req := loss.Request{Fiber: ft, TemperatureC: 25, BendRadiusCm: 5}
				s, err := Build(loss.ModeLength, req, Range{From: from, To: from + span, Samples: samples})
				if err != nil {
					t.Logf("Build: %v", err)
					return false
				}
				if s.Len() != samples {
					return false
				}
				prev := s.At(0).X
				for i := 1; i < s.Len(); i++ {
					x := s.At(i).X
					if x <= prev {
						return false
					}
					prev = x
				}
				return prev == from+span
			},
			gen.Float64Range(0, 100),
			gen.Float64Range(0.1, 100),
			gen.IntRange(2, 500),
		))
	}

	properties.TestingRun(t)
}

// TestSweep_Reproducible_PropertyBased verifies the restartability
// contract: two independent builds from equal inputs, iterated twice each,
// produce identical points.
func TestSweep_Reproducible_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("equal inputs yield identical series on every pass", prop.ForAll(
		func(from, span float64, samples int, radius float64) bool {
			req := loss.Request{
				Fiber:        fiber.MustGet("G.657A"),
				TemperatureC: 31,
				BendRadiusCm: radius,
				Turns:        4,
			}
			rng := Range{From: from, To: from + span, Samples: samples}

			a, err := Build(loss.ModeBending, req, Range{From: radius, To: radius + span, Samples: samples})
			if err != nil {
				return false
			}
			b, err := Build(loss.ModeBending, req, Range{From: radius, To: radius + span, Samples: samples})
			if err != nil {
				return false
			}
			if a.Len() != b.Len() {
				return false
			}
			for i := 0; i < a.Len(); i++ {
				once, again := a.At(i), a.At(i)
				if once != again || once != b.At(i) {
					return false
				}
			}

			c, err := BuildTotal(loss.ModeLength, req, rng)
			if err != nil {
				return false
			}
			first, second := c.Points(), c.Points()
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 50),
		gen.Float64Range(0.5, 50),
		gen.IntRange(2, 200),
		gen.Float64Range(0.5, 15),
	))

	properties.TestingRun(t)
}

// TestTurnsSweep_Linearity_PropertyBased verifies every sample of a turns
// sweep equals the turn count times the per-bend loss.
func TestTurnsSweep_Linearity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, ft := range fiber.All() {
		ft := ft
		properties.Property(ft.Name+" turns sweep samples are n times the per-bend loss", prop.ForAll(
			func(radius float64, hi int) bool {
				req := loss.Request{Fiber: ft, TemperatureC: 25, BendRadiusCm: radius}
				s, err := Build(loss.ModeTurns, req, Range{From: 0, To: float64(hi)})
				if err != nil {
					return false
				}
				perTurn, err := loss.BendingLoss(ft, radius, 25)
				if err != nil {
					return false
				}
				if s.Len() != hi+1 {
					return false
				}
				for i := 0; i < s.Len(); i++ {
					p := s.At(i)
					if p.LossDB != float64(i)*perTurn {
						return false
					}
				}
				return true
			},
			gen.Float64Range(0.2, 25),
			gen.IntRange(0, 100),
		))
	}

	properties.TestingRun(t)
}
