package loss

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/navaneethred/opticfibresimulation/internal/fiber"
)

// TestLengthLoss_Monotonic_PropertyBased verifies that at any fixed
// temperature, loss never decreases when the run gets longer. This is the
// defining property of linear attenuation with a non-negative derating term.
func TestLengthLoss_Monotonic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, ft := range fiber.All() {
		ft := ft
		properties.Property(ft.Name+" length loss is monotonically non-decreasing", prop.ForAll(
			func(a, b, tempC float64) bool {
				lo, hi := a, b
				if lo > hi {
					lo, hi = hi, lo
				}
				lossLo, err := LengthLoss(ft, lo, tempC)
				if err != nil {
					t.Logf("LengthLoss(%v): %v", lo, err)
					return false
				}
				lossHi, err := LengthLoss(ft, hi, tempC)
				if err != nil {
					t.Logf("LengthLoss(%v): %v", hi, err)
					return false
				}
				return lossLo <= lossHi
			},
			gen.Float64Range(0, 10_000),
			gen.Float64Range(0, 10_000),
			gen.Float64Range(-60, 85),
		))
	}

	properties.TestingRun(t)
}

// TestBendingLoss_Baseline_PropertyBased verifies the documented baseline:
// at exactly the ideal radius the per-bend loss equals the base constant,
// for every preset and any temperature.
func TestBendingLoss_Baseline_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, ft := range fiber.All() {
		ft := ft
		properties.Property(ft.Name+" loss at the ideal radius equals the base constant", prop.ForAll(
			func(tempC float64) bool {
				got, err := BendingLoss(ft, ft.IdealBendRadiusCm, tempC)
				if err != nil {
					return false
				}
				return got == ft.BaseBendLossDB
			},
			gen.Float64Range(-60, 85),
		))
	}

	properties.TestingRun(t)
}

// TestBendingLoss_StrictlyDecreasing_PropertyBased verifies that a looser
// bend always loses strictly less than a tighter one.
func TestBendingLoss_StrictlyDecreasing_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, ft := range fiber.All() {
		ft := ft
		properties.Property(ft.Name+" loss strictly decreases as the bend relaxes", prop.ForAll(
			func(tight, factor float64) bool {
				loose := tight * factor
				lossTight, err := BendingLoss(ft, tight, 25)
				if err != nil {
					return false
				}
				lossLoose, err := BendingLoss(ft, loose, 25)
				if err != nil {
					return false
				}
				return lossTight > lossLoose
			},
			gen.Float64Range(0.1, 20),
			gen.Float64Range(1.1, 10),
		))
	}

	properties.TestingRun(t)
}

// TestTurnsLoss_Linear_PropertyBased verifies exact linearity: n turns lose
// exactly n times one turn, as a single floating-point multiply.
func TestTurnsLoss_Linear_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, ft := range fiber.All() {
		ft := ft
		properties.Property(ft.Name+" turns loss is exactly n times the per-bend loss", prop.ForAll(
			func(radiusCm float64, turns int) bool {
				perTurn, err := BendingLoss(ft, radiusCm, 25)
				if err != nil {
					return false
				}
				total, err := TurnsLoss(ft, radiusCm, turns, 25)
				if err != nil {
					return false
				}
				return total == float64(turns)*perTurn
			},
			gen.Float64Range(0.1, 50),
			gen.IntRange(0, 1000),
		))
	}

	properties.TestingRun(t)
}

// TestLengthLoss_TemperatureSymmetry_PropertyBased verifies derating depends
// only on the distance from the reference temperature, not its sign.
func TestLengthLoss_TemperatureSymmetry_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ft := fiber.MustGet("G.652D")
	properties.Property("derating is symmetric around the reference temperature", prop.ForAll(
		func(lengthKm, delta float64) bool {
			above, err := LengthLoss(ft, lengthKm, ReferenceTemperatureC+delta)
			if err != nil {
				return false
			}
			below, err := LengthLoss(ft, lengthKm, ReferenceTemperatureC-delta)
			if err != nil {
				return false
			}
			return above == below
		},
		gen.Float64Range(0, 1_000),
		gen.Float64Range(0, 60),
	))

	properties.TestingRun(t)
}

// TestOutputCurrent_PropertyBased verifies the dB conversion: output never
// exceeds input for non-negative loss and shrinks strictly as loss grows.
func TestOutputCurrent_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("output current is bounded by input and decreasing in loss", prop.ForAll(
		func(inputUA, lossA, lossB float64) bool {
			lo, hi := lossA, lossB
			if lo > hi {
				lo, hi = hi, lo
			}
			outLo := OutputCurrentUA(inputUA, lo)
			outHi := OutputCurrentUA(inputUA, hi)
			if outLo > inputUA || outHi > inputUA {
				return false
			}
			if math.Abs(hi-lo) < 1e-9 {
				return true
			}
			return outLo >= outHi
		},
		gen.Float64Range(1, 10_000),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
	))

	properties.TestingRun(t)
}
