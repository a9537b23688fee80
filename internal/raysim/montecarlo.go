// Package raysim implements the random-process simulators: Monte Carlo ray
// bundles with perturbed bend radii, and hybrid step propagation with
// discrete bend events. All randomness flows from a caller-supplied seed,
// so two runs with equal parameters are identical; distinct runs must use
// distinct Simulator instances.
package raysim

import (
	"context"
	"math"
	"math/rand"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
)

// ─────────────────────────────────────────────────────────────────────────────
// Simulation Defaults
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultRays is the bundle size when a request does not specify one.
	DefaultRays = 10_000

	// DefaultBendsPerRay is how many bends each ray encounters.
	DefaultBendsPerRay = 5

	// DefaultRadiusMeanCm and DefaultRadiusStdDevCm parameterize the
	// normal distribution the per-ray bend radius is drawn from.
	DefaultRadiusMeanCm   = 5.0
	DefaultRadiusStdDevCm = 0.5

	// MinBendRadiusCm floors sampled radii; the normal tail would
	// otherwise produce zero or negative radii.
	MinBendRadiusCm = 1.0

	// DefaultHistogramBins is the bin count for output current histograms.
	DefaultHistogramBins = 30

	// cancelCheckInterval is how many rays are traced between context
	// checks.
	cancelCheckInterval = 4096
)

// MonteCarloParams configures a ray bundle simulation. Zero values select
// the documented defaults.
type MonteCarloParams struct {
	// Fiber is the preset under simulation.
	Fiber fiber.FiberType
	// LengthKm is the fiber length in kilometres. Must be >= 0.
	LengthKm float64
	// TemperatureC is the ambient temperature in °C.
	TemperatureC float64
	// Rays is the bundle size. Zero selects DefaultRays.
	Rays int
	// BendsPerRay is the bend count each ray encounters. Zero selects
	// DefaultBendsPerRay.
	BendsPerRay int
	// RadiusMeanCm is the mean of the sampled bend radius. Zero selects
	// DefaultRadiusMeanCm.
	RadiusMeanCm float64
	// RadiusStdDevCm is the standard deviation of the sampled bend
	// radius. Zero selects DefaultRadiusStdDevCm; negative is rejected.
	RadiusStdDevCm float64
	// InputCurrentUA is the input current in µA. Zero selects the
	// standard 1000 µA.
	InputCurrentUA float64
	// Bins is the histogram bin count. Zero selects DefaultHistogramBins.
	Bins int
}

// MonteCarloResult is the outcome of a ray bundle simulation.
type MonteCarloResult struct {
	// OutputCurrentsUA holds one output current per ray, in trace order.
	OutputCurrentsUA []float64
	// MeanUA is the average output current across the bundle.
	MeanUA float64
	// StdDevUA is the population standard deviation of output currents.
	StdDevUA float64
	// Histogram buckets the output currents.
	Histogram Histogram
}

// Histogram is a fixed-width bucketing of sample values. Edges has one
// more element than Counts; bucket i spans [Edges[i], Edges[i+1]), with
// the final bucket closed on both ends.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// Simulator owns the random source for the package's simulations.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator creates a Simulator with a deterministic source. Equal
// seeds reproduce runs exactly.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// MonteCarlo traces a bundle of rays through the fiber. Every ray suffers
// the deterministic length loss plus BendsPerRay bends at a radius drawn
// from a clamped normal distribution, and reports the current surviving
// its total loss.
//
// Parameters:
//   - ctx: Cancels a long trace between chunks of rays.
//   - p: The simulation parameters.
//
// Returns:
//   - MonteCarloResult: Per-ray currents, their statistics, and histogram.
//   - error: An InvalidParameterError for out-of-range parameters, or the
//     context error if canceled.
func (s *Simulator) MonteCarlo(ctx context.Context, p MonteCarloParams) (MonteCarloResult, error) {
	rays := p.Rays
	if rays == 0 {
		rays = DefaultRays
	}
	if rays < 1 {
		return MonteCarloResult{}, apperrors.NewInvalidParameter("rays", p.Rays, "must be >= 1")
	}
	bends := p.BendsPerRay
	if bends == 0 {
		bends = DefaultBendsPerRay
	}
	if bends < 0 {
		return MonteCarloResult{}, apperrors.NewInvalidParameter("bends_per_ray", p.BendsPerRay, "must be >= 0")
	}
	mean := p.RadiusMeanCm
	if mean == 0 {
		mean = DefaultRadiusMeanCm
	}
	if mean <= 0 || math.IsNaN(mean) {
		return MonteCarloResult{}, apperrors.NewInvalidParameter("radius_mean_cm", p.RadiusMeanCm, "must be > 0")
	}
	stddev := p.RadiusStdDevCm
	if stddev == 0 {
		stddev = DefaultRadiusStdDevCm
	}
	if stddev < 0 || math.IsNaN(stddev) {
		return MonteCarloResult{}, apperrors.NewInvalidParameter("radius_stddev_cm", p.RadiusStdDevCm, "must be >= 0")
	}
	input := p.InputCurrentUA
	if input == 0 {
		input = loss.DefaultInputCurrentUA
	}
	bins := p.Bins
	if bins == 0 {
		bins = DefaultHistogramBins
	}
	if bins < 1 {
		return MonteCarloResult{}, apperrors.NewInvalidParameter("bins", p.Bins, "must be >= 1")
	}

	lengthLoss, err := loss.LengthLoss(p.Fiber, p.LengthKm, p.TemperatureC)
	if err != nil {
		return MonteCarloResult{}, err
	}

	currents := make([]float64, rays)
	for i := 0; i < rays; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return MonteCarloResult{}, apperrors.WrapError(err, "ray trace canceled at ray %d of %d", i, rays)
			}
		}
		total := lengthLoss
		for b := 0; b < bends; b++ {
			radius := s.rng.NormFloat64()*stddev + mean
			if radius < MinBendRadiusCm {
				radius = MinBendRadiusCm
			}
			perBend, err := loss.BendingLoss(p.Fiber, radius, p.TemperatureC)
			if err != nil {
				return MonteCarloResult{}, err
			}
			total += perBend
		}
		currents[i] = loss.OutputCurrentUA(input, total)
	}

	meanUA, stdUA := meanStdDev(currents)
	return MonteCarloResult{
		OutputCurrentsUA: currents,
		MeanUA:           meanUA,
		StdDevUA:         stdUA,
		Histogram:        buildHistogram(currents, bins),
	}, nil
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

// buildHistogram buckets values into bins of equal width spanning the
// sample range. A degenerate range (all values equal) widens to a unit
// span so the single occupied bucket is still well-defined.
func buildHistogram(values []float64, bins int) Histogram {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return Histogram{Edges: edges, Counts: counts}
}
