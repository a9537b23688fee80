// Package sweep produces plottable loss curves by varying one request
// parameter while holding the rest fixed. A Series is an immutable value:
// every point is recomputed on demand from the originating request, so
// iteration is lazy, finite, and yields identical results on every pass.
package sweep

import (
	"math"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
)

// DefaultSamples is the sample count used when a range does not specify one.
const DefaultSamples = 100

// Range describes the span of the swept parameter. For the length and
// bending modes the span is divided into Samples evenly spaced points with
// both endpoints included. For the turns mode From and To must be whole
// numbers and every integer between them is a sample; Samples is ignored.
type Range struct {
	// From is the first sampled value.
	From float64
	// To is the last sampled value. Must exceed From for float sweeps.
	To float64
	// Samples is the number of points for float sweeps. Zero selects
	// DefaultSamples; values below 2 are rejected.
	Samples int
}

// Point is one sample of a sweep.
type Point struct {
	// X is the swept parameter value.
	X float64
	// LossDB is the loss at X.
	LossDB float64
}

// Series is a lazily evaluated, restartable sweep result. Construct one
// with Build or BuildTotal; the zero value is empty.
type Series struct {
	mode loss.Mode
	xs   axis
	eval func(x float64) (float64, error)
}

// axis produces the sample positions of a series.
type axis struct {
	from, to float64
	n        int
	integer  bool
}

// Build evaluates the loss component selected by mode across the range,
// holding the request's other parameters fixed.
//
// Parameters:
//   - mode: The component to evaluate, which also names the swept
//     parameter (length_km, bend_radius_cm, or turns).
//   - req: The fixed parameters.
//   - rng: The span of the swept parameter.
//
// Returns:
//   - *Series: The lazy sweep series.
//   - error: An InvalidParameterError if the range or fixed parameters
//     cannot produce a valid sweep.
func Build(mode loss.Mode, req loss.Request, rng Range) (*Series, error) {
	xs, err := buildAxis(mode, rng)
	if err != nil {
		return nil, err
	}
	s := &Series{
		mode: mode,
		xs:   xs,
		eval: func(x float64) (float64, error) {
			r, err := loss.Compute(mode, requestAt(mode, req, x))
			if err != nil {
				return 0, err
			}
			return r.LossDB, nil
		},
	}
	return s, s.probe()
}

// BuildTotal evaluates the total loss (length plus accumulated bends)
// across the range, the way an installation report graphs it. The swept
// parameter is still selected by mode; every other request parameter,
// including the turn count, contributes to each point.
func BuildTotal(mode loss.Mode, req loss.Request, rng Range) (*Series, error) {
	xs, err := buildAxis(mode, rng)
	if err != nil {
		return nil, err
	}
	s := &Series{
		mode: mode,
		xs:   xs,
		eval: func(x float64) (float64, error) {
			bd, err := loss.ComputeBreakdown(requestAt(mode, req, x))
			if err != nil {
				return 0, err
			}
			return bd.TotalLossDB, nil
		},
	}
	return s, s.probe()
}

// Mode returns the component the series evaluates.
func (s *Series) Mode() loss.Mode { return s.mode }

// Len returns the number of sample points.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return s.xs.n
}

// At returns sample i. Points are recomputed on every call, so repeated
// iteration is reproducible by construction. At panics if i is out of
// range, like a slice index.
func (s *Series) At(i int) Point {
	if i < 0 || i >= s.Len() {
		panic("sweep: index out of range")
	}
	x := s.xs.at(i)
	y, err := s.eval(x)
	if err != nil {
		// Construction probes the full range; a failure here is a bug.
		panic(err)
	}
	return Point{X: x, LossDB: y}
}

// Points materializes the whole series in order.
func (s *Series) Points() []Point {
	pts := make([]Point, s.Len())
	for i := range pts {
		pts[i] = s.At(i)
	}
	return pts
}

// Xs returns just the sample positions in order.
func (s *Series) Xs() []float64 {
	xs := make([]float64, s.Len())
	for i := range xs {
		xs[i] = s.xs.at(i)
	}
	return xs
}

// probe evaluates both endpoints so invalid fixed parameters surface at
// construction instead of mid-iteration.
func (s *Series) probe() error {
	if s.xs.n == 0 {
		return nil
	}
	if _, err := s.eval(s.xs.at(0)); err != nil {
		return err
	}
	if _, err := s.eval(s.xs.at(s.xs.n - 1)); err != nil {
		return err
	}
	return nil
}

// at returns sample position i. For float axes the final sample is pinned
// to the exact upper bound so rounding can never shorten the span.
func (a axis) at(i int) float64 {
	if a.integer {
		return a.from + float64(i)
	}
	if i == a.n-1 {
		return a.to
	}
	return a.from + float64(i)*(a.to-a.from)/float64(a.n-1)
}

func buildAxis(mode loss.Mode, rng Range) (axis, error) {
	switch mode {
	case loss.ModeLength:
		if rng.From < 0 || math.IsNaN(rng.From) {
			return axis{}, apperrors.NewInvalidParameter("range.from", rng.From, "must be >= 0 for a length sweep")
		}
		return floatAxis(rng)
	case loss.ModeBending:
		if rng.From <= 0 || math.IsNaN(rng.From) {
			return axis{}, apperrors.NewInvalidParameter("range.from", rng.From, "must be > 0 for a bend radius sweep")
		}
		return floatAxis(rng)
	case loss.ModeTurns:
		return turnsAxis(rng)
	default:
		return axis{}, apperrors.NewInvalidParameter("mode", mode, "unknown sweep mode")
	}
}

func floatAxis(rng Range) (axis, error) {
	if math.IsNaN(rng.To) || rng.To <= rng.From {
		return axis{}, apperrors.NewInvalidParameter("range.to", rng.To, "must exceed range.from")
	}
	n := rng.Samples
	if n == 0 {
		n = DefaultSamples
	}
	if n < 2 {
		return axis{}, apperrors.NewInvalidParameter("range.samples", rng.Samples, "must be >= 2")
	}
	return axis{from: rng.From, to: rng.To, n: n}, nil
}

func turnsAxis(rng Range) (axis, error) {
	if rng.From < 0 || rng.From != math.Trunc(rng.From) || math.IsNaN(rng.From) {
		return axis{}, apperrors.NewInvalidParameter("range.from", rng.From, "must be a whole number >= 0 for a turns sweep")
	}
	if rng.To < rng.From || rng.To != math.Trunc(rng.To) || math.IsNaN(rng.To) {
		return axis{}, apperrors.NewInvalidParameter("range.to", rng.To, "must be a whole number >= range.from")
	}
	n := int(rng.To-rng.From) + 1
	return axis{from: rng.From, to: rng.To, n: n, integer: true}, nil
}

// requestAt substitutes the swept value into a copy of the request.
func requestAt(mode loss.Mode, req loss.Request, x float64) loss.Request {
	switch mode {
	case loss.ModeLength:
		req.LengthKm = x
	case loss.ModeBending:
		req.BendRadiusCm = x
	case loss.ModeTurns:
		req.Turns = int(x)
	}
	return req
}
