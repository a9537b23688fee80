package raysim

import (
	"context"
	"math"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
)

const (
	// DefaultSteps is the slice count for a propagation profile when the
	// request does not specify one.
	DefaultSteps = 200

	// DefaultBendEvents is how many discrete bend events a profile
	// contains by default.
	DefaultBendEvents = 5

	// DefaultEventLossMeanDB and DefaultEventLossStdDevDB parameterize
	// the normal distribution each bend event's loss is drawn from.
	DefaultEventLossMeanDB   = 0.2
	DefaultEventLossStdDevDB = 0.05
)

// HybridParams configures a step-propagation profile. Zero values select
// the documented defaults.
type HybridParams struct {
	// Fiber is the preset under simulation.
	Fiber fiber.FiberType
	// LengthKm is the fiber length in kilometres. Must be > 0.
	LengthKm float64
	// TemperatureC is the ambient temperature in °C.
	TemperatureC float64
	// Steps is the number of equal slices the fiber is walked in. Zero
	// selects DefaultSteps.
	Steps int
	// Events is the number of discrete bend events. Zero selects
	// DefaultBendEvents; must not exceed Steps.
	Events int
	// EventLossMeanDB is the mean per-event loss. Zero selects
	// DefaultEventLossMeanDB.
	EventLossMeanDB float64
	// EventLossStdDevDB is the standard deviation of per-event loss.
	// Zero selects DefaultEventLossStdDevDB; negative is rejected.
	EventLossStdDevDB float64
}

// ProfilePoint is one sample of a cumulative loss profile.
type ProfilePoint struct {
	// DistanceKm is the position along the fiber.
	DistanceKm float64
	// LossDB is the total loss accumulated up to DistanceKm.
	LossDB float64
}

// HybridResult is the outcome of a step-propagation simulation.
type HybridResult struct {
	// Profile is the cumulative loss at the end of each slice, in walk
	// order. Its length equals the step count.
	Profile []ProfilePoint
	// EventStepsKm holds the positions of the bend events, ascending.
	EventStepsKm []float64
	// TotalLossDB is the loss at the far end of the fiber.
	TotalLossDB float64
}

// Hybrid walks the fiber in equal slices, accruing continuous attenuation
// and temperature derating per slice, with bend events of random magnitude
// at distinct random slices. The profile is what the cumulative loss graph
// of an OTDR trace looks like: a steady ramp with discrete steps.
//
// Parameters:
//   - ctx: Cancels the walk between slices.
//   - p: The simulation parameters.
//
// Returns:
//   - HybridResult: The cumulative profile and event positions.
//   - error: An InvalidParameterError for out-of-range parameters, or the
//     context error if canceled.
func (s *Simulator) Hybrid(ctx context.Context, p HybridParams) (HybridResult, error) {
	if p.LengthKm <= 0 || math.IsNaN(p.LengthKm) {
		return HybridResult{}, apperrors.NewInvalidParameter("length_km", p.LengthKm, "must be > 0")
	}
	steps := p.Steps
	if steps == 0 {
		steps = DefaultSteps
	}
	if steps < 1 {
		return HybridResult{}, apperrors.NewInvalidParameter("steps", p.Steps, "must be >= 1")
	}
	events := p.Events
	if events == 0 {
		events = DefaultBendEvents
	}
	if events < 0 {
		return HybridResult{}, apperrors.NewInvalidParameter("events", p.Events, "must be >= 0")
	}
	if events > steps {
		return HybridResult{}, apperrors.NewInvalidParameter("events", p.Events, "must not exceed the step count")
	}
	eventMean := p.EventLossMeanDB
	if eventMean == 0 {
		eventMean = DefaultEventLossMeanDB
	}
	eventStdDev := p.EventLossStdDevDB
	if eventStdDev == 0 {
		eventStdDev = DefaultEventLossStdDevDB
	}
	if eventStdDev < 0 || math.IsNaN(eventStdDev) {
		return HybridResult{}, apperrors.NewInvalidParameter("event_loss_stddev_db", p.EventLossStdDevDB, "must be >= 0")
	}

	// Per-slice continuous loss: attenuation plus temperature derating
	// over one slice length.
	sliceKm := p.LengthKm / float64(steps)
	perSlice, err := loss.LengthLoss(p.Fiber, sliceKm, p.TemperatureC)
	if err != nil {
		return HybridResult{}, err
	}

	eventSteps := s.pickDistinctSteps(steps, events)

	profile := make([]ProfilePoint, steps)
	eventPositions := make([]float64, 0, events)
	var total float64
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return HybridResult{}, apperrors.WrapError(err, "propagation canceled at step %d of %d", i, steps)
		}
		total += perSlice
		if eventSteps[i] {
			eventLoss := s.rng.NormFloat64()*eventStdDev + eventMean
			if eventLoss < 0 {
				eventLoss = 0
			}
			total += eventLoss
			eventPositions = append(eventPositions, float64(i+1)*sliceKm)
		}
		profile[i] = ProfilePoint{DistanceKm: float64(i + 1) * sliceKm, LossDB: total}
	}

	return HybridResult{
		Profile:      profile,
		EventStepsKm: eventPositions,
		TotalLossDB:  total,
	}, nil
}

// pickDistinctSteps selects `events` distinct slice indices out of `steps`
// without replacement, returned as a membership set.
func (s *Simulator) pickDistinctSteps(steps, events int) []bool {
	chosen := make([]bool, steps)
	perm := s.rng.Perm(steps)
	for _, idx := range perm[:events] {
		chosen[idx] = true
	}
	return chosen
}
