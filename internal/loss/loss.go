// Package loss implements the optical loss model: linear attenuation with
// temperature derating, empirical and waveguide macrobend loss, and the
// derived photodetector output current. Every function is a pure,
// deterministic function of its inputs and the static fiber table, performs
// no logging, and is safe to call from any goroutine.
package loss

import (
	"math"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
)

// Request carries the physical parameters of one simulation. Zero values
// for BendAngleDeg and InputCurrentUA select the documented defaults, so a
// Request composed from only the flags a user set remains valid.
type Request struct {
	// Fiber is the preset under simulation.
	Fiber fiber.FiberType
	// LengthKm is the fiber length in kilometres. Must be >= 0.
	LengthKm float64
	// TemperatureC is the ambient temperature in °C. Any real value is
	// accepted; derating grows with distance from the 25 °C reference.
	TemperatureC float64
	// BendRadiusCm is the bend radius in centimetres. Must be > 0 for the
	// bending and turns modes.
	BendRadiusCm float64
	// Turns is the number of bends. Must be >= 0 for the turns mode.
	Turns int
	// BendAngleDeg is the angle of each bend in degrees. Zero selects the
	// default of 90°.
	BendAngleDeg float64
	// InputCurrentUA is the photodetector input current in µA. Zero
	// selects the default of 1000 µA.
	InputCurrentUA float64
	// Model selects the bending loss model. The zero value is the
	// empirical model.
	Model BendModel
}

// Result is the outcome of a single-point computation for one mode.
type Result struct {
	// Mode is the component that was evaluated.
	Mode Mode
	// LossDB is the loss of the selected component in dB.
	LossDB float64
	// OutputCurrentUA is the input current attenuated by LossDB.
	OutputCurrentUA float64
}

// Breakdown itemizes every loss component of a request, the way an
// installation report presents them.
type Breakdown struct {
	// LengthLossDB is attenuation plus temperature derating over the run.
	LengthLossDB float64
	// BendLossPerTurnDB is the loss of a single bend at the request radius.
	BendLossPerTurnDB float64
	// TurnsLossDB is BendLossPerTurnDB accumulated over all turns.
	TurnsLossDB float64
	// TotalLossDB is LengthLossDB + TurnsLossDB.
	TotalLossDB float64
	// OutputCurrentUA is the input current attenuated by TotalLossDB.
	OutputCurrentUA float64
}

// LengthLoss computes attenuation over a fiber run, derated for temperature.
//
// The result is attenuation_coeff × length plus a derating term of
// TempCoefficientDBPerKmPerC × |T − 25| × length: the derating is additive,
// linear in the absolute deviation from the 25 °C reference, and
// proportional to length, so loss remains monotonically non-decreasing in
// length at any fixed temperature.
//
// Parameters:
//   - ft: The fiber preset.
//   - lengthKm: The run length in kilometres, >= 0.
//   - temperatureC: The ambient temperature in °C.
//
// Returns:
//   - float64: The loss in dB.
//   - error: An InvalidParameterError if lengthKm is negative.
func LengthLoss(ft fiber.FiberType, lengthKm, temperatureC float64) (float64, error) {
	if err := validateLength(lengthKm); err != nil {
		return 0, err
	}
	derating := TempCoefficientDBPerKmPerC * math.Abs(temperatureC-ReferenceTemperatureC)
	return ft.AttenuationDBPerKm*lengthKm + derating*lengthKm, nil
}

// BendingLoss computes the loss of a single 90° bend at the given radius.
//
// The empirical model scales the per-type base loss by ideal_radius/radius:
// at the ideal radius the loss equals the base constant, tighter bends grow
// it hyperbolically, looser bends shrink it toward zero. Temperature does
// not enter the bend term; derating is carried entirely by the length
// component, which keeps turn accumulation exactly linear.
//
// Parameters:
//   - ft: The fiber preset.
//   - bendRadiusCm: The bend radius in centimetres, > 0.
//   - temperatureC: Accepted for interface symmetry with LengthLoss;
//     unused by the bend model.
//
// Returns:
//   - float64: The per-bend loss in dB.
//   - error: An InvalidParameterError if bendRadiusCm is not positive.
func BendingLoss(ft fiber.FiberType, bendRadiusCm, temperatureC float64) (float64, error) {
	return BendingLossAtAngle(ft, bendRadiusCm, DefaultBendAngleDeg, temperatureC)
}

// BendingLossAtAngle computes the loss of a single bend of the given angle.
// A 90° bend carries the full per-turn penalty; other angles scale it
// proportionally.
func BendingLossAtAngle(ft fiber.FiberType, bendRadiusCm, bendAngleDeg, temperatureC float64) (float64, error) {
	if err := validateBendRadius(bendRadiusCm); err != nil {
		return 0, err
	}
	if err := validateBendAngle(bendAngleDeg); err != nil {
		return 0, err
	}
	penalty := ft.IdealBendRadiusCm / bendRadiusCm
	return ft.BaseBendLossDB * penalty * (bendAngleDeg / DefaultBendAngleDeg), nil
}

// TurnsLoss computes the loss accumulated over repeated identical bends.
// The result is exactly turns × BendingLoss for the same radius, so zero
// turns always yields zero loss.
//
// Parameters:
//   - ft: The fiber preset.
//   - bendRadiusCm: The bend radius in centimetres, > 0.
//   - turns: The number of bends, >= 0.
//   - temperatureC: Accepted for interface symmetry; unused by the bend model.
//
// Returns:
//   - float64: The accumulated loss in dB.
//   - error: An InvalidParameterError if a parameter is out of range.
func TurnsLoss(ft fiber.FiberType, bendRadiusCm float64, turns int, temperatureC float64) (float64, error) {
	if err := validateTurns(turns); err != nil {
		return 0, err
	}
	perTurn, err := BendingLoss(ft, bendRadiusCm, temperatureC)
	if err != nil {
		return 0, err
	}
	return float64(turns) * perTurn, nil
}

// Compute evaluates the loss component selected by mode for the request.
//
// Parameters:
//   - mode: The component to evaluate.
//   - req: The simulation request.
//
// Returns:
//   - Result: The loss and derived output current.
//   - error: An InvalidParameterError if a parameter relevant to the mode
//     is out of range.
func Compute(mode Mode, req Request) (Result, error) {
	var (
		lossDB float64
		err    error
	)
	switch mode {
	case ModeLength:
		lossDB, err = LengthLoss(req.Fiber, req.LengthKm, req.TemperatureC)
	case ModeBending:
		lossDB, err = bendingLossForModel(req, req.BendRadiusCm)
	case ModeTurns:
		lossDB, err = turnsLossForModel(req, req.BendRadiusCm, req.Turns)
	default:
		err = apperrors.NewInvalidParameter("mode", mode, "unknown computation mode")
	}
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:            mode,
		LossDB:          lossDB,
		OutputCurrentUA: OutputCurrentUA(inputCurrent(req), lossDB),
	}, nil
}

// ComputeBreakdown evaluates every component of the request at once and
// totals them. The request's turn count applies as given; callers modeling
// a typical installation pass DefaultTurns.
func ComputeBreakdown(req Request) (Breakdown, error) {
	lengthDB, err := LengthLoss(req.Fiber, req.LengthKm, req.TemperatureC)
	if err != nil {
		return Breakdown{}, err
	}
	perTurnDB, err := bendingLossForModel(req, req.BendRadiusCm)
	if err != nil {
		return Breakdown{}, err
	}
	if err := validateTurns(req.Turns); err != nil {
		return Breakdown{}, err
	}
	turnsDB := float64(req.Turns) * perTurnDB
	totalDB := lengthDB + turnsDB
	return Breakdown{
		LengthLossDB:      lengthDB,
		BendLossPerTurnDB: perTurnDB,
		TurnsLossDB:       turnsDB,
		TotalLossDB:       totalDB,
		OutputCurrentUA:   OutputCurrentUA(inputCurrent(req), totalDB),
	}, nil
}

// OutputCurrentUA converts a loss figure to the photodetector current that
// survives it: input × 10^(−loss/10).
func OutputCurrentUA(inputUA, lossDB float64) float64 {
	return inputUA * math.Pow(10, -lossDB/10)
}

// bendingLossForModel dispatches between the empirical and waveguide models
// honoring the request's bend angle.
func bendingLossForModel(req Request, radiusCm float64) (float64, error) {
	switch req.Model {
	case ModelWaveguide:
		return WaveguideBendLoss(req.Fiber, radiusCm)
	default:
		return BendingLossAtAngle(req.Fiber, radiusCm, bendAngle(req), req.TemperatureC)
	}
}

// turnsLossForModel accumulates the per-bend loss of the selected model.
func turnsLossForModel(req Request, radiusCm float64, turns int) (float64, error) {
	if err := validateTurns(turns); err != nil {
		return 0, err
	}
	perTurn, err := bendingLossForModel(req, radiusCm)
	if err != nil {
		return 0, err
	}
	return float64(turns) * perTurn, nil
}

func bendAngle(req Request) float64 {
	if req.BendAngleDeg == 0 {
		return DefaultBendAngleDeg
	}
	return req.BendAngleDeg
}

func inputCurrent(req Request) float64 {
	if req.InputCurrentUA == 0 {
		return DefaultInputCurrentUA
	}
	return req.InputCurrentUA
}

func validateLength(lengthKm float64) error {
	if lengthKm < 0 || math.IsNaN(lengthKm) {
		return apperrors.NewInvalidParameter("length_km", lengthKm, "must be >= 0")
	}
	return nil
}

func validateBendRadius(radiusCm float64) error {
	if radiusCm <= 0 || math.IsNaN(radiusCm) {
		return apperrors.NewInvalidParameter("bend_radius_cm", radiusCm, "must be > 0")
	}
	return nil
}

func validateBendAngle(angleDeg float64) error {
	if angleDeg <= 0 || math.IsNaN(angleDeg) {
		return apperrors.NewInvalidParameter("bend_angle_deg", angleDeg, "must be > 0")
	}
	return nil
}

func validateTurns(turns int) error {
	if turns < 0 {
		return apperrors.NewInvalidParameter("turns", turns, "must be >= 0")
	}
	return nil
}
