package loss

import (
	"math"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
)

// NumericalAperture derives a fiber's numerical aperture from a far-field
// spot measurement: a light cone leaving the fiber end paints a spot of
// diameter diameterMm on a screen distanceMm away.
//
//	NA = sin(atan(D / (2·b)))
//
// Parameters:
//   - diameterMm: The measured spot diameter in millimetres, >= 0.
//   - distanceMm: The fiber-to-screen distance in millimetres, > 0.
//
// Returns:
//   - float64: The numerical aperture, in [0, 1).
//   - error: An InvalidParameterError if a measurement is out of range.
func NumericalAperture(diameterMm, distanceMm float64) (float64, error) {
	angle, err := AcceptanceAngleRad(diameterMm, distanceMm)
	if err != nil {
		return 0, err
	}
	return math.Sin(angle), nil
}

// AcceptanceAngleRad returns the half-angle of the acceptance cone in
// radians for the same far-field measurement.
func AcceptanceAngleRad(diameterMm, distanceMm float64) (float64, error) {
	if diameterMm < 0 || math.IsNaN(diameterMm) {
		return 0, apperrors.NewInvalidParameter("spot_diameter_mm", diameterMm, "must be >= 0")
	}
	if distanceMm <= 0 || math.IsNaN(distanceMm) {
		return 0, apperrors.NewInvalidParameter("screen_distance_mm", distanceMm, "must be > 0")
	}
	return math.Atan(diameterMm / (2 * distanceMm)), nil
}
