package loss

// ─────────────────────────────────────────────────────────────────────────────
// Physical Model Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants define the loss model shared by every fiber preset. The
// per-type coefficients live in the fiber package; everything here is
// type-independent.

const (
	// TempCoefficientDBPerKmPerC is the temperature derating slope. Loss
	// grows by this much per kilometre for every degree Celsius away from
	// ReferenceTemperatureC, in either direction.
	//
	// 0.0002 dB/km/°C matches measured single-mode cable behavior between
	// roughly -40 °C and +70 °C, where thermally induced microbend stress
	// dominates the temperature dependence.
	TempCoefficientDBPerKmPerC = 0.0002

	// ReferenceTemperatureC is the temperature at which the attenuation
	// coefficients are specified. No derating applies at this temperature.
	ReferenceTemperatureC = 25.0

	// DefaultBendAngleDeg is the bend angle assumed when a request does not
	// specify one. Loss constants are quoted per quarter turn, so a 90°
	// bend carries exactly the base penalty at the ideal radius.
	DefaultBendAngleDeg = 90.0

	// DefaultTurns is the turn count assumed by breakdown computations when
	// the caller models a typical installation without counting bends.
	DefaultTurns = 5

	// DefaultInputCurrentUA is the photodetector input current in
	// microamperes used to derive output current when none is given.
	DefaultInputCurrentUA = 1000.0
)
