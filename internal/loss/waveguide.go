package loss

import (
	"fmt"
	"math"

	"github.com/navaneethred/opticfibresimulation/internal/fiber"
)

// BendModel selects the macrobend loss formula.
type BendModel uint8

const (
	// ModelEmpirical is the table-driven model: base loss scaled by
	// ideal_radius/radius and bend angle.
	ModelEmpirical BendModel = iota
	// ModelWaveguide is the physical model derived from the fiber's
	// waveguide parameters (core radius, index contrast, wavelength).
	ModelWaveguide
)

// String returns the canonical lowercase name of the model.
func (m BendModel) String() string {
	switch m {
	case ModelEmpirical:
		return "empirical"
	case ModelWaveguide:
		return "waveguide"
	default:
		return fmt.Sprintf("BendModel(%d)", uint8(m))
	}
}

// ParseBendModel converts a model name to its BendModel value.
func ParseBendModel(text string) (BendModel, error) {
	switch text {
	case "empirical":
		return ModelEmpirical, nil
	case "waveguide":
		return ModelWaveguide, nil
	default:
		return 0, fmt.Errorf("invalid bend model: %q (want empirical or waveguide)", text)
	}
}

// WaveguideBendLoss computes macrobend loss per bend from the fiber's
// waveguide parameters instead of the empirical table constants.
//
// The model is the standard weakly-guiding approximation for a step-index
// fiber:
//
//	loss = 0.5 × (π·a·n1/λ)² × exp(−(4/3) × (R/a) × (n1² − n2²)^1.5)
//
// with core radius a, bend radius R (both in metres), core index n1,
// cladding index n2, and wavelength λ. Loss is negligible until R
// approaches the centimetre scale and then grows exponentially as the bend
// tightens, which is why bend-insensitive types raise their index contrast.
//
// Parameters:
//   - ft: The fiber preset supplying the waveguide parameters.
//   - bendRadiusCm: The bend radius in centimetres, > 0.
//
// Returns:
//   - float64: The per-bend loss in dB.
//   - error: An InvalidParameterError if bendRadiusCm is not positive.
func WaveguideBendLoss(ft fiber.FiberType, bendRadiusCm float64) (float64, error) {
	if err := validateBendRadius(bendRadiusCm); err != nil {
		return 0, err
	}
	op := ft.Optical
	radiusM := bendRadiusCm / 100

	amplitude := 0.5 * math.Pow(math.Pi*op.CoreRadiusM*op.CoreIndex/op.WavelengthM, 2)
	contrast := math.Pow(op.CoreIndex*op.CoreIndex-op.CladdingIndex*op.CladdingIndex, 1.5)
	attenuation := math.Exp(-(4.0 / 3.0) * (radiusM / op.CoreRadiusM) * contrast)

	return amplitude * attenuation, nil
}
