// Package fiber defines the static table of supported optical fiber types
// and their physical constants. The table is read-only process-wide state:
// it is initialized at program start and never mutated, so lookups are safe
// from any goroutine.
package fiber

import (
	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
)

// FiberType describes one supported fiber preset. All values are fixed at
// process start; instances are passed by value so callers cannot alter the
// table.
type FiberType struct {
	// Name is the ITU-T designation, e.g. "G.652D".
	Name string
	// AttenuationDBPerKm is the intrinsic attenuation coefficient in dB/km.
	AttenuationDBPerKm float64
	// BaseBendLossDB is the loss in dB of a single 90° turn at the ideal
	// bend radius.
	BaseBendLossDB float64
	// IdealBendRadiusCm is the bend radius in cm at which bending loss
	// equals BaseBendLossDB; tighter bends lose more.
	IdealBendRadiusCm float64
	// Description is a one-line human-readable summary for selectors.
	Description string
	// Optical holds the waveguide parameters used by the physical
	// macrobend model.
	Optical OpticalParams
}

// OpticalParams holds the waveguide-level constants of a fiber type.
type OpticalParams struct {
	// CoreRadiusM is the core radius in metres.
	CoreRadiusM float64
	// CoreIndex is the refractive index of the core.
	CoreIndex float64
	// CladdingIndex is the refractive index of the cladding.
	CladdingIndex float64
	// WavelengthM is the operating wavelength in metres.
	WavelengthM float64
}

// Names returns the preset fiber type names in canonical table order.
// The returned slice is a fresh copy on every call.
func Names() []string {
	names := make([]string, len(presets))
	for i, ft := range presets {
		names[i] = ft.Name
	}
	return names
}

// All returns every preset fiber type in canonical table order.
// The returned slice is a fresh copy on every call.
func All() []FiberType {
	out := make([]FiberType, len(presets))
	copy(out, presets)
	return out
}

// Get looks up a fiber type by its exact name.
//
// Parameters:
//   - name: The ITU-T designation to look up, e.g. "G.657A".
//
// Returns:
//   - FiberType: The matching preset (by value).
//   - error: An apperrors.UnknownFiberTypeError if name is not in the table.
func Get(name string) (FiberType, error) {
	for _, ft := range presets {
		if ft.Name == name {
			return ft, nil
		}
	}
	return FiberType{}, apperrors.UnknownFiberTypeError{Name: name, Known: Names()}
}

// MustGet looks up a fiber type by name and panics on failure. It is
// intended for static references to table entries, never for user input.
func MustGet(name string) FiberType {
	ft, err := Get(name)
	if err != nil {
		panic(err)
	}
	return ft
}

// Count returns the number of preset fiber types.
func Count() int { return len(presets) }
