package fiber

// ─────────────────────────────────────────────────────────────────────────────
// Preset Fiber Table
// ─────────────────────────────────────────────────────────────────────────────
//
// Loss constants follow ITU-T recommendation ranges for single-mode fibers at
// 1550 nm. attenuation is the intrinsic per-kilometer loss; baseBendLoss is
// the per-turn loss measured at the ideal bend radius; idealBendRadius is the
// radius below which macrobend loss becomes significant for the type.

// Canonical preset names, in table order.
const (
	NameG652D = "G.652D"
	NameG657A = "G.657A"
	NameG655  = "G.655"
	NameG652C = "G.652C"
	NameG657B = "G.657B"
)

// presets holds the five supported fiber types in their canonical order.
// The table is fixed at process start and never mutated; every lookup
// returns a copy.
var presets = []FiberType{
	{
		Name:               NameG652D,
		AttenuationDBPerKm: 0.20,
		BaseBendLossDB:     0.10,
		IdealBendRadiusCm:  5.0,
		Description:        "Standard single-mode fiber for long-haul networks",
		Optical:            OpticalParams{CoreRadiusM: defaultCoreRadiusM, CoreIndex: defaultCoreIndex, CladdingIndex: 1.4620, WavelengthM: defaultWavelengthM},
	},
	{
		Name:               NameG657A,
		AttenuationDBPerKm: 0.18,
		BaseBendLossDB:     0.05,
		IdealBendRadiusCm:  3.0,
		Description:        "Bend-insensitive fiber for indoor/FTTH use",
		Optical:            OpticalParams{CoreRadiusM: defaultCoreRadiusM, CoreIndex: defaultCoreIndex, CladdingIndex: 1.4620, WavelengthM: defaultWavelengthM},
	},
	{
		Name:               NameG655,
		AttenuationDBPerKm: 0.22,
		BaseBendLossDB:     0.15,
		IdealBendRadiusCm:  5.0,
		Description:        "Non-zero dispersion-shifted fiber for DWDM systems",
		Optical:            OpticalParams{CoreRadiusM: defaultCoreRadiusM, CoreIndex: defaultCoreIndex, CladdingIndex: 1.4550, WavelengthM: defaultWavelengthM},
	},
	{
		Name:               NameG652C,
		AttenuationDBPerKm: 0.22,
		BaseBendLossDB:     0.12,
		IdealBendRadiusCm:  5.0,
		Description:        "Low water peak fiber for extended wavelength operation",
		Optical:            OpticalParams{CoreRadiusM: defaultCoreRadiusM, CoreIndex: defaultCoreIndex, CladdingIndex: 1.4620, WavelengthM: defaultWavelengthM},
	},
	{
		Name:               NameG657B,
		AttenuationDBPerKm: 0.18,
		BaseBendLossDB:     0.03,
		IdealBendRadiusCm:  2.5,
		Description:        "Ultra bend-insensitive fiber for tight installations",
		Optical:            OpticalParams{CoreRadiusM: defaultCoreRadiusM, CoreIndex: defaultCoreIndex, CladdingIndex: 1.4600, WavelengthM: defaultWavelengthM},
	},
}

// ─────────────────────────────────────────────────────────────────────────────
// Waveguide Parameters
// ─────────────────────────────────────────────────────────────────────────────

const (
	// defaultCoreRadiusM is the core radius shared by all presets, 4.1 µm,
	// typical for ITU-T single-mode fibers.
	defaultCoreRadiusM = 4.1e-6

	// defaultCoreIndex is the refractive index of the germanium-doped silica
	// core at 1550 nm. Cladding indices vary per type and set the index
	// contrast that governs macrobend sensitivity.
	defaultCoreIndex = 1.4682

	// defaultWavelengthM is the operating wavelength, 1550 nm, the low-loss
	// C-band window all five presets are specified at.
	defaultWavelengthM = 1550e-9
)
