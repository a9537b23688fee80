package loss

import "fmt"

// Mode selects which loss component a computation or sweep evaluates.
type Mode uint8

const (
	// ModeLength evaluates attenuation over fiber length, with temperature
	// derating.
	ModeLength Mode = iota
	// ModeBending evaluates the loss of a single bend at a given radius.
	ModeBending
	// ModeTurns evaluates the accumulated loss of repeated bends.
	ModeTurns
)

// String returns the canonical lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLength:
		return "length"
	case ModeBending:
		return "bending"
	case ModeTurns:
		return "turns"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts a mode name to its Mode value.
//
// Parameters:
//   - text: One of "length", "bending", or "turns".
//
// Returns:
//   - Mode: The parsed mode.
//   - error: A descriptive error if text is not a known mode name.
func ParseMode(text string) (Mode, error) {
	switch text {
	case "length":
		return ModeLength, nil
	case "bending":
		return ModeBending, nil
	case "turns":
		return ModeTurns, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q (want length, bending, or turns)", text)
	}
}
