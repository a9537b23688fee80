// Package progress defines the progress reporting types shared between the
// orchestration layer, which produces updates, and the presentation layer,
// which consumes them. Keeping the types in their own package avoids a
// dependency cycle between the two.
package progress

// Update reports the completion fraction of one batch entry.
type Update struct {
	// EntryIndex identifies which entry the value belongs to.
	EntryIndex int
	// Value is the completion fraction, 0.0 to 1.0.
	Value float64
}

// Callback receives progress values from a running simulation. The value is
// the completion fraction, 0.0 to 1.0.
type Callback func(value float64)

// NopCallback discards progress values. Pass it where progress reporting is
// not wanted.
func NopCallback(float64) {}
