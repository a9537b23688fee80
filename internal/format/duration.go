package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a run duration for summaries. Short runs
// get a single unit of appropriate magnitude instead of Go's default
// multi-unit string, which reads poorly next to loss figures.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
