package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps the displayed estimate. Beyond a day the extrapolation is
// noise, not information.
const maxETA = 24 * time.Hour

// rateSmoothingFactor is the exponential smoothing weight for the progress
// rate estimate. Lower values react slower but jitter less.
const rateSmoothingFactor = 0.3

// ProgressState tracks the individual completion fractions of concurrent
// batch entries and aggregates them into one average for display.
type ProgressState struct {
	progresses []float64
	numEntries int
}

// NewProgressState creates a ProgressState tracking numEntries entries.
func NewProgressState(numEntries int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numEntries),
		numEntries: numEntries,
	}
}

// Update records a progress value for one entry. Out-of-range indices are
// ignored so a misbehaving producer cannot corrupt the state.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress across all tracked entries.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numEntries == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numEntries)
}

// ProgressWithETA extends ProgressState with a smoothed completion-rate
// estimate, from which a remaining-time figure is derived.
type ProgressWithETA struct {
	*ProgressState
	numEntries   int
	startTime    time.Time
	progressRate float64 // smoothed progress per second
	lastProgress float64
	lastUpdate   time.Time
}

// NewProgressWithETA creates a tracker for numEntries entries with the
// clock started now.
func NewProgressWithETA(numEntries int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numEntries),
		numEntries:    numEntries,
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records a progress value and returns the new average along
// with the current remaining-time estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0 && avg > p.lastProgress {
		instantRate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = instantRate
		} else {
			p.progressRate = rateSmoothingFactor*instantRate + (1-rateSmoothingFactor)*p.progressRate
		}
		p.lastProgress = avg
		p.lastUpdate = now
	}

	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining. Returns 0 while no rate has
// been observed yet; the estimate is capped at 24 hours.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders a remaining-time estimate for display. Durations that
// are zero or negative render as "calculating..." since no rate is known.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// FormatProgressBarWithETA renders a bar, a percentage, and the ETA on one
// line, suitable for a spinner suffix or ticker refresh.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// ProgressBar renders a textual bar of the given width. Progress values are
// clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatNumberString inserts thousands separators into a decimal string.
// A leading sign is preserved.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var builder strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		builder.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(s[i : i+3])
	}
	return sign + builder.String()
}
