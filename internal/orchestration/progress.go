package orchestration

import (
	"time"

	"github.com/navaneethred/opticfibresimulation/internal/format"
	"github.com/navaneethred/opticfibresimulation/internal/progress"
)

// ProgressAggregator manages multi-entry progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel, so the CLI does not
// duplicate the aggregation setup and update logic.
type ProgressAggregator struct {
	state      *format.ProgressWithETA
	numEntries int
}

// NewProgressAggregator creates a new aggregator for the given number
// of entries. Returns nil if numEntries <= 0.
func NewProgressAggregator(numEntries int) *ProgressAggregator {
	if numEntries <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numEntries),
		numEntries: numEntries,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// EntryIndex is the index of the entry that sent the update.
	EntryIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all entries.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.Update) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.EntryIndex, update.Value)
	return AggregatedProgress{
		EntryIndex:      update.EntryIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumEntries returns the number of entries being tracked.
func (a *ProgressAggregator) NumEntries() int {
	return a.numEntries
}

// IsMultiEntry returns true if tracking more than one entry.
func (a *ProgressAggregator) IsMultiEntry() bool {
	return a.numEntries > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numEntries <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.Update) {
	for range progressChan {
	}
}
