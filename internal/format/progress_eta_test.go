package format

import (
	"strings"
	"testing"
	"time"
)

func TestNewProgressWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(3)

	if p.ProgressState == nil {
		t.Fatal("ProgressState should not be nil")
	}
	if p.numEntries != 3 {
		t.Errorf("numEntries = %d, want 3", p.numEntries)
	}
	if p.progressRate != 0 {
		t.Errorf("initial progressRate = %f, want 0", p.progressRate)
	}
	if p.startTime.IsZero() {
		t.Error("startTime should not be zero")
	}
}

func TestUpdateWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)

	// First entry reports a quarter done; the other is still at zero.
	progress, eta := p.UpdateWithETA(0, 0.25)
	if progress != 0.125 {
		t.Errorf("progress = %f, want 0.125", progress)
	}
	if eta < 0 {
		t.Errorf("ETA should not be negative, got %v", eta)
	}

	// Second entry reaches the halfway mark.
	progress, _ = p.UpdateWithETA(1, 0.5)
	if progress != 0.375 {
		t.Errorf("progress = %f, want 0.375", progress)
	}
}

func TestGetETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(1)

	if eta := p.GetETA(); eta != 0 {
		t.Errorf("ETA before any update = %v, want 0", eta)
	}

	p.Update(0, 0.5)
	p.progressRate = 0.1 // 10% per second, so 50% remaining takes ~5s

	eta := p.GetETA()
	want := 5 * time.Second
	tolerance := time.Second
	if eta < want-tolerance || eta > want+tolerance {
		t.Errorf("ETA = %v, want approximately %v", eta, want)
	}
}

func TestGetETA_Capped(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(1)
	p.Update(0, 0.001)
	p.progressRate = 0.0000001

	if eta := p.GetETA(); eta > 24*time.Hour {
		t.Errorf("ETA = %v, should be capped at 24h", eta)
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		eta  time.Duration
		want string
	}{
		{"zero duration", 0, "calculating..."},
		{"negative duration", -time.Second, "calculating..."},
		{"sub-second", 500 * time.Millisecond, "< 1s"},
		{"one second", time.Second, "1s"},
		{"seconds", 45 * time.Second, "45s"},
		{"one minute", time.Minute, "1m"},
		{"minutes and seconds", 2*time.Minute + 30*time.Second, "2m30s"},
		{"one hour", time.Hour, "1h"},
		{"hours and minutes", time.Hour + 15*time.Minute, "1h15m"},
		{"many hours", 3*time.Hour + 45*time.Minute, "3h45m"},
		{"whole hours", 2 * time.Hour, "2h"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatETA(tt.eta); got != tt.want {
				t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
			}
		})
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		progress float64
		eta      time.Duration
		width    int
	}{
		{"zero progress", 0, time.Minute, 10},
		{"halfway", 0.5, 30 * time.Second, 20},
		{"complete", 1.0, 0, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := FormatProgressBarWithETA(tt.progress, tt.eta, tt.width)

			if !strings.Contains(result, "ETA:") {
				t.Errorf("result should contain the ETA label, got %q", result)
			}
			if !strings.Contains(result, "%") {
				t.Errorf("result should contain a percentage, got %q", result)
			}
			if !strings.Contains(result, "[") || !strings.Contains(result, "]") {
				t.Errorf("result should contain bar brackets, got %q", result)
			}
		})
	}
}

func TestProgressWithETAEdgeCases(t *testing.T) {
	t.Parallel()
	t.Run("progress above one", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(1)
		p.Update(0, 1.5)
		if progress := p.CalculateAverage(); progress < 0 {
			t.Errorf("progress should not be negative, got %f", progress)
		}
	})

	t.Run("negative progress", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(1)
		p.Update(0, -0.5)
		if progress := p.CalculateAverage(); progress > 1.0 {
			t.Errorf("progress should not exceed 1.0, got %f", progress)
		}
	})

	t.Run("out-of-range entry index", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(2)
		// A misbehaving reporter must not panic or corrupt the average.
		p.UpdateWithETA(5, 0.5)
		p.UpdateWithETA(-1, 0.5)
		if progress := p.CalculateAverage(); progress < 0 || progress > 1.0 {
			t.Errorf("progress should stay in [0, 1], got %f", progress)
		}
	})
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		want     string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"}, // clamp high
		{-0.1, 10, "░░░░░░░░░░"}, // clamp low
	}

	for _, tt := range tests {
		tt := tt
		if got := ProgressBar(tt.progress, tt.length); got != tt.want {
			t.Errorf("ProgressBar(%f, %d) = %s, want %s", tt.progress, tt.length, got, tt.want)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}

	for _, tt := range tests {
		tt := tt
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}

	for _, tt := range tests {
		tt := tt
		if got := FormatNumberString(tt.input); got != tt.want {
			t.Errorf("FormatNumberString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewProgressState(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(3)
	if ps.numEntries != 3 {
		t.Errorf("numEntries = %d, want 3", ps.numEntries)
	}
	if len(ps.progresses) != 3 {
		t.Errorf("progresses length = %d, want 3", len(ps.progresses))
	}
	if avg := ps.CalculateAverage(); avg != 0 {
		t.Errorf("initial average = %f, want 0", avg)
	}
}

func TestProgressStateUpdate(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(2)
	ps.Update(0, 0.5)
	ps.Update(1, 1.0)
	if avg := ps.CalculateAverage(); avg != 0.75 {
		t.Errorf("average = %f, want 0.75", avg)
	}
}

func TestProgressStateZeroEntries(t *testing.T) {
	t.Parallel()
	// An empty batch has no progress to average, not a division by zero.
	ps := NewProgressState(0)
	if avg := ps.CalculateAverage(); avg != 0 {
		t.Errorf("average = %f, want 0", avg)
	}
}
