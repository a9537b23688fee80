package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	simErr := errors.New("bend radius below cutoff")

	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("fiber", "G.652D"), "fiber", "G.652D"},
		{"Int", Int("points", 100), "points", 100},
		{"Uint64", Uint64("heap_bytes", 1<<30), "heap_bytes", uint64(1 << 30)},
		{"Float64", Float64("loss_db", 2.35), "loss_db", 2.35},
		{"Err", Err(simErr), "error", simErr},
		{"Err with nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

func TestNewLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "server")

	logger.Info("listening", String("addr", ":8080"))

	output := buf.String()
	for _, want := range []string{"server", "listening", ":8080"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("sweep complete")
	if !strings.Contains(buf.String(), "sweep complete") {
		t.Errorf("adapter did not forward message, output: %s", buf.String())
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{
			name:     "no fields",
			msg:      "simulation finished",
			contains: []string{"simulation finished", "info"},
		},
		{
			name:     "single point computed",
			msg:      "loss computed",
			fields:   []Field{String("fiber", "G.657A"), Float64("loss_db", 1.8)},
			contains: []string{"loss computed", "G.657A", "1.8"},
		},
		{
			name:     "request served",
			msg:      "request served",
			fields:   []Field{String("path", "/api/v1/sweep"), Int("status", 200)},
			contains: []string{"request served", "/api/v1/sweep", "200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			msg:      "entry failed",
			err:      errors.New("unknown fiber type"),
			contains: []string{"entry failed", "unknown fiber type", "error"},
		},
		{
			name:     "nil error still logs at error level",
			msg:      "batch degraded",
			contains: []string{"batch degraded", "error"},
		},
		{
			name:     "error with fields",
			msg:      "scenario entry failed",
			err:      errors.New("invalid bend radius"),
			fields:   []Field{String("entry", "tight-bend"), Int("index", 2)},
			contains: []string{"scenario entry failed", "invalid bend radius", "tight-bend", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Error(tt.msg, tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("tracing ray bundle", Int("rays", 10000))

	output := buf.String()
	if !strings.Contains(output, "tracing ray bundle") {
		t.Errorf("Debug output missing message: %s", output)
	}
	if !strings.Contains(output, "debug") {
		t.Errorf("Debug output missing level: %s", output)
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("swept %d points in %s", 100, "12ms")
	if !strings.Contains(buf.String(), "swept 100 points in 12ms") {
		t.Errorf("Printf did not format message: %s", buf.String())
	}

	buf.Reset()
	logger.Println("batch", "done")
	output := buf.String()
	if !strings.Contains(output, "batch") || !strings.Contains(output, "done") {
		t.Errorf("Println dropped an argument: %s", output)
	}
}

// Log entry fields arrive as any, so every value type the shell attaches
// must round-trip through applyFields.
func TestZerologAdapter_FieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "mode", Value: "bending"}, "bending"},
		{"int", Field{Key: "turns", Value: 5}, "5"},
		{"int64", Field{Key: "seed", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "allocs", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "radius_cm", Value: 2.5}, "2.5"},
		{"error", Field{Key: "err", Value: errors.New("range inverted")}, "range inverted"},
		{"bool", Field{Key: "total", Value: true}, "true"},
		{"struct", Field{Key: "range", Value: struct{ From int }{From: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("fields", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("%s field not rendered, output: %s", tt.name, buf.String())
			}
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	newAdapter := func() (*StdLoggerAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		return NewStdLoggerAdapter(log.New(&buf, "", 0)), &buf
	}

	t.Run("Info", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Info("run started", String("fiber", "G.655"))

		output := buf.String()
		for _, want := range []string{"[INFO]", "run started", "fiber", "G.655"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %s", want, output)
			}
		}
	})

	t.Run("Error", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Error("run failed", errors.New("timeout"), String("entry", "long-haul"))

		output := buf.String()
		for _, want := range []string{"[ERROR]", "run failed", "timeout", "long-haul"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %s", want, output)
			}
		}
	})

	t.Run("Debug", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Debug("resolved entry", Int("index", 3))

		output := buf.String()
		for _, want := range []string{"[DEBUG]", "resolved entry", "index", "3"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %s", want, output)
			}
		}
	})

	t.Run("Printf", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Printf("computed %d entries", 7)
		if !strings.Contains(buf.String(), "computed 7 entries") {
			t.Errorf("Printf did not format: %s", buf.String())
		}
	})

	t.Run("Println", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Println("scenario", "complete")
		output := buf.String()
		if !strings.Contains(output, "scenario") || !strings.Contains(output, "complete") {
			t.Errorf("Println dropped an argument: %s", output)
		}
	})
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
