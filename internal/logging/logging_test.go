package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		debug    bool
		expected zerolog.Level
	}{
		{false, zerolog.InfoLevel},
		{true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := New(&buf, tt.debug)
		if got := log.GetLevel(); got != tt.expected {
			t.Errorf("New(debug=%v) level = %v, want %v", tt.debug, got, tt.expected)
		}

		log.Debug().Msg("phase change")
		if wrote := buf.Len() > 0; wrote != tt.debug {
			t.Errorf("New(debug=%v) wrote debug line = %v", tt.debug, wrote)
		}
	}
}

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, false), "gpio")
	log.Info().Str(LogKey.Board, "raspberry-pi").Msg("Claimed pins")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line[LogKey.Module] != "gpio" {
		t.Errorf("%s = %v, want gpio", LogKey.Module, line[LogKey.Module])
	}
	if line[LogKey.Board] != "raspberry-pi" {
		t.Errorf("%s = %v, want raspberry-pi", LogKey.Board, line[LogKey.Board])
	}
	if line["message"] != "Claimed pins" {
		t.Errorf("message = %v", line["message"])
	}
}

func TestNopDiscards(t *testing.T) {
	if got := Nop().GetLevel(); got != zerolog.Disabled {
		t.Errorf("Nop() level = %v, want disabled", got)
	}
}
