package led

import (
	"testing"
	"time"
)

func TestSymbolString(t *testing.T) {
	tests := []struct {
		sym      Symbol
		expected string
	}{
		{LED1, "led1"},
		{LED2, "led2"},
		{LED3, "led3"},
		{None, "none"},
		{Symbol(42), "none"},
	}

	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.expected {
			t.Errorf("Symbol(%d).String() = %q, want %q", tt.sym, got, tt.expected)
		}
	}
}

func TestSymbolValid(t *testing.T) {
	for _, s := range Symbols {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if None.Valid() {
		t.Error("None should not be valid")
	}
	if Symbol(4).Valid() {
		t.Error("Symbol(4) should not be valid")
	}
}

func callStrings(calls []Call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

func assertTrace(t *testing.T, got []Call, want []string) {
	t.Helper()
	g := callStrings(got)
	if len(g) != len(want) {
		t.Fatalf("trace length = %d, want %d\ngot:  %v\nwant: %v", len(g), len(want), g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, g[i], want[i])
		}
	}
}

func TestBlink(t *testing.T) {
	rec := NewRecorder()
	NewBlinker(rec).Blink(LED2, 120*time.Millisecond)

	assertTrace(t, rec.Calls, []string{
		"led2=on", "wait 120ms", "led2=off", "wait 120ms",
	})
	if rec.Line(LED2) != Low {
		t.Error("LED2 should be off after Blink")
	}
}

func TestBlinkAll(t *testing.T) {
	rec := NewRecorder()
	NewBlinker(rec).BlinkAll(500 * time.Millisecond)

	assertTrace(t, rec.Calls, []string{
		"led1=on", "led2=on", "led3=on", "wait 500ms",
		"led1=off", "led2=off", "led3=off", "wait 500ms",
	})
}

func TestQuickSuccession(t *testing.T) {
	rec := NewRecorder()
	NewBlinker(rec).QuickSuccession(5)

	// 5 cycles x 3 LEDs x (on, wait, off, wait)
	if len(rec.Calls) != 5*3*4 {
		t.Fatalf("QuickSuccession(5) made %d calls, want %d", len(rec.Calls), 5*3*4)
	}
	if got, want := rec.Total(), 5*3*2*QuickStep; got != want {
		t.Errorf("QuickSuccession(5) waited %v, want %v", got, want)
	}
	assertTrace(t, rec.Calls[:12], []string{
		"led1=on", "wait 50ms", "led1=off", "wait 50ms",
		"led2=on", "wait 50ms", "led2=off", "wait 50ms",
		"led3=on", "wait 50ms", "led3=off", "wait 50ms",
	})
}

func TestQuickSuccessionZeroCycles(t *testing.T) {
	rec := NewRecorder()
	NewBlinker(rec).QuickSuccession(0)
	if len(rec.Calls) != 0 {
		t.Errorf("QuickSuccession(0) made %d calls, want 0", len(rec.Calls))
	}
}

func TestAllOff(t *testing.T) {
	rec := NewRecorder()
	rec.SetLine(LED1, High)
	rec.SetLine(LED3, High)

	NewBlinker(rec).AllOff()

	for _, s := range Symbols {
		if rec.Line(s) != Low {
			t.Errorf("%v should be off after AllOff", s)
		}
	}
	if rec.Total() != 0 {
		t.Error("AllOff should not wait")
	}
}
