package led

import (
	"fmt"
	"time"
)

// Call is one recorded driver operation. Exactly one of Wait or Sym is set.
type Call struct {
	Sym   Symbol
	Level Level
	Wait  time.Duration
}

// String renders the call as "led1=on", "led2=off" or "wait 50ms".
func (c Call) String() string {
	if c.Sym == None {
		return fmt.Sprintf("wait %v", c.Wait)
	}
	if c.Level == High {
		return c.Sym.String() + "=on"
	}
	return c.Sym.String() + "=off"
}

// Recorder is a Driver that records calls instead of touching hardware.
// Wait returns immediately.
type Recorder struct {
	Calls []Call
	lines [len(Symbols) + 1]Level
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetLine records a line change.
func (r *Recorder) SetLine(sym Symbol, level Level) {
	r.Calls = append(r.Calls, Call{Sym: sym, Level: level})
	if sym.Valid() {
		r.lines[sym] = level
	}
}

// Wait records a delay.
func (r *Recorder) Wait(d time.Duration) {
	r.Calls = append(r.Calls, Call{Wait: d})
}

// Line returns the last level written to sym.
func (r *Recorder) Line(sym Symbol) Level {
	if !sym.Valid() {
		return Low
	}
	return r.lines[sym]
}

// Total returns the sum of all recorded waits.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, c := range r.Calls {
		total += c.Wait
	}
	return total
}

// Reset drops recorded calls. Line levels are kept.
func (r *Recorder) Reset() {
	r.Calls = nil
}
