// Package led defines the three-LED output driver and the blink patterns
// the game plays through it.
package led

import "time"

// Symbol identifies one of the three LEDs (and the button paired with it).
type Symbol int

const (
	// None is the zero value and never appears in a sequence.
	None Symbol = iota
	LED1
	LED2
	LED3
)

// Symbols lists every valid symbol in board order.
var Symbols = [...]Symbol{LED1, LED2, LED3}

// Valid reports whether s is one of the three LEDs.
func (s Symbol) Valid() bool {
	return s >= LED1 && s <= LED3
}

// String returns a human-readable symbol name.
func (s Symbol) String() string {
	switch s {
	case LED1:
		return "led1"
	case LED2:
		return "led2"
	case LED3:
		return "led3"
	default:
		return "none"
	}
}

// Level is the logic level written to an LED line.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Driver switches LED lines and blocks for a duration.
type Driver interface {
	SetLine(sym Symbol, level Level)
	Wait(d time.Duration)
}

// Sleeper implements Wait with time.Sleep. Hardware drivers embed it.
type Sleeper struct{}

// Wait blocks for d.
func (Sleeper) Wait(d time.Duration) {
	time.Sleep(d)
}
