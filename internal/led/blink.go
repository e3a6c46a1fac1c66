package led

import "time"

// Durations used by the notification patterns.
const (
	QuickStep = 50 * time.Millisecond
)

// Blinker plays notification patterns on a Driver. Every pattern leaves all
// LEDs off when it returns.
type Blinker struct {
	drv Driver
}

// NewBlinker creates a blinker for the given driver.
func NewBlinker(drv Driver) *Blinker {
	return &Blinker{drv: drv}
}

// Wait blocks for d on the underlying driver.
func (b *Blinker) Wait(d time.Duration) {
	b.drv.Wait(d)
}

// Blink turns one LED on for d, then off for d.
func (b *Blinker) Blink(sym Symbol, d time.Duration) {
	b.drv.SetLine(sym, High)
	b.drv.Wait(d)
	b.drv.SetLine(sym, Low)
	b.drv.Wait(d)
}

// BlinkAll turns all LEDs on for d, then off for d.
func (b *Blinker) BlinkAll(d time.Duration) {
	for _, s := range Symbols {
		b.drv.SetLine(s, High)
	}
	b.drv.Wait(d)
	for _, s := range Symbols {
		b.drv.SetLine(s, Low)
	}
	b.drv.Wait(d)
}

// QuickSuccession blinks LED1, LED2, LED3 in order for the given number
// of cycles.
func (b *Blinker) QuickSuccession(cycles int) {
	for i := 0; i < cycles; i++ {
		for _, s := range Symbols {
			b.Blink(s, QuickStep)
		}
	}
}

// AllOff drives every line low without waiting.
func (b *Blinker) AllOff() {
	for _, s := range Symbols {
		b.drv.SetLine(s, Low)
	}
}
