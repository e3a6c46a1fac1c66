package input

import (
	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/led"
)

// Analog maps 10-bit ADC readings to buttons by inclusive bands. It never
// produces a reset; the analog board has a dedicated start pin instead.
type Analog struct {
	bands []boards.Band
}

// NewAnalog creates a reader from bands given in board order (LED1 first).
// Bands beyond the third are ignored.
func NewAnalog(bands []boards.Band) *Analog {
	if len(bands) > len(led.Symbols) {
		bands = bands[:len(led.Symbols)]
	}
	return &Analog{bands: bands}
}

// Read returns the button whose band contains raw. Bands are checked in
// order, so overlapping bands resolve to the lower LED.
func (a *Analog) Read(raw uint32) Event {
	for i, b := range a.bands {
		if b.Contains(raw) {
			return Button(led.Symbols[i])
		}
	}
	return Event{}
}

// Reading returns a raw value that decodes to sym, or false if sym has no band.
func (a *Analog) Reading(sym led.Symbol) (uint32, bool) {
	i := int(sym) - 1
	if !sym.Valid() || i >= len(a.bands) {
		return 0, false
	}
	return a.bands[i].Mid(), true
}
