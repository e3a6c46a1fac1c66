package input

import "github.com/samdwyer/ledmemory/internal/led"

// Remote maps 24-bit infrared codes to buttons and reset.
type Remote struct {
	codes   map[uint32]led.Symbol
	buttons []uint32
	reset   uint32
}

// NewRemote creates a reader from button codes in board order and the reset
// code. Codes beyond the third are ignored.
func NewRemote(buttons []uint32, reset uint32) *Remote {
	if len(buttons) > len(led.Symbols) {
		buttons = buttons[:len(led.Symbols)]
	}
	r := &Remote{
		codes:   make(map[uint32]led.Symbol, len(buttons)),
		buttons: buttons,
		reset:   reset,
	}
	for i, code := range buttons {
		r.codes[code] = led.Symbols[i]
	}
	return r
}

// Read decodes raw. Only exact codes match.
func (r *Remote) Read(raw uint32) Event {
	if raw == r.reset {
		return Event{Kind: KindReset}
	}
	if sym, ok := r.codes[raw]; ok {
		return Button(sym)
	}
	return Event{}
}

// Reading returns the code for sym, or false if sym has none.
func (r *Remote) Reading(sym led.Symbol) (uint32, bool) {
	i := int(sym) - 1
	if !sym.Valid() || i >= len(r.buttons) {
		return 0, false
	}
	return r.buttons[i], true
}

// ResetCode returns the reset code.
func (r *Remote) ResetCode() uint32 {
	return r.reset
}
