// Package input maps raw readings from the single input channel to button
// events. Two readers exist: analog bands for a resistor ladder and hex codes
// for an infrared remote.
package input

import (
	"github.com/pkg/errors"

	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/led"
)

// Kind is the type of a decoded reading.
type Kind int

const (
	// KindNone means the reading matched nothing and must be ignored.
	KindNone Kind = iota
	// KindButton means the reading is a press of Event.Symbol.
	KindButton
	// KindReset means the reading is the remote's reset button.
	KindReset
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindButton:
		return "button"
	case KindReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a decoded reading.
type Event struct {
	Kind   Kind
	Symbol led.Symbol // Set only for KindButton
}

// Button returns a button event for sym.
func Button(sym led.Symbol) Event {
	return Event{Kind: KindButton, Symbol: sym}
}

// Reader decodes raw readings.
type Reader interface {
	Read(raw uint32) Event
}

// Variant selects a Reader implementation.
type Variant string

const (
	VariantAnalog Variant = "analog"
	VariantRemote Variant = "remote"
)

// New builds the reader for variant from the profile's bands or codes.
func New(variant Variant, p *boards.Profile) (Reader, error) {
	switch variant {
	case VariantAnalog:
		return NewAnalog(p.Bands), nil
	case VariantRemote:
		buttons, reset, err := p.RemoteCodes()
		if err != nil {
			return nil, err
		}
		return NewRemote(buttons, reset), nil
	default:
		return nil, errors.Errorf("unknown input variant %q", variant)
	}
}

// Encoder produces the raw reading for a button. Simulated sources use it to
// turn key presses into readings the Reader will decode.
type Encoder interface {
	Reading(sym led.Symbol) (uint32, bool)
}
