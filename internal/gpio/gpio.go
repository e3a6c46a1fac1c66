// Package gpio drives the LEDs and reads the start button through periph.io
// on a Linux single-board computer.
package gpio

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/led"
)

// debounce is the minimum time between two accepted start-pin edges.
const debounce = 200 * time.Millisecond

var initOnce struct {
	sync.Once
	err error
}

// hostInit loads periph's host drivers once per process.
func hostInit() error {
	initOnce.Do(func() {
		_, initOnce.err = host.Init()
	})
	return initOnce.err
}

// Lookup resolves a pin by name. It is a variable so tests can use
// in-memory pins.
var Lookup = func(name string) gpio.PinIO {
	return gpioreg.ByName(name)
}

// Board drives three LED pins and implements led.Driver.
type Board struct {
	led.Sleeper

	log   zerolog.Logger
	leds  [len(led.Symbols)]gpio.PinIO
	start gpio.PinIO
}

// Open initialises the host and claims the profile's LED pins as outputs
// (driven low) and its start pin as a pulled-up input.
func Open(p *boards.Profile, logger zerolog.Logger) (*Board, error) {
	if err := hostInit(); err != nil {
		return nil, errors.Wrap(err, "could not initialise periph host")
	}
	return open(p, logger)
}

func open(p *boards.Profile, logger zerolog.Logger) (*Board, error) {
	b := &Board{log: logger}

	for i, sym := range led.Symbols {
		name := p.LED(sym).Pin
		pin := Lookup(name)
		if pin == nil {
			return nil, errors.Errorf("unknown LED pin %s for %v", name, sym)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return nil, errors.Wrapf(err, "could not set %s as output", name)
		}
		b.leds[i] = pin
		logger.Debug().Str("pin", name).Stringer("led", sym).Msg("Claimed LED pin")
	}

	if p.StartPin != "" {
		pin := Lookup(p.StartPin)
		if pin == nil {
			return nil, errors.Errorf("unknown start pin %s", p.StartPin)
		}
		if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
			return nil, errors.Wrapf(err, "could not set %s as input", p.StartPin)
		}
		b.start = pin
		logger.Debug().Str("pin", p.StartPin).Msg("Claimed start pin")
	}

	return b, nil
}

// SetLine drives the LED pin for sym.
func (b *Board) SetLine(sym led.Symbol, level led.Level) {
	if !sym.Valid() {
		return
	}
	pin := b.leds[int(sym)-1]
	if err := pin.Out(gpio.Level(level)); err != nil {
		// Nothing useful to do mid-pattern; the next write retries.
		b.log.Error().Err(err).Str("pin", pin.Name()).Msg("Could not write LED pin")
	}
}

// StartPin returns the start button pin, or nil if the profile has none.
func (b *Board) StartPin() gpio.PinIn {
	if b.start == nil {
		return nil
	}
	return b.start
}

// Close turns every LED off and releases the pins.
func (b *Board) Close() error {
	var first error
	for _, pin := range b.leds {
		if pin == nil {
			continue
		}
		if err := pin.Out(gpio.Low); err != nil && first == nil {
			first = errors.Wrapf(err, "could not clear %s", pin.Name())
		}
		if err := pin.Halt(); err != nil && first == nil {
			first = errors.Wrapf(err, "could not halt %s", pin.Name())
		}
	}
	if b.start != nil {
		if err := b.start.Halt(); err != nil && first == nil {
			first = errors.Wrapf(err, "could not halt %s", b.start.Name())
		}
	}
	return first
}
