package ui

import (
	"context"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ledmemory/internal/game"
	"github.com/samdwyer/ledmemory/internal/input"
	"github.com/samdwyer/ledmemory/internal/led"
)

// Action is what a key press means to the simulator.
type Action int

const (
	// ActionNone ignores the key.
	ActionNone Action = iota
	// ActionReading forwards a reading to the game.
	ActionReading
	// ActionQuit ends the run.
	ActionQuit
)

// HelpText describes the key bindings.
const HelpText = "1/2/3 press  r reset  s/enter start  q quit"

// KeyMap turns keys into readings. Number keys produce the raw value the
// configured Reader decodes as that button, so the full input path is
// exercised.
type KeyMap struct {
	Encoder input.Encoder

	// ResetCode is sent for 'r' when HasReset is set (remote variant).
	// Without it 'r' presses the start pin, like the analog board's reset
	// button.
	ResetCode uint32
	HasReset  bool
}

// Translate maps a key (and its rune for KeyRune) to an action.
func (m KeyMap) Translate(key tcell.Key, ch rune) (game.Reading, Action) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Reading{}, ActionQuit
	case tcell.KeyEnter:
		return game.Reading{Start: true}, ActionReading
	case tcell.KeyRune:
	default:
		return game.Reading{}, ActionNone
	}

	switch ch {
	case '1', '2', '3':
		sym := led.Symbols[ch-'1']
		raw, ok := m.Encoder.Reading(sym)
		if !ok {
			return game.Reading{}, ActionNone
		}
		return game.Reading{Raw: raw}, ActionReading
	case 'r', 'R':
		if m.HasReset {
			return game.Reading{Raw: m.ResetCode}, ActionReading
		}
		return game.Reading{Start: true}, ActionReading
	case 's', 'S':
		return game.Reading{Start: true}, ActionReading
	case 'q', 'Q':
		return game.Reading{}, ActionQuit
	default:
		return game.Reading{}, ActionNone
	}
}

// KeySource reads key events from a Screen and implements game.Source.
// Events are polled on a separate goroutine and queued, so presses made
// while a pattern is blinking are not lost.
type KeySource struct {
	screen   *Screen
	keys     KeyMap
	readings chan game.Reading
	quit     chan struct{}
}

// NewKeySource starts polling screen for key events.
func NewKeySource(screen *Screen, keys KeyMap) *KeySource {
	ks := &KeySource{
		screen:   screen,
		keys:     keys,
		readings: make(chan game.Reading, 16),
		quit:     make(chan struct{}),
	}
	go ks.poll()
	return ks
}

func (ks *KeySource) poll() {
	defer close(ks.quit)

	for {
		ev := ks.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized.
			return
		case *tcell.EventKey:
			r, action := ks.keys.Translate(ev.Key(), ev.Rune())
			switch action {
			case ActionQuit:
				return
			case ActionReading:
				select {
				case ks.readings <- r:
				default:
					// Queue full; drop the press like a bouncing button.
				}
			}
		case *tcell.EventResize:
			ks.screen.Sync()
		}
	}
}

// Next returns the next reading. It returns io.EOF once the player quits.
func (ks *KeySource) Next(ctx context.Context) (game.Reading, error) {
	select {
	case r := <-ks.readings:
		return r, nil
	case <-ks.quit:
		return game.Reading{}, io.EOF
	case <-ctx.Done():
		return game.Reading{}, ctx.Err()
	}
}
