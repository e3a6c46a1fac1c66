package boards

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/samdwyer/ledmemory/internal/led"
)

// DefaultName is the profile used when none is configured.
const DefaultName = "arduino-uno"

// LEDDef describes one LED line.
type LEDDef struct {
	Pin   string `json:"pin"`   // Pin name as the host driver knows it (e.g., "GPIO5")
	Color string `json:"color"` // Hex color used by the terminal simulator
}

// Band is an inclusive range of analog readings mapped to one button.
type Band struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

// Contains reports whether raw falls inside the band.
func (b Band) Contains(raw uint32) bool {
	return raw >= b.Min && raw <= b.Max
}

// Mid returns the middle of the band.
func (b Band) Mid() uint32 {
	return b.Min + (b.Max-b.Min)/2
}

// RemoteDef holds the remote-control codes as hex strings.
type RemoteDef struct {
	Buttons []string `json:"buttons"` // One code per LED, in board order
	Reset   string   `json:"reset"`
}

// Profile is one board wiring.
type Profile struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LEDs        []LEDDef  `json:"leds"`
	StartPin    string    `json:"startPin"`
	Bands       []Band    `json:"bands"`
	Remote      RemoteDef `json:"remote"`
}

// Validate checks that the profile describes exactly three LEDs, bands
// and button codes, and that every code parses.
func (p *Profile) Validate() error {
	n := len(led.Symbols)
	if len(p.LEDs) != n {
		return errors.Errorf("board %s: want %d leds, got %d", p.Name, n, len(p.LEDs))
	}
	if len(p.Bands) != n {
		return errors.Errorf("board %s: want %d bands, got %d", p.Name, n, len(p.Bands))
	}
	for i, b := range p.Bands {
		if b.Min > b.Max {
			return errors.Errorf("board %s: band %d has min %d > max %d", p.Name, i, b.Min, b.Max)
		}
	}
	if len(p.Remote.Buttons) != n {
		return errors.Errorf("board %s: want %d remote buttons, got %d", p.Name, n, len(p.Remote.Buttons))
	}
	if _, _, err := p.RemoteCodes(); err != nil {
		return errors.Wrapf(err, "board %s", p.Name)
	}
	return nil
}

// LED returns the LED definition for sym.
func (p *Profile) LED(sym led.Symbol) LEDDef {
	return p.LEDs[int(sym)-1]
}

// Band returns the analog band for sym.
func (p *Profile) Band(sym led.Symbol) Band {
	return p.Bands[int(sym)-1]
}

// RemoteCodes parses the button codes (in board order) and the reset code.
func (p *Profile) RemoteCodes() (buttons []uint32, reset uint32, err error) {
	buttons = make([]uint32, 0, len(p.Remote.Buttons))
	for _, s := range p.Remote.Buttons {
		code, err := ParseCode(s)
		if err != nil {
			return nil, 0, err
		}
		buttons = append(buttons, code)
	}
	reset, err = ParseCode(p.Remote.Reset)
	if err != nil {
		return nil, 0, err
	}
	return buttons, reset, nil
}

// ParseCode parses a 24-bit remote code written as hex, with or without a
// leading "0x".
func ParseCode(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hex == "" {
		return 0, errors.Errorf("empty remote code %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid remote code %q", s)
	}
	return uint32(v), nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, errors.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return tcell.ColorDefault, errors.Wrapf(err, "invalid hex color %s", hex)
	}

	return tcell.NewHexColor(int32(v)), nil
}
