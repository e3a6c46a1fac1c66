package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/led"
)

// Layout of the simulated board.
const (
	titleRow  = 1
	ledRow    = 3
	labelRow  = 4
	helpRow   = 6
	statusRow = 8
	leftPad   = 2
	ledStride = 6
)

const (
	ledOnRune  = '●'
	ledOffRune = '○'
)

// Board draws three LEDs on a Screen and implements led.Driver.
type Board struct {
	led.Sleeper

	screen *Screen
	colors [len(led.Symbols)]tcell.Color
	help   string

	mu     sync.Mutex
	lit    [len(led.Symbols)]bool
	status string
}

// NewBoard creates a board using the LED colors of the profile.
func NewBoard(screen *Screen, p *boards.Profile, help string) (*Board, error) {
	b := &Board{screen: screen, help: help}
	for i, sym := range led.Symbols {
		c, err := boards.ParseHexColor(p.LED(sym).Color)
		if err != nil {
			return nil, err
		}
		b.colors[i] = c
	}
	b.Render()
	return b, nil
}

// SetLine lights or clears one LED and redraws.
func (b *Board) SetLine(sym led.Symbol, level led.Level) {
	if !sym.Valid() {
		return
	}
	b.mu.Lock()
	b.lit[int(sym)-1] = level == led.High
	b.mu.Unlock()
	b.Render()
}

// SetStatus replaces the status line and redraws.
func (b *Board) SetStatus(msg string) {
	b.mu.Lock()
	b.status = msg
	b.mu.Unlock()
	b.Render()
}

// Lit reports whether sym is currently drawn as on.
func (b *Board) Lit(sym led.Symbol) bool {
	if !sym.Valid() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lit[int(sym)-1]
}

// Render redraws the whole board.
func (b *Board) Render() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	b.screen.SetString(leftPad, titleRow, "LED MEMORY", titleStyle)

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := range led.Symbols {
		x := ledColumn(i)
		if b.lit[i] {
			b.screen.SetContent(x, ledRow, ledOnRune, tcell.StyleDefault.Foreground(b.colors[i]).Bold(true))
		} else {
			b.screen.SetContent(x, ledRow, ledOffRune, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
		}
		b.screen.SetContent(x, labelRow, rune('1'+i), labelStyle)
	}

	b.screen.SetString(leftPad, helpRow, b.help, labelStyle)
	b.screen.SetString(leftPad, statusRow, b.status, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	b.screen.Show()
}

// ledColumn returns the screen column of the i-th LED.
func ledColumn(i int) int {
	return leftPad + i*ledStride
}
