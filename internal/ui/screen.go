// Package ui simulates the LED board in a terminal using tcell: LEDs are
// drawn as colored cells and key presses become input readings.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// NewSimulationScreen creates an in-memory screen of the given size. It is
// used by tests and headless runs.
func NewSimulationScreen(width, height int) (*Screen, error) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetSize(width, height)
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// SetString writes msg starting at (x, y).
func (s *Screen) SetString(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Cell returns the rune and style drawn at (x, y).
func (s *Screen) Cell(x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.screen.GetContent(x, y)
	return r, style
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
