// Package logging builds the zerolog loggers used across ledmemory.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// LogKey names the structured fields shared by every component.
var LogKey = struct {
	Module string
	Board  string
	Input  string
}{
	Module: "module",
	Board:  "board",
	Input:  "input",
}

// New returns a root logger writing to w. Terminals get the console writer,
// anything else gets JSON lines.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Component returns a child of parent tagged with the component name.
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str(LogKey.Module, name).Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
