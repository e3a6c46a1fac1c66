package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/ledmemory/internal/input"
	"github.com/samdwyer/ledmemory/internal/led"
)

const (
	// MaxLevel is the longest sequence and the level that wins the game.
	MaxLevel = 3
	// StreakToLevelUp is the number of correct replays needed at a level.
	StreakToLevelUp = 3
)

// Snapshot is a copy of the game state.
type Snapshot struct {
	Sequence     []led.Symbol
	PressCount   int
	Games        int
	Level        int
	MistakeFound bool
	State        State
}

// Game holds the sequence, level and replay state. All methods block for
// the duration of their LED patterns and must be called from one goroutine.
type Game struct {
	blink   *led.Blinker
	reader  input.Reader
	rng     *rand.Rand
	timings Timings

	sequence     [MaxLevel]led.Symbol
	pressCount   int
	games        int
	level        int
	mistakeFound bool
	state        State
}

// New creates a game at level 1 playing through drv and decoding with reader.
func New(cfg Config, drv led.Driver, reader input.Reader) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		blink:   led.NewBlinker(drv),
		reader:  reader,
		rng:     rand.New(rand.NewSource(seed)),
		timings: cfg.timings(),
		level:   1,
		state:   StateIdle,
	}
}

// GenerateSequence fills the first Level() slots with random symbols and
// plays them back. Symbols may repeat.
func (g *Game) GenerateSequence() {
	n := g.length()
	for i := 0; i < n; i++ {
		g.sequence[i] = led.Symbols[g.rng.Intn(len(led.Symbols))]
	}
	for i := 0; i < n; i++ {
		g.blink.Blink(g.sequence[i], g.timings.Show)
	}
	g.state = StateSequenceShown
}

// GetInput decodes raw and applies it.
//
// Unmatched readings change nothing. A reset clears the current attempt and
// returns a game awaiting input to StateSequenceShown. A button press is echoed on its LED and compared against the next expected
// symbol; pressCount advances even when the press was wrong, so the player
// finishes the attempt before it is judged. Presses after the attempt is
// complete are ignored.
func (g *Game) GetInput(raw uint32) input.Event {
	ev := g.reader.Read(raw)

	switch ev.Kind {
	case input.KindReset:
		g.ClearAttempt()
		if g.state == StateAwaitingInput {
			g.state = StateSequenceShown
		}
		return ev
	case input.KindButton:
	default:
		return ev
	}

	if g.pressCount >= g.length() {
		return input.Event{}
	}

	g.blink.Blink(ev.Symbol, g.timings.Press)
	if g.sequence[g.pressCount] != ev.Symbol {
		g.mistakeFound = true
	}
	g.pressCount++
	g.state = StateAwaitingInput
	return ev
}

// PlayerCorrect records a correct replay and plays the correct pattern.
func (g *Game) PlayerCorrect() {
	g.games++
	g.pressCount = 0
	g.state = StateCorrect
	g.blink.QuickSuccession(g.timings.CorrectCycles)
}

// PlayerLevelUp raises the level by one, clears the streak and plays the
// level-up pattern.
func (g *Game) PlayerLevelUp() {
	g.level++
	g.games = 0
	g.state = StateLevelUp
	g.blink.Wait(g.timings.LevelUpPause)
	g.blink.BlinkAll(g.timings.LevelUpBlink)
	g.blink.BlinkAll(g.timings.LevelUpBlink)
}

// PlayerWin plays the win pattern. Level, streak and attempt are left as
// they are; the caller must Reset before the next game.
func (g *Game) PlayerWin() {
	g.state = StateWin
	g.blink.Wait(g.timings.WinPause)
	g.blink.QuickSuccession(g.timings.WinCycles)
}

// PlayerWrong plays the wrong pattern. PressCount and MistakeFound are left
// as they are; the caller must ClearAttempt or Reset.
func (g *Game) PlayerWrong() {
	g.state = StateWrong
	g.blink.BlinkAll(g.timings.Wrong)
}

// ClearAttempt restarts the current replay without touching level or streak.
func (g *Game) ClearAttempt() {
	g.pressCount = 0
	g.mistakeFound = false
}

// Reset returns the game to level 1 with no streak and no sequence, and
// turns every LED off.
func (g *Game) Reset() {
	g.blink.AllOff()
	g.sequence = [MaxLevel]led.Symbol{}
	g.pressCount = 0
	g.games = 0
	g.level = 1
	g.mistakeFound = false
	g.state = StateIdle
}

// Decode maps raw without changing any state.
func (g *Game) Decode(raw uint32) input.Event {
	return g.reader.Read(raw)
}

// Level returns the current sequence length.
func (g *Game) Level() int { return g.level }

// Games returns the correct-replay streak at the current level.
func (g *Game) Games() int { return g.games }

// PressCount returns the position within the current replay.
func (g *Game) PressCount() int { return g.pressCount }

// MistakeFound reports whether the current replay contains a wrong press.
func (g *Game) MistakeFound() bool { return g.mistakeFound }

// State returns the current state.
func (g *Game) State() State { return g.state }

// AttemptComplete reports whether the player has pressed Level() buttons.
func (g *Game) AttemptComplete() bool { return g.pressCount >= g.length() }

// StreakComplete reports whether the streak has reached the level-up
// threshold.
func (g *Game) StreakComplete() bool { return g.games >= StreakToLevelUp }

// AtMaxLevel reports whether the current level is the last one.
func (g *Game) AtMaxLevel() bool { return g.level >= MaxLevel }

// Sequence returns a copy of the active part of the sequence.
func (g *Game) Sequence() []led.Symbol {
	out := make([]led.Symbol, g.length())
	copy(out, g.sequence[:g.length()])
	return out
}

// length is the number of active sequence slots. It only differs from level
// if PlayerLevelUp was called at MaxLevel.
func (g *Game) length() int {
	return min(g.level, MaxLevel)
}

// Snapshot returns a copy of the full state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Sequence:     g.Sequence(),
		PressCount:   g.pressCount,
		Games:        g.games,
		Level:        g.level,
		MistakeFound: g.mistakeFound,
		State:        g.state,
	}
}
