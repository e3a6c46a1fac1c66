package game

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/ledmemory/internal/input"
	"github.com/samdwyer/ledmemory/internal/led"
	"github.com/samdwyer/ledmemory/internal/telemetry"
)

// Phase is the round loop's position.
type Phase int

const (
	// PhaseStopped waits for a start signal.
	PhaseStopped Phase = iota
	// PhaseGenerate shows a fresh sequence.
	PhaseGenerate
	// PhaseInputStart collects button presses until the attempt is complete.
	PhaseInputStart
	// PhaseInputDone judges the attempt.
	PhaseInputDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseGenerate:
		return "generate"
	case PhaseInputStart:
		return "input_start"
	case PhaseInputDone:
		return "input_done"
	default:
		return "unknown"
	}
}

// Outcome is the result of a judged round.
type Outcome string

const (
	// OutcomeCorrect is a correct replay below the level-up streak.
	OutcomeCorrect Outcome = "correct"
	// OutcomeLevelUp is a correct replay that completed the streak.
	OutcomeLevelUp Outcome = "level_up"
	// OutcomeWin is a completed streak at MaxLevel.
	OutcomeWin Outcome = "win"
	// OutcomeWrong is a replay with at least one wrong press.
	OutcomeWrong Outcome = "wrong"
)

// Reading is one sample from an input source: either a raw value for the
// Reader or a press of the board's start pin.
type Reading struct {
	Raw   uint32
	Start bool
}

// Source produces readings. Next blocks until a reading is available, the
// context is done, or the source is exhausted (io.EOF).
type Source interface {
	Next(ctx context.Context) (Reading, error)
}

// Controller runs rounds of a Game against a Source.
type Controller struct {
	game       *Game
	source     Source
	log        zerolog.Logger
	tracer     trace.Tracer
	roundPause time.Duration

	phase     Phase
	round     int
	roundSpan trace.Span

	// OnOutcome, if set, is called after every judged round.
	OnOutcome func(Outcome, Snapshot)
}

// NewController creates a controller in PhaseStopped.
func NewController(cfg Config, g *Game, src Source, logger zerolog.Logger) *Controller {
	return &Controller{
		game:       g,
		source:     src,
		log:        logger,
		tracer:     telemetry.Tracer("game"),
		roundPause: cfg.RoundPause,
		phase:      PhaseStopped,
	}
}

// WithTracer replaces the tracer used for round spans.
func (c *Controller) WithTracer(t trace.Tracer) *Controller {
	c.tracer = t
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Game returns the controlled game.
func (c *Controller) Game() *Game {
	return c.game
}

// Run steps the controller until ctx is done or the source ends. A
// cancelled context and io.EOF from the source both end the run without
// error.
func (c *Controller) Run(ctx context.Context) error {
	defer c.endRound("abandoned")

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := c.Step(ctx); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// Step performs one phase of the round loop. Phases that read input block
// on the source.
func (c *Controller) Step(ctx context.Context) error {
	switch c.phase {
	case PhaseStopped:
		return c.stepStopped(ctx)
	case PhaseGenerate:
		c.stepGenerate(ctx)
		return nil
	case PhaseInputStart:
		return c.stepInput(ctx)
	case PhaseInputDone:
		c.stepDone()
		return nil
	default:
		return errors.Errorf("invalid phase %d", c.phase)
	}
}

func (c *Controller) stepStopped(ctx context.Context) error {
	r, err := c.source.Next(ctx)
	if err != nil {
		return err
	}
	if r.Start || c.game.Decode(r.Raw).Kind == input.KindReset {
		c.log.Info().Msg("Game started")
		c.game.Reset()
		c.setPhase(PhaseGenerate)
	}
	return nil
}

func (c *Controller) stepGenerate(ctx context.Context) {
	c.round++
	_, c.roundSpan = c.tracer.Start(ctx, "game.round")
	c.roundSpan.SetAttributes(
		attribute.Int("round", c.round),
		attribute.Int("level", c.game.Level()),
		attribute.Int("games", c.game.Games()),
	)

	c.game.ClearAttempt()
	c.game.GenerateSequence()

	c.log.Debug().
		Int("round", c.round).
		Int("level", c.game.Level()).
		Stringer("sequence", sequenceString(c.game.Sequence())).
		Msg("Sequence shown")
	c.setPhase(PhaseInputStart)
}

func (c *Controller) stepInput(ctx context.Context) error {
	r, err := c.source.Next(ctx)
	if err != nil {
		return err
	}

	if r.Start {
		c.log.Info().Msg("Start pressed mid-game, restarting")
		c.endRound("restarted")
		c.game.Reset()
		c.setPhase(PhaseGenerate)
		return nil
	}

	ev := c.game.GetInput(r.Raw)
	switch ev.Kind {
	case input.KindNone:
		c.log.Debug().Uint32("raw", r.Raw).Msg("Ignored reading")
	case input.KindReset:
		c.log.Debug().Msg("Attempt cleared")
	case input.KindButton:
		c.log.Debug().
			Stringer("button", ev.Symbol).
			Int("press", c.game.PressCount()).
			Bool("mistake", c.game.MistakeFound()).
			Msg("Button pressed")
	}

	if c.game.AttemptComplete() {
		c.setPhase(PhaseInputDone)
	}
	return nil
}

func (c *Controller) stepDone() {
	var outcome Outcome

	if c.game.MistakeFound() {
		outcome = OutcomeWrong
		c.game.PlayerWrong()
		c.report(outcome)
		c.game.Reset()
		c.wait()
		c.setPhase(PhaseGenerate)
		return
	}

	c.game.PlayerCorrect()
	outcome = OutcomeCorrect

	if c.game.StreakComplete() {
		if c.game.AtMaxLevel() {
			outcome = OutcomeWin
			c.game.PlayerWin()
			c.report(outcome)
			c.game.Reset()
			c.setPhase(PhaseStopped)
			return
		}
		outcome = OutcomeLevelUp
		c.game.PlayerLevelUp()
	}

	c.report(outcome)
	c.wait()
	c.setPhase(PhaseGenerate)
}

// report logs the outcome, closes the round span and notifies OnOutcome.
func (c *Controller) report(outcome Outcome) {
	snap := c.game.Snapshot()

	evt := c.log.Info()
	if outcome == OutcomeWrong {
		evt = c.log.Warn()
	}
	evt.Str("outcome", string(outcome)).
		Int("level", snap.Level).
		Int("games", snap.Games).
		Msg("Round finished")

	c.endRound(string(outcome))

	if c.OnOutcome != nil {
		c.OnOutcome(outcome, snap)
	}
}

func (c *Controller) endRound(outcome string) {
	if c.roundSpan == nil {
		return
	}
	c.roundSpan.SetAttributes(attribute.String("outcome", outcome))
	c.roundSpan.End()
	c.roundSpan = nil
}

// sequenceString renders a sequence as "led1,led3,led1" for logs.
type sequenceString []led.Symbol

func (s sequenceString) String() string {
	var b strings.Builder
	for i, sym := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}

func (c *Controller) wait() {
	if c.roundPause > 0 {
		c.game.blink.Wait(c.roundPause)
	}
}

func (c *Controller) setPhase(p Phase) {
	if p != c.phase {
		c.log.Debug().Stringer("from", c.phase).Stringer("to", p).Msg("Phase change")
	}
	c.phase = p
}
