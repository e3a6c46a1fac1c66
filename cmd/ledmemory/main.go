// Package main is the entry point for ledmemory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/game"
	"github.com/samdwyer/ledmemory/internal/gpio"
	"github.com/samdwyer/ledmemory/internal/input"
	"github.com/samdwyer/ledmemory/internal/led"
	"github.com/samdwyer/ledmemory/internal/logging"
	"github.com/samdwyer/ledmemory/internal/telemetry"
	"github.com/samdwyer/ledmemory/internal/ui"
)

var (
	// Version is set with -ldflags during release builds.
	Version = "dev"
	// Commit is set with -ldflags during release builds.
	Commit = "none"
)

// ledmemoryMain is the real entry point. Defers in main don't run on
// os.Exit, so everything that needs cleanup lives here.
func ledmemoryMain() error {
	// .env is optional; variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("ledmemory %s (commit %s)\n", Version, Commit)
		return nil
	}

	registry, err := boards.LoadRegistry()
	if err != nil {
		return errors.Wrap(err, "could not load board profiles")
	}

	if cfg.ListBoards {
		for _, p := range registry.All() {
			fmt.Printf("%-14s %s\n", p.Name, p.Description)
		}
		return nil
	}

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	root := logging.New(logOut, cfg.Debug)
	log := logging.Component(root, "main")
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	profile, err := cfg.profile(registry)
	if err != nil {
		return err
	}
	reader, err := input.New(cfg.variant(), profile)
	if err != nil {
		return err
	}

	log.Info().
		Str(logging.LogKey.Board, profile.Name).
		Str(logging.LogKey.Input, cfg.Input).
		Str("driver", cfg.Driver).
		Str("version", Version).
		Msg("Starting ledmemory")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: cfg.Telemetry.Endpoint,
			Version:  Version,
			Board:    profile.Name,
			Input:    cfg.Input,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Error shutting down telemetry")
				}
			}()
		}
	}

	var (
		drv      led.Driver
		src      game.Source
		onStatus func(string)
	)

	switch cfg.Driver {
	case driverTerminal:
		screen, err := ui.NewScreen()
		if err != nil {
			return errors.Wrap(err, "could not open terminal")
		}
		defer screen.Close()

		board, err := ui.NewBoard(screen, profile, ui.HelpText)
		if err != nil {
			return err
		}
		drv = board
		onStatus = board.SetStatus
		src = ui.NewKeySource(screen, keyMap(reader))

	case driverGPIO:
		board, err := gpio.Open(profile, logging.Component(root, "gpio"))
		if err != nil {
			return err
		}
		defer func() {
			if err := board.Close(); err != nil {
				log.Error().Err(err).Msg("Could not release GPIO pins")
			}
		}()

		lines, closeLines, err := openReadings(cfg.Readings)
		if err != nil {
			return err
		}
		defer closeLines()

		drv = board
		onStatus = func(msg string) { log.Info().Msg(msg) }
		src = gpio.NewButtonSource(ctx, lines, board.StartPin(), logging.Component(root, "buttons"))

	default:
		return errors.Errorf("unknown driver %q", cfg.Driver)
	}

	g := game.New(cfg.gameConfig(), drv, reader)
	controller := game.NewController(cfg.gameConfig(), g, src, logging.Component(root, "game"))
	controller.OnOutcome = func(o game.Outcome, s game.Snapshot) {
		onStatus(statusLine(o, s))
	}

	onStatus(startHint(cfg.variant()))

	if err := controller.Run(ctx); err != nil {
		return errors.Wrap(err, "game stopped")
	}

	log.Info().Msg("Bye")
	return nil
}

// keyMap builds the simulator's key bindings for reader.
func keyMap(reader input.Reader) ui.KeyMap {
	km := ui.KeyMap{}
	if enc, ok := reader.(input.Encoder); ok {
		km.Encoder = enc
	}
	if remote, ok := reader.(*input.Remote); ok {
		km.ResetCode = remote.ResetCode()
		km.HasReset = true
	}
	return km
}

func startHint(v input.Variant) string {
	if v == input.VariantRemote {
		return "Press reset to start"
	}
	return "Press start to begin"
}

func statusLine(o game.Outcome, s game.Snapshot) string {
	switch o {
	case game.OutcomeWin:
		return "You win! Press start to play again"
	case game.OutcomeWrong:
		return "Wrong! Back to level 1"
	case game.OutcomeLevelUp:
		return fmt.Sprintf("Level up! Now at level %d", s.Level)
	default:
		return fmt.Sprintf("Correct! Level %d, streak %d/%d", s.Level, s.Games, game.StreakToLevelUp)
	}
}

// openLog picks the log destination. The terminal driver owns the screen,
// so logs go to a file there.
func openLog(cfg *config) (io.Writer, func(), error) {
	if cfg.Driver != driverTerminal || cfg.LogFile == "" || cfg.LogFile == "-" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not open log file %s", cfg.LogFile)
	}
	return f, func() { f.Close() }, nil
}

// openReadings opens the readings stream; "-" is stdin.
func openReadings(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not open readings %s", path)
	}
	return f, func() { f.Close() }, nil
}

func main() {
	if err := ledmemoryMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logger := zerolog.New(os.Stderr)
		logger.Error().Err(err).Msg("Failed running ledmemory")
		os.Exit(1)
	}
}
