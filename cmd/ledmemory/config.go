package main

import (
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/game"
	"github.com/samdwyer/ledmemory/internal/input"
)

const (
	driverTerminal = "terminal"
	driverGPIO     = "gpio"
)

type telemetryConfig struct {
	Enabled  bool   `long:"enabled" env:"ENABLED" description:"Export round traces over OTLP/HTTP"`
	Endpoint string `long:"endpoint" env:"ENDPOINT" description:"OTLP endpoint URL (defaults to OTEL_EXPORTER_OTLP_ENDPOINT)"`
}

type config struct {
	ShowVersion bool          `short:"V" long:"version" description:"Display version information and exit"`
	Debug       bool          `long:"debug" env:"DEBUG" description:"Log phase changes and every reading"`
	LogFile     string        `long:"logfile" env:"LOGFILE" default:"ledmemory.log" description:"Log destination in terminal mode (the screen is taken)"`
	Driver      string        `long:"driver" env:"DRIVER" default:"terminal" choice:"terminal" choice:"gpio" description:"LED driver"`
	Input       string        `long:"input" env:"INPUT" default:"analog" choice:"analog" choice:"remote" description:"Input variant"`
	Board       string        `long:"board" env:"BOARD" default:"arduino-uno" description:"Board profile"`
	Readings    string        `long:"readings" env:"READINGS" default:"-" description:"Readings stream for the gpio driver; '-' is stdin"`
	Seed        int64         `long:"seed" env:"SEED" description:"Sequence seed; 0 picks one from the clock"`
	RoundPause  time.Duration `long:"roundpause" env:"ROUND_PAUSE" default:"500ms" description:"Pause between rounds"`
	ListBoards  bool          `long:"listboards" description:"List board profiles and exit"`

	Telemetry telemetryConfig `group:"Telemetry" namespace:"telemetry" env-namespace:"TELEMETRY"`
}

// loadConfig parses args (without the program name) and the LEDMEMORY_*
// environment.
func loadConfig(args []string) (*config, error) {
	cfg := &config{}

	parser := flags.NewParser(cfg, flags.Default)
	parser.NamespaceDelimiter = "."
	parser.EnvNamespace = "LEDMEMORY"
	parser.EnvNamespaceDelimiter = "_"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if cfg.RoundPause < 0 {
		return nil, errors.Errorf("roundpause must not be negative, got %v", cfg.RoundPause)
	}
	return cfg, nil
}

func (c *config) gameConfig() game.Config {
	return game.Config{
		Seed:       c.Seed,
		RoundPause: c.RoundPause,
	}
}

func (c *config) variant() input.Variant {
	return input.Variant(c.Input)
}

func (c *config) profile(registry *boards.Registry) (*boards.Profile, error) {
	name := c.Board
	if name == "" {
		name = boards.DefaultName
	}
	return registry.Lookup(name)
}
