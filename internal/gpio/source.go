package gpio

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"periph.io/x/periph/conn/gpio"

	"github.com/samdwyer/ledmemory/internal/game"
)

// ParseReading parses one line of a readings stream. Accepted forms are a
// decimal value ("1021"), a hex code ("0xFF30CF") or "start". Blank lines
// and lines starting with '#' are skipped (ok is false).
func ParseReading(line string) (r game.Reading, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return game.Reading{}, false, nil
	}
	if strings.EqualFold(line, "start") {
		return game.Reading{Start: true}, true, nil
	}

	v, err := strconv.ParseUint(line, 0, 32)
	if err != nil {
		return game.Reading{}, false, errors.Wrapf(err, "invalid reading %q", line)
	}
	return game.Reading{Raw: uint32(v)}, true, nil
}

// ButtonSource merges readings from a line stream (an ADC or IR decoder
// process, or a file) with presses of the start pin. It implements
// game.Source.
type ButtonSource struct {
	log      zerolog.Logger
	readings chan game.Reading
	done     chan struct{}

	mu  sync.Mutex
	err error
}

// NewButtonSource starts reading lines and, if start is not nil, watching
// the start pin. Both stop when ctx is done. The source ends with io.EOF
// when lines is exhausted.
func NewButtonSource(ctx context.Context, lines io.Reader, start gpio.PinIn, logger zerolog.Logger) *ButtonSource {
	bs := &ButtonSource{
		log:      logger,
		readings: make(chan game.Reading, 16),
		done:     make(chan struct{}),
	}
	go bs.readLines(ctx, lines)
	if start != nil {
		go bs.watchStart(ctx, start)
	}
	return bs
}

func (bs *ButtonSource) readLines(ctx context.Context, lines io.Reader) {
	defer close(bs.done)

	scanner := bufio.NewScanner(lines)
	n := 0
	for scanner.Scan() {
		n++
		r, ok, err := ParseReading(scanner.Text())
		if err != nil {
			bs.log.Warn().Err(err).Int("line", n).Msg("Skipping malformed reading")
			continue
		}
		if !ok {
			continue
		}
		if !bs.send(ctx, r) {
			return
		}
	}

	bs.mu.Lock()
	bs.err = scanner.Err()
	bs.mu.Unlock()
}

func (bs *ButtonSource) watchStart(ctx context.Context, start gpio.PinIn) {
	var last time.Time
	for ctx.Err() == nil {
		if !start.WaitForEdge(500 * time.Millisecond) {
			continue
		}
		// Pulled up, so a press reads low.
		if start.Read() != gpio.Low {
			continue
		}
		if now := time.Now(); now.Sub(last) >= debounce {
			last = now
			bs.log.Debug().Msg("Start pin pressed")
			if !bs.send(ctx, game.Reading{Start: true}) {
				return
			}
		}
	}
}

func (bs *ButtonSource) send(ctx context.Context, r game.Reading) bool {
	select {
	case bs.readings <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// Next returns the next reading. Buffered readings are delivered before the
// end of the stream is reported.
func (bs *ButtonSource) Next(ctx context.Context) (game.Reading, error) {
	select {
	case r := <-bs.readings:
		return r, nil
	default:
	}

	select {
	case r := <-bs.readings:
		return r, nil
	case <-bs.done:
		select {
		case r := <-bs.readings:
			return r, nil
		default:
		}
		bs.mu.Lock()
		defer bs.mu.Unlock()
		if bs.err != nil {
			return game.Reading{}, errors.Wrap(bs.err, "reading input stream")
		}
		return game.Reading{}, io.EOF
	case <-ctx.Done():
		return game.Reading{}, ctx.Err()
	}
}
