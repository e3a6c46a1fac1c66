package gpio

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpiotest"

	"github.com/samdwyer/ledmemory/internal/boards"
	"github.com/samdwyer/ledmemory/internal/game"
	"github.com/samdwyer/ledmemory/internal/led"
	"github.com/samdwyer/ledmemory/internal/logging"
)

// fakePins replaces Lookup with in-memory pins for the profile.
func fakePins(t *testing.T, p *boards.Profile) map[string]*gpiotest.Pin {
	t.Helper()

	pins := map[string]*gpiotest.Pin{}
	for i, l := range p.LEDs {
		pins[l.Pin] = &gpiotest.Pin{N: l.Pin, Num: i}
	}
	pins[p.StartPin] = &gpiotest.Pin{N: p.StartPin, Num: 99, EdgesChan: make(chan gpio.Level, 4)}

	orig := Lookup
	Lookup = func(name string) gpio.PinIO {
		if pin, ok := pins[name]; ok {
			return pin
		}
		return nil
	}
	t.Cleanup(func() { Lookup = orig })
	return pins
}

func piProfile(t *testing.T) *boards.Profile {
	t.Helper()
	p := boards.MustLoadRegistry().GetByName("raspberry-pi")
	if p == nil {
		t.Fatal("raspberry-pi board missing")
	}
	return p
}

func TestOpenClaimsPins(t *testing.T) {
	p := piProfile(t)
	pins := fakePins(t, p)
	pins[p.LEDs[0].Pin].L = gpio.High

	b, err := open(p, logging.Nop())
	if err != nil {
		t.Fatalf("open() error: %v", err)
	}

	for _, l := range p.LEDs {
		if pins[l.Pin].L != gpio.Low {
			t.Errorf("%s should start low", l.Pin)
		}
	}
	if pins[p.StartPin].P != gpio.PullUp {
		t.Errorf("start pin pull = %v, want PullUp", pins[p.StartPin].P)
	}
	if b.StartPin() == nil {
		t.Error("StartPin() = nil, want the start pin")
	}
}

func TestOpenUnknownPin(t *testing.T) {
	p := *piProfile(t)
	fakePins(t, &p)
	p.LEDs = []boards.LEDDef{{Pin: "GPIO5"}, {Pin: "GPIO6"}, {Pin: "NOPE"}}

	if _, err := open(&p, logging.Nop()); err == nil {
		t.Error("open() should fail for an unknown LED pin")
	}
}

func TestSetLineAndClose(t *testing.T) {
	p := piProfile(t)
	pins := fakePins(t, p)

	b, err := open(p, logging.Nop())
	if err != nil {
		t.Fatalf("open() error: %v", err)
	}

	b.SetLine(led.LED3, led.High)
	if pins[p.LED(led.LED3).Pin].L != gpio.High {
		t.Error("LED3 pin should be high after SetLine(High)")
	}
	if pins[p.LED(led.LED1).Pin].L != gpio.Low {
		t.Error("LED1 pin should stay low")
	}
	b.SetLine(led.None, led.High) // ignored

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if pins[p.LED(led.LED3).Pin].L != gpio.Low {
		t.Error("Close should turn every LED off")
	}
}

func TestParseReading(t *testing.T) {
	tests := []struct {
		line  string
		want  game.Reading
		ok    bool
		valid bool
	}{
		{"1021", game.Reading{Raw: 1021}, true, true},
		{"  510 ", game.Reading{Raw: 510}, true, true},
		{"0xFF30CF", game.Reading{Raw: 0xFF30CF}, true, true},
		{"0XFF6897", game.Reading{Raw: 0xFF6897}, true, true},
		{"start", game.Reading{Start: true}, true, true},
		{"START", game.Reading{Start: true}, true, true},
		{"", game.Reading{}, false, true},
		{"# comment", game.Reading{}, false, true},
		{"banana", game.Reading{}, false, false},
		{"-3", game.Reading{}, false, false},
		{"0x1FFFFFFFF", game.Reading{}, false, false},
	}

	for _, tt := range tests {
		got, ok, err := ParseReading(tt.line)
		if tt.valid != (err == nil) {
			t.Errorf("ParseReading(%q) error = %v, want valid=%v", tt.line, err, tt.valid)
			continue
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseReading(%q) = %+v, %v; want %+v, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestButtonSourceLines(t *testing.T) {
	lines := strings.NewReader("start\n1021\n\nbogus\n# skip\n0xFF30CF\n")
	bs := NewButtonSource(context.Background(), lines, nil, logging.Nop())

	want := []game.Reading{{Start: true}, {Raw: 1021}, {Raw: 0xFF30CF}}
	for i, w := range want {
		got, err := bs.Next(context.Background())
		if err != nil {
			t.Fatalf("Next() %d error: %v", i, err)
		}
		if got != w {
			t.Errorf("Next() %d = %+v, want %+v", i, got, w)
		}
	}

	if _, err := bs.Next(context.Background()); err != io.EOF {
		t.Errorf("Next() at end = %v, want io.EOF", err)
	}
}

func TestButtonSourceStartPin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pin := &gpiotest.Pin{N: "GPIO2", EdgesChan: make(chan gpio.Level, 1)}
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		t.Fatalf("In() error: %v", err)
	}

	// A pipe that never yields lines keeps the source open.
	pr, pw := io.Pipe()
	defer pw.Close()
	bs := NewButtonSource(ctx, pr, pin, logging.Nop())

	pin.EdgesChan <- gpio.Low

	readCtx, readCancel := context.WithTimeout(ctx, 2*time.Second)
	defer readCancel()
	got, err := bs.Next(readCtx)
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if !got.Start {
		t.Errorf("Next() = %+v, want a start press", got)
	}
}

func TestButtonSourceContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	bs := NewButtonSource(context.Background(), pr, nil, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bs.Next(ctx); err != context.Canceled {
		t.Errorf("Next() = %v, want context.Canceled", err)
	}
}
