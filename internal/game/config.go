package game

import "time"

// Timings holds the durations of every notification pattern.
type Timings struct {
	Show          time.Duration // On and off time per symbol when playing the sequence
	Press         time.Duration // Echo blink for a button press
	Wrong         time.Duration // All-LED blink on a wrong replay
	LevelUpPause  time.Duration // Pause before the level-up blink
	LevelUpBlink  time.Duration // Each of the two all-LED level-up blinks
	WinPause      time.Duration // Pause before the win pattern
	CorrectCycles int           // Quick-succession cycles after a correct replay
	WinCycles     int           // Quick-succession cycles after a win
}

// DefaultTimings returns the stock board timings.
func DefaultTimings() Timings {
	return Timings{
		Show:          250 * time.Millisecond,
		Press:         120 * time.Millisecond,
		Wrong:         500 * time.Millisecond,
		LevelUpPause:  100 * time.Millisecond,
		LevelUpBlink:  150 * time.Millisecond,
		WinPause:      50 * time.Millisecond,
		CorrectCycles: 5,
		WinCycles:     10,
	}
}

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Timings overrides the notification durations. The zero value means
	// DefaultTimings.
	Timings Timings

	// RoundPause is the delay between a round's feedback and the next
	// sequence.
	RoundPause time.Duration
}

func (c Config) timings() Timings {
	if c.Timings == (Timings{}) {
		return DefaultTimings()
	}
	return c.Timings
}
