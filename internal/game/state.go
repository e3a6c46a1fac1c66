// Package game provides the memory-game state machine and the round loop
// that drives it.
package game

// State represents where the game is within a round.
type State int

const (
	// StateIdle is the state before the first sequence and after a reset.
	StateIdle State = iota
	// StateSequenceShown means a fresh sequence has just been played.
	StateSequenceShown
	// StateAwaitingInput means the player has started replaying.
	StateAwaitingInput
	// StateCorrect means the last full replay matched.
	StateCorrect
	// StateWrong means the last full replay had a mistake.
	StateWrong
	// StateLevelUp means the level was just raised.
	StateLevelUp
	// StateWin means the final level was cleared.
	StateWin
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSequenceShown:
		return "sequence_shown"
	case StateAwaitingInput:
		return "awaiting_input"
	case StateCorrect:
		return "correct"
	case StateWrong:
		return "wrong"
	case StateLevelUp:
		return "level_up"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}
