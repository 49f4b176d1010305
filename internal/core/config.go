package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Surface width (terminal cells or window pixels)
	ScreenH  int    // Surface height
	TickRate int    // Frames per second requested from the frontend (default 60)
	Player   string // Name recorded with saved scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Player:   "player",
	}
}

// FrameInterval returns the target duration of one frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score  int  // Current score
	Lives  int  // Remaining lives
	Paused bool // Whether the game is paused
}

// Event is a bit set of things that happened during one Step.
// Frontends use it for sound cues and score persistence.
type Event uint16

const (
	EventSideRebound Event = 1 << iota
	EventTopRebound
	EventPaddleRebound
	EventLifeLost
	EventGameOver
)

// Has reports whether all bits of flag are set.
func (e Event) Has(flag Event) bool {
	return e&flag == flag
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events Event
	// FinalScore is the score reached before the reset that raised EventGameOver.
	FinalScore int
}
