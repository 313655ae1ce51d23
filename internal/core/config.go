package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	FrameDelay time.Duration // Pause between frames
	Seed       int64         // RNG seed for deterministic obstacle placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FrameDelay: 10 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// EndReason says why a game reached its terminal state.
type EndReason int

const (
	EndNone EndReason = iota
	EndQuit
	EndCollision
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndQuit:
		return "quit"
	case EndCollision:
		return "collision"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int       // Frames survived
	GameOver bool      // Whether the game has ended
	Reason   EndReason // Why the game ended
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Ticked bool // Whether obstacles advanced this frame
}
