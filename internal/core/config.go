package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// CellW and CellH are the size of one terminal cell in play-field pixels.
	// Zero means the game's configured default.
	CellW float64
	CellH float64

	// Preset names a difficulty preset for this session. Empty means the
	// game's default.
	Preset string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score, floored
	Started  bool   // Whether a run has been started
	GameOver bool   // Whether the run has ended
	Phase    string // Human-readable lifecycle phase
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only on the tick that ended the run.
	Ended bool

	// Summary is set together with Ended.
	Summary *RunSummary
}

// RunSummary describes a finished run for end-of-run presentation.
type RunSummary struct {
	GameID     string
	Title      string
	Score      int
	Difficulty float64
	Duration   time.Duration
	Spawned    int
	Dodged     int
}
