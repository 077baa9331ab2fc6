package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to surface size and for deterministic simulation.
type RuntimeConfig struct {
	SurfaceW float64 // Surface width in surface units
	SurfaceH float64 // Surface height in surface units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		SurfaceW: 1152,
		SurfaceH: 648,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the simulated time covered by one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// ModeName identifies a state-machine mode to the platforms.
type ModeName string

// Mode names the platforms act on.
const (
	ModeMenu      ModeName = "menu"
	ModeHowToPlay ModeName = "how-to-play"
	ModeReady     ModeName = "ready"
	ModePlaying   ModeName = "playing"
	ModeGameOver  ModeName = "game-over"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode      ModeName // Current state-machine mode
	Tier      string   // Active difficulty tier name
	Score     int      // Score of the current attempt
	BestScore int      // Best score across attempts of this process
	Attempts  int      // Number of (re)starts so far
	GameOver  bool     // Whether the current attempt has ended
}

// Cue is a fire-and-forget audio cue requested by the game.
type Cue int

const (
	CueButton Cue = iota
	CueFlap
	CuePoint
	CueDeath
	CueMusic
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueButton:
		return "button"
	case CueFlap:
		return "flap"
	case CuePoint:
		return "point"
	case CueDeath:
		return "death"
	case CueMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Transition records a mode change that happened during a step.
type Transition struct {
	From ModeName
	To   ModeName
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State       GameState
	Cues        []Cue
	Transitions []Transition
}
