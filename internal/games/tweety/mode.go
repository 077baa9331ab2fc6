package tweety

import "github.com/vovakirdan/tweety-escape/internal/core"

// Mode is the active screen of the game. Exactly one is active.
type Mode int

const (
	ModeMenu Mode = iota
	ModeHowToPlay
	ModeReady
	ModePlaying
	ModeGameOver
)

// Name returns the mode name reported to the platforms.
func (m Mode) Name() core.ModeName {
	switch m {
	case ModeMenu:
		return core.ModeMenu
	case ModeHowToPlay:
		return core.ModeHowToPlay
	case ModeReady:
		return core.ModeReady
	case ModePlaying:
		return core.ModePlaying
	case ModeGameOver:
		return core.ModeGameOver
	default:
		return "unknown"
	}
}

func (m Mode) String() string {
	return string(m.Name())
}
