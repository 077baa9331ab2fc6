// Package audio plays the game's cues. Every cue is synthesized, so the
// binary ships without sound assets.
package audio

import "github.com/vovakirdan/tweety-escape/internal/core"

// Player plays fire-and-forget cues.
type Player interface {
	Play(c core.Cue)
	Close()
}

// Nop is a Player that stays silent. Used for SSH sessions and when no
// audio device is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// Close does nothing.
func (Nop) Close() {}
