package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

// CueStreamer builds the finite sound for a one-shot cue.
// CueMusic has no one-shot form and returns nil.
func CueStreamer(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueButton:
		return newVolume(NewTone(1200, 1200, 40*time.Millisecond, WaveSquare, rate), 0.15)
	case core.CueFlap:
		return newVolume(NewTone(300, 600, 80*time.Millisecond, WaveSine, rate), 0.35)
	case core.CuePoint:
		return newVolume(beep.Seq(
			NewTone(988, 988, 70*time.Millisecond, WaveSquare, rate),
			NewTone(1319, 1319, 120*time.Millisecond, WaveSquare, rate),
		), 0.15)
	case core.CueDeath:
		return newVolume(NewTone(440, 110, 500*time.Millisecond, WaveSquare, rate), 0.25)
	default:
		return nil
	}
}
