package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

// Speaker plays cues on the default audio device through one mixer.
// The music loop starts on CueMusic and stops on CueDeath.
type Speaker struct {
	mu     sync.Mutex
	board  *soundboard
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	s := &Speaker{board: newSoundboard()}
	speaker.Play(s.board.mixer)
	return s, nil
}

// Play starts a cue without blocking.
func (s *Speaker) Play(c core.Cue) {
	speaker.Lock()
	defer speaker.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.board.play(c)
}

// soundboard owns the mixer streams. Callers hold the speaker lock.
type soundboard struct {
	mixer *beep.Mixer
	music *beep.Ctrl
}

func newSoundboard() *soundboard {
	return &soundboard{mixer: &beep.Mixer{}}
}

func (b *soundboard) play(c core.Cue) {
	switch c {
	case core.CueMusic:
		if b.music != nil {
			return
		}
		b.music = &beep.Ctrl{Streamer: Repeat(func() beep.Streamer {
			return musicLoop(sampleRate)
		})}
		b.mixer.Add(b.music)
	case core.CueDeath:
		b.stopMusic()
		b.mixer.Add(CueStreamer(c, sampleRate))
	default:
		if st := CueStreamer(c, sampleRate); st != nil {
			b.mixer.Add(st)
		}
	}
}

// stopMusic drains the music stream; the mixer drops it on its next pass.
func (b *soundboard) stopMusic() {
	if b.music == nil {
		return
	}
	b.music.Streamer = nil
	b.music = nil
}

// Close silences every stream and releases the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		speaker.Unlock()
		return
	}
	s.closed = true
	s.board.stopMusic()
	s.board.mixer.Clear()
	s.mu.Unlock()
	speaker.Unlock()

	speaker.Close()
}

// Open returns a Speaker, or Nop with the error when no device is available.
func Open() (Player, error) {
	s, err := NewSpeaker()
	if err != nil {
		return Nop{}, err
	}
	return s, nil
}
