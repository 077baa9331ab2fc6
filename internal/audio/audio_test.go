package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.IsNaN(smp[0]) || math.IsInf(smp[0], 0) {
				t.Fatal("Stream produced a non-finite sample")
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestCueStreamersAreFinite(t *testing.T) {
	tests := []struct {
		cue     core.Cue
		maxSecs float64
	}{
		{core.CueButton, 0.1},
		{core.CueFlap, 0.2},
		{core.CuePoint, 0.3},
		{core.CueDeath, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := CueStreamer(tt.cue, sampleRate)
			if s == nil {
				t.Fatal("Cue should have a sound")
			}
			n, peak := drain(t, s, sampleRate.N(2e9))
			if n == 0 || n > int(tt.maxSecs*float64(sampleRate)) {
				t.Errorf("Cue length %d samples, expected (0, %v s]", n, tt.maxSecs)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Peak level %f out of range", peak)
			}
		})
	}
}

func TestMusicHasNoOneShot(t *testing.T) {
	if CueStreamer(core.CueMusic, sampleRate) != nil {
		t.Error("Music should only play as a loop")
	}
}

func TestMusicLoopRepeats(t *testing.T) {
	s := Repeat(func() beep.Streamer { return musicLoop(sampleRate) })
	limit := sampleRate.N(5e9) // longer than one pass of the melody
	n, _ := drain(t, s, limit)
	if n < limit {
		t.Errorf("Looped music stopped after %d samples", n)
	}
}

func TestToneGlide(t *testing.T) {
	s := NewTone(100, 200, 1e8, WaveSine, sampleRate)
	n, _ := drain(t, s, sampleRate.N(1e9))
	if n != sampleRate.N(1e8) {
		t.Errorf("Tone length %d, expected %d", n, sampleRate.N(1e8))
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(core.CueFlap)
	p.Close()
}

func TestSoundboardStopsMusic(t *testing.T) {
	b := newSoundboard()
	buf := make([][2]float64, 512)
	second := sampleRate.N(time.Second)

	for attempt := 1; attempt <= 5; attempt++ {
		b.play(core.CueMusic)
		b.play(core.CueMusic)
		if got := b.mixer.Len(); got != 1 {
			t.Fatalf("Attempt %d: %d streams while music plays, expected 1", attempt, got)
		}

		b.play(core.CueDeath)
		for n := 0; n < second; n += len(buf) {
			b.mixer.Stream(buf)
		}
		if got := b.mixer.Len(); got != 0 {
			t.Fatalf("Attempt %d: %d streams left after death, expected 0", attempt, got)
		}
	}
}
