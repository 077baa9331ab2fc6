package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone, optionally sliding in pitch.
type oscillator struct {
	from, to float64 // Start and end frequency
	wave     WaveType
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
}

// NewTone creates a tone that glides linearly from one frequency to another.
func NewTone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{from: from, to: to, wave: wave, total: rate.N(d), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		// Short fade at both ends avoids clicks.
		fade := math.Min(1, math.Min(float64(o.pos), float64(o.total-o.pos))/float64(o.rate.N(5*time.Millisecond)))
		val *= fade

		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// newVolume scales a stream linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of the music loop; freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var melody = []note{
	{659.25, 150 * time.Millisecond}, {783.99, 150 * time.Millisecond},
	{880.00, 300 * time.Millisecond}, {0, 150 * time.Millisecond},
	{783.99, 150 * time.Millisecond}, {659.25, 150 * time.Millisecond},
	{587.33, 300 * time.Millisecond}, {0, 150 * time.Millisecond},
	{523.25, 150 * time.Millisecond}, {587.33, 150 * time.Millisecond},
	{659.25, 450 * time.Millisecond}, {0, 300 * time.Millisecond},
}

// repeater plays streams from next back to back, forever.
type repeater struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

// Repeat loops a generated stream without requiring it to seek.
func Repeat(next func() beep.Streamer) beep.Streamer {
	return &repeater{next: next}
}

func (r *repeater) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if r.cur == nil {
			r.cur = r.next()
		}
		m, more := r.cur.Stream(samples[n:])
		n += m
		if !more {
			r.cur = nil
			if m == 0 && n == 0 {
				// An empty pass would spin forever.
				return 0, false
			}
		}
	}
	return n, true
}

func (r *repeater) Err() error { return nil }

// musicLoop returns one pass of the background melody.
func musicLoop(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		parts = append(parts, NewTone(n.freq, n.freq, n.dur, WaveTriangle, rate))
	}
	return newVolume(beep.Seq(parts...), 0.12)
}
