// Package audio synthesizes the game's sound cues and plays them through
// the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue names a sound the game can ask for.
type Cue int

const (
	CuePickup Cue = iota
	CueBonus
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueBonus:
		return "bonus"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// note is one shaped tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

const attack = 5 * time.Millisecond

var cues = map[Cue][]note{
	// Two alternating blips, the classic "waka".
	CuePickup: {
		{freq: 440, dur: 45 * time.Millisecond, wave: WaveSquare},
		{freq: 330, dur: 45 * time.Millisecond, wave: WaveSquare},
	},
	CueBonus: {
		{freq: 660, dur: 60 * time.Millisecond, wave: WaveSine},
		{freq: 880, dur: 60 * time.Millisecond, wave: WaveSine},
		{freq: 1320, dur: 90 * time.Millisecond, wave: WaveSine},
	},
	// C5 E5 G5 C6
	CueWin: {
		{freq: 523.25, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 659.25, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 783.99, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 1046.50, dur: 300 * time.Millisecond, wave: WaveSquare},
	},
	CueLose: {
		{freq: 392, dur: 150 * time.Millisecond, wave: WaveSaw},
		{freq: 311, dur: 150 * time.Millisecond, wave: WaveSaw},
		{freq: 233, dur: 150 * time.Millisecond, wave: WaveSaw},
		{freq: 147, dur: 400 * time.Millisecond, wave: WaveSaw},
	},
}

// Duration returns how long a cue plays.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.dur
	}
	return d
}

// Stream builds a fresh streamer for a cue at the given volume (0 to 1).
// It returns nil for an unknown cue.
func Stream(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cues[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := newOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, newEnvelope(osc, n.dur, attack, n.dur/2, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero volume
// is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
