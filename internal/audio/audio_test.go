package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns the sample count and the peak level.
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func samplesOf(c Cue, rate beep.SampleRate) int {
	n := 0
	for _, note := range cues[c] {
		n += rate.N(note.dur)
	}
	return n
}

func TestCueStreams(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, c := range []Cue{CuePickup, CueBonus, CueWin, CueLose} {
		t.Run(c.String(), func(t *testing.T) {
			s := Stream(c, rate, 0.5)
			require.NotNil(t, s)

			total, peak := drain(t, s)
			assert.Equal(t, samplesOf(c, rate), total)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 0.5+1e-9)
			assert.NoError(t, s.Err())
		})
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, Stream(CueWin, SampleRate, 0))
	assert.Equal(t, 0.0, peak)
}

func TestUnknownCue(t *testing.T) {
	assert.Nil(t, Stream(Cue(42), SampleRate, 1))
	assert.Equal(t, "unknown", Cue(42).String())
	assert.Equal(t, time.Duration(0), Duration(Cue(42)))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 90*time.Millisecond, Duration(CuePickup))
	assert.Greater(t, Duration(CueLose), Duration(CueBonus))
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(8000)
	buf := make([][2]float64, 64)

	sq := newOscillator(100, 10*time.Millisecond, WaveSquare, rate)
	n, ok := sq.Stream(buf)
	require.True(t, ok)
	for i := range n {
		assert.Contains(t, []float64{-1, 1}, buf[i][0])
	}

	saw := newOscillator(100, 10*time.Millisecond, WaveSaw, rate)
	n, _ = saw.Stream(buf)
	for i := range n {
		assert.GreaterOrEqual(t, buf[i][0], -1.0)
		assert.Less(t, buf[i][0], 1.0)
	}
}

func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(50, 100*time.Millisecond, WaveSine, rate)
	buf := make([][2]float64, 64)

	n, ok := osc.Stream(buf)
	assert.Equal(t, 64, n)
	assert.True(t, ok)

	n, ok = osc.Stream(buf)
	assert.Equal(t, 36, n)
	assert.True(t, ok)

	n, ok = osc.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	dur := 100 * time.Millisecond
	env := newEnvelope(newOscillator(0, dur, WaveSquare, rate), dur, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	require.Equal(t, 100, n)

	assert.Equal(t, 0.0, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[50][0], "sustain is full")
	assert.InDelta(t, 0.05, buf[99][0], 1e-9, "release fades out")
}

func TestSpeakerRequiresInit(t *testing.T) {
	s := NewSpeaker(1)
	assert.ErrorIs(t, s.Play(CuePickup), ErrNotInitialized)
	s.Close() // no-op before Init

	var sink Sink = Nop{}
	assert.NoError(t, sink.Play(CueWin))
}
