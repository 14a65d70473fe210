package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrNotInitialized is returned when a cue is played before Init.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

// Sink receives sound cues from the game.
type Sink interface {
	Play(c Cue) error
}

// Nop is a Sink that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) error { return nil }

// Speaker plays cues on the system audio device. All cues share one mixer
// that the speaker drains on its own goroutine.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeaker creates a speaker at the given volume (0 to 1). Call Init before
// playing anything.
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device. Calling it twice is harmless.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a cue on the mixer.
func (s *Speaker) Play(c Cue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	st := Stream(c, SampleRate, s.volume)
	if st == nil {
		return nil
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	return nil
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
