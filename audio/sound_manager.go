package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/status"
)

// SoundManager plays one-shot sound cues through a shared mixer
// Every Play call is safe before Initialize, after Cleanup, and when audio is disabled
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	played *atomic.Int64
}

// NewSoundManager creates a sound manager; a nil config selects defaults
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		played: reg.Ints.Get(status.SoundsPlayed),
	}
}

// Initialize opens the audio device
// Failure leaves the manager silent; callers log it and continue
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds will be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEat plays the apple cue
func (sm *SoundManager) PlayEat() {
	sm.play(SoundEat)
}

// PlayDeath plays the collision cue
func (sm *SoundManager) PlayDeath() {
	sm.play(SoundDeath)
}

func (sm *SoundManager) play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(t, sm.config)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// Cleanup silences pending sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}
