package audio

import (
	"testing"

	"github.com/lixenwraith/term-snake/status"
)

// TestSoundManagerGracefulDegradation verifies sound calls don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEat()
	sm.PlayDeath()
	sm.Cleanup()

	if sm.Enabled() {
		t.Error("uninitialized manager reports enabled")
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	reg := status.NewRegistry()
	sm := NewSoundManager(cfg, reg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize with audio disabled returned %v", err)
	}
	if sm.Enabled() {
		t.Error("disabled manager reports enabled")
	}

	sm.PlayEat()
	if got := reg.Ints.Get(status.SoundsPlayed).Load(); got != 0 {
		t.Errorf("played counter = %d, want 0", got)
	}
}

// TestSoundManagerInitialization verifies the device can be opened and closed where present
func TestSoundManagerInitialization(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(nil, reg)

	// Speaker initialization may fail in CI without audio devices; audio is optional
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}

	sm.PlayEat()
	sm.PlayDeath()
	if got := reg.Ints.Get(status.SoundsPlayed).Load(); got != 2 {
		t.Errorf("played counter = %d, want 2", got)
	}
}
