package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.6
)

// Eat sound: two rising square notes
const (
	EatNote1Hz      = 659.25 // E5
	EatNote2Hz      = 987.77 // B5
	EatNoteDuration = 60 * time.Millisecond
	EatSoundAttack  = 5 * time.Millisecond
	EatSoundRelease = 40 * time.Millisecond
	EatSoundVolume  = 0.5
)

// Death sound: low saw buzz with a noise burst
const (
	DeathToneHz        = 110.0
	DeathSoundDuration = 450 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
	DeathSoundVolume   = 0.7
	DeathNoiseMix      = 0.25
)
