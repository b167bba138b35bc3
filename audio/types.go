package audio

import "github.com/lixenwraith/term-snake/parameter"

// SoundType identifies a sound cue
type SoundType int

const (
	SoundEat   SoundType = iota // Apple eaten
	SoundDeath                  // Snake collided
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns enabled audio at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:   parameter.EatSoundVolume,
			SoundDeath: parameter.DeathSoundVolume,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}
