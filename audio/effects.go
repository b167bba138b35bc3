package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/term-snake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp, flat sustain and release ramp
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.position++
	}
	return n, ok
}

// gain returns the envelope level at the current position, in [0,1]
func (e *envelope) gain() float64 {
	if e.position < e.attackSamples {
		return float64(e.position) / float64(e.attackSamples)
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if e.position >= releaseStart && e.releaseSamples > 0 {
		return max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateEatSound generates a short two-note rising chime
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.EatNote1Hz, parameter.EatNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.EatNoteDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	n2 := NewOscillator(parameter.EatNote2Hz, parameter.EatNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.EatNoteDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundEat] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateDeathSound generates a low buzz with a noise burst
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.DeathSoundDuration

	tone := NewOscillator(parameter.DeathToneHz, d, WaveSaw, rate)
	toneShaped := NewEnvelope(tone, d, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 1-parameter.DeathNoiseMix),
		newVolume(noiseShaped, parameter.DeathNoiseMix),
	)

	vol := cfg.EffectVolumes[SoundDeath] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// GetSoundEffect returns a fresh streamer for the sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	default:
		return nil
	}
}
