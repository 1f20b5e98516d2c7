package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/ramen-sumo/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length wave generator
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

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume control
// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newTone returns a fixed-length wave, using the beep sine generator where it applies
func newTone(freq float64, wave WaveType, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	if wave == WaveSine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			return beep.Take(rate.N(duration), sine)
		}
	}
	return NewOscillator(freq, duration, wave, rate)
}

// shapedTone builds an enveloped tone
func shapedTone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(newTone(freq, wave, duration, rate), duration, attack, release, rate)
}

// CreatePushSound generates a short low thud
func CreatePushSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	thud := shapedTone(110, WaveSine, constants.PushSoundDuration, constants.PushSoundAttack, constants.PushSoundRelease, rate)
	return newVolume(thud, cfg.EffectVolumes[SoundPush]*cfg.MasterVolume)
}

// CreateChargedSound generates a rising whoosh over a saw growl
func CreateChargedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := constants.ChargedSoundDuration, constants.ChargedSoundAttack, constants.ChargedSoundRelease

	mixed := beep.Mix(
		newVolume(shapedTone(0, WaveNoise, d, a, r, rate), 0.5),
		newVolume(shapedTone(82.4, WaveSaw, d, a, r, rate), 0.4),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundCharged]*cfg.MasterVolume)
}

// CreateSplashSound generates a wet noise burst for a collision
func CreateSplashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	splash := shapedTone(0, WaveNoise, constants.SplashSoundDuration, constants.SplashSoundAttack, constants.SplashSoundRelease, rate)
	return newVolume(splash, cfg.EffectVolumes[SoundSplash]*cfg.MasterVolume)
}

// CreateKnockoutSound generates a bell with an octave overtone
func CreateKnockoutSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BellSoundDuration

	mixed := beep.Mix(
		newVolume(shapedTone(880.0, WaveSine, d, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, rate), 0.7),
		newVolume(shapedTone(1760.0, WaveSine, d, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, rate), 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundKnockout]*cfg.MasterVolume)
}

// CreateTermEndSound generates a two-note chime
func CreateTermEndSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := shapedTone(987.77, WaveSquare, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)
	n2 := shapedTone(1318.51, WaveSquare, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundTermEnd]*cfg.MasterVolume)
}

// CreateMatchEndSound generates an ascending C major arpeggio
func CreateMatchEndSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, shapedTone(f, WaveSquare, constants.FanfareNoteDuration, constants.FanfareAttack, constants.FanfareRelease, rate))
	}

	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[SoundMatchEnd]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPush:
		return CreatePushSound(cfg)
	case SoundCharged:
		return CreateChargedSound(cfg)
	case SoundSplash:
		return CreateSplashSound(cfg)
	case SoundKnockout:
		return CreateKnockoutSound(cfg)
	case SoundTermEnd:
		return CreateTermEndSound(cfg)
	case SoundMatchEnd:
		return CreateMatchEndSound(cfg)
	default:
		return nil
	}
}
