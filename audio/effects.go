package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect durations
const (
	clickDuration    = 40 * time.Millisecond
	hitDuration      = 120 * time.Millisecond
	deathDuration    = 350 * time.Millisecond
	spawnDuration    = 180 * time.Millisecond
	turnDuration     = 200 * time.Millisecond
	rechargeDuration = 300 * time.Millisecond

	shortAttack = 5 * time.Millisecond
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

// NewOscillator creates a new oscillator for wave generation
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
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, shortAttack, d/2, rate)
}

// CreateSound builds the streamer for a sound type at the configured volume
func CreateSound(st SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case SoundSelect:
		s = tone(1320, clickDuration, WaveSine, rate)
	case SoundMove:
		s = tone(330, clickDuration*2, WaveSquare, rate)
	case SoundHit:
		s = beep.Mix(
			newVolume(tone(90, hitDuration, WaveSaw, rate), 0.7),
			newVolume(tone(0, hitDuration, WaveNoise, rate), 0.3),
		)
	case SoundDeath:
		// Falling two-step
		s = beep.Seq(
			tone(220, deathDuration/2, WaveSaw, rate),
			tone(110, deathDuration/2, WaveSaw, rate),
		)
	case SoundSpawn:
		s = beep.Seq(
			tone(660, spawnDuration/2, WaveSine, rate),
			tone(990, spawnDuration/2, WaveSine, rate),
		)
	case SoundTurn:
		s = tone(523.25, turnDuration, WaveSine, rate)
	case SoundRecharge:
		s = beep.Mix(
			newVolume(tone(523.25, rechargeDuration, WaveSine, rate), 0.6),
			newVolume(tone(783.99, rechargeDuration, WaveSine, rate), 0.4),
		)
	default:
		return nil
	}

	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
