// Package audio synthesizes the game's sound effects with beep and plays them
// through a shared mixer.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
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
	sweep    float64 // Hz per second added to freq
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a wave generator that ends after duration. A non-zero
// sweep glides the frequency linearly.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), 0x5eed)),
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
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
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
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. Log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	fireDuration      = 80 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	hitDuration       = 200 * time.Millisecond
	gameOverNote      = 220 * time.Millisecond
)

// CreateFireSound is a short descending blip
func CreateFireSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(1200, -9000, fireDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, fireDuration, 5*time.Millisecond, 50*time.Millisecond, rate)
	return newVolume(shaped, vol*0.3)
}

// CreateExplosionSound is filtered noise over a low rumble
func CreateExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewEnvelope(
		NewOscillator(0, 0, explosionDuration, WaveNoise, rate),
		explosionDuration, 2*time.Millisecond, 300*time.Millisecond, rate)
	rumble := NewEnvelope(
		NewOscillator(90, -120, explosionDuration, WaveSine, rate),
		explosionDuration, 2*time.Millisecond, 250*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), rumble), vol*0.6)
}

// CreateHitSound is a harsh low saw buzz
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110, 0, hitDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, hitDuration, 5*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(shaped, vol*0.7)
}

// CreateGameOverSound is three falling notes
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{392, 311, 196}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, 0, gameOverNote, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, gameOverNote, 10*time.Millisecond, 120*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}
