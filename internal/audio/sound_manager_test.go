package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// TestSoundManagerGracefulDegradation verifies playing without a device is safe
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayFire()
	sm.PlayExplosion()
	sm.PlayHit()
	sm.PlayGameOver()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		got := drain(NewOscillator(50, 0, 250*time.Millisecond, wave, rate))
		if len(got) != 250 {
			t.Errorf("Wave %d: expected 250 samples, got %d", wave, len(got))
		}
		for i, s := range got {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("Wave %d: sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 0, 100*time.Millisecond, WaveSquare, rate)
	got := drain(NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(got) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(got))
	}
	if got[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", got[0][0])
	}
	if got[50][0] != 1 {
		t.Errorf("Expected full level in sustain, got %v", got[50][0])
	}
	if got[99][0] <= 0 || got[99][0] > 0.1 {
		t.Errorf("Expected near silence at the end, got %v", got[99][0])
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	got := drain(newVolume(NewOscillator(0, 0, 10*time.Millisecond, WaveSquare, rate), 0))
	for _, s := range got {
		if s[0] != 0 {
			t.Fatalf("Expected silence, got %v", s[0])
		}
	}
}

func TestEffectsFinish(t *testing.T) {
	tests := map[string]beep.Streamer{
		"fire":      CreateFireSound(sampleRate, 1),
		"explosion": CreateExplosionSound(sampleRate, 1),
		"hit":       CreateHitSound(sampleRate, 1),
		"game over": CreateGameOverSound(sampleRate, 1),
	}
	for name, s := range tests {
		got := drain(s)
		if len(got) == 0 {
			t.Errorf("%s: expected samples", name)
		}
		if len(got) > sampleRate.N(time.Second) {
			t.Errorf("%s: expected a short effect, got %d samples", name, len(got))
		}
		for _, v := range got {
			if math.IsNaN(v[0]) {
				t.Fatalf("%s: NaN sample", name)
			}
		}
	}
}
