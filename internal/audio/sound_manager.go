package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and mixes one-shot effects into it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager playing at volume (0.0-1.0)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Initialized reports whether sounds will be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayFire plays the shot blip
func (sm *SoundManager) PlayFire() {
	sm.play(func() beep.Streamer { return CreateFireSound(sampleRate, sm.volume) })
}

// PlayExplosion plays an asteroid breaking apart
func (sm *SoundManager) PlayExplosion() {
	sm.play(func() beep.Streamer { return CreateExplosionSound(sampleRate, sm.volume) })
}

// PlayHit plays the player taking damage
func (sm *SoundManager) PlayHit() {
	sm.play(func() beep.Streamer { return CreateHitSound(sampleRate, sm.volume) })
}

// PlayGameOver plays the falling game-over jingle
func (sm *SoundManager) PlayGameOver() {
	sm.play(func() beep.Streamer { return CreateGameOverSound(sampleRate, sm.volume) })
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
