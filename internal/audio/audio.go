// Package audio plays the crash sound when the player is hit.
// Sound is optional: when the speaker cannot be opened every call is a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	crashHighHz   = 440.0
	crashLowHz    = 220.0
	crashNote     = 80 * time.Millisecond
	crashVolume   = -1.0 // log2 attenuation
	speakerBuffer = 100 * time.Millisecond
)

// Player owns the speaker.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker. Calling it again after success does nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayCrash plays a short falling two-note tone without blocking.
func (p *Player) PlayCrash() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := CrashTone(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// CrashTone builds the crash streamer at the given rate.
func CrashTone(sr beep.SampleRate) (beep.Streamer, error) {
	high, err := generators.SineTone(sr, crashHighHz)
	if err != nil {
		return nil, err
	}
	low, err := generators.SineTone(sr, crashLowHz)
	if err != nil {
		return nil, err
	}

	n := sr.N(crashNote)
	return &effects.Volume{
		Streamer: beep.Seq(beep.Take(n, high), beep.Take(n, low)),
		Base:     2,
		Volume:   crashVolume,
	}, nil
}
