package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	defaultSampleRate = beep.SampleRate(48000)
	bufferDuration    = 100 * time.Millisecond
)

// Config controls cue playback
type Config struct {
	Enabled bool
	Volume  float64
}

// Player mixes cues into the speaker; a Player that failed to init stays silent
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; nothing is opened until Init
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		rate:  defaultSampleRate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. A disabled player returns nil without touching the device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	slog.Debug("audio initialized", "rate", int(p.rate))
	return nil
}

// Active reports whether cues reach the speaker
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues c; silent when the player is not active
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := NewCue(c, p.rate, p.cfg.Volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all cues and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
