// Package audio owns the single playback slot shared by every game mode.
package audio

import (
	"sync"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/pkg/logger"
)

// Playback is a sound that is currently playing.
type Playback interface {
	Stop()
}

// Backend decodes and plays sound files.
type Backend interface {
	Start(path string, volume float64) (Playback, error)
}

// NopBackend accepts every sound and plays nothing.
type NopBackend struct{}

func (NopBackend) Start(string, float64) (Playback, error) { return nopPlayback{}, nil }

type nopPlayback struct{}

func (nopPlayback) Stop() {}

// Player keeps at most one sound playing: starting a sound stops the
// previous one first.
type Player struct {
	backend Backend
	log     *zap.Logger

	mu      sync.Mutex
	current Playback
	path    string
}

func NewPlayer(backend Backend, log *zap.Logger) *Player {
	if backend == nil {
		backend = NopBackend{}
	}
	return &Player{backend: backend, log: logger.OrNop(log).Named("audio")}
}

// Play stops the current sound and starts path at volume (clamped to 0..1).
func (p *Player) Play(path string, volume float64) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()

	pb, err := p.backend.Start(path, volume)
	if err != nil {
		p.log.Warn("failed to play sound", zap.String("path", path), zap.Error(err))
		return err
	}
	p.current = pb
	p.path = path
	return nil
}

// Stop stops the current sound, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.current != nil {
		p.current.Stop()
	}
	p.current = nil
	p.path = ""
}

// Current is the path of the sound playing now, or "".
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}
