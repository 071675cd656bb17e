// Package gamestest provides recording collaborators for controller tests.
package gamestest

import (
	"math/rand"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/architect/soundlearn/internal/analytics"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/progress"
	"github.com/architect/soundlearn/internal/storage"
)

type Attempt struct {
	Correct  bool
	Category string
	Mode     string
}

type Session struct {
	Mode    string
	Minutes float64
}

// Tracker records analytics calls in order.
type Tracker struct {
	mu       sync.Mutex
	attempts []Attempt
	sessions []Session
}

func (t *Tracker) TrackAttempt(isCorrect bool, category string, gameMode string) analytics.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts = append(t.attempts, Attempt{isCorrect, category, gameMode})
	return analytics.NewRecord()
}

func (t *Tracker) TrackSession(gameMode string, minutes float64) analytics.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions = append(t.sessions, Session{gameMode, minutes})
	return analytics.NewRecord()
}

func (t *Tracker) Attempts() []Attempt {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Attempt(nil), t.attempts...)
}

func (t *Tracker) Sessions() []Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Session(nil), t.sessions...)
}

// Player records every sound path it is asked to play.
type Player struct {
	mu     sync.Mutex
	played []string
}

func (p *Player) Play(path string, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, path)
	return nil
}

func (p *Player) Played() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.played...)
}

// Fixture bundles the collaborators behind a Deps value.
type Fixture struct {
	Deps     games.Deps
	Clock    *clockwork.FakeClock
	Tracker  *Tracker
	Player   *Player
	Progress *progress.Store
	Storage  *storage.MemoryStore
}

// New builds deps with a fake clock, a seeded rand and in-memory storage.
func New(seed int64) *Fixture {
	kv := storage.NewMemoryStore()
	f := &Fixture{
		Clock:    clockwork.NewFakeClock(),
		Tracker:  &Tracker{},
		Player:   &Player{},
		Progress: progress.Open(kv, nil),
		Storage:  kv,
	}
	f.Deps = games.Deps{
		Progress:  f.Progress,
		Analytics: f.Tracker,
		Player:    f.Player,
		Clock:     f.Clock,
		Rand:      rand.New(rand.NewSource(seed)),
	}.WithDefaults()
	return f
}
