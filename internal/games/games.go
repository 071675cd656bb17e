// Package games holds what the game session controllers share: their
// dependencies, sampling without replacement and session timing.
package games

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/analytics"
	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/progress"
	"github.com/architect/soundlearn/internal/storage"
	"github.com/architect/soundlearn/pkg/logger"
)

var (
	ErrWrongState       = errors.New("games: action not allowed in current state")
	ErrUnknownCategory  = errors.New("games: unknown category")
	ErrUnknownItem      = errors.New("games: unknown item")
	ErrClosed           = errors.New("games: controller closed")
	ErrInsufficientPool = errors.New("games: not enough distinct options")
)

// Tracker receives analytics events. *analytics.LocalStore implements it.
type Tracker interface {
	TrackAttempt(isCorrect bool, category string, gameMode string) analytics.Record
	TrackSession(gameMode string, durationMinutes float64) analytics.Record
}

// SoundPlayer plays catalog sounds. *audio.Player implements it.
type SoundPlayer interface {
	Play(path string, volume float64) error
}

// Deps is what every controller is constructed with.
type Deps struct {
	Progress  *progress.Store
	Analytics Tracker
	Player    SoundPlayer
	Catalog   *catalog.Catalog
	Clock     clockwork.Clock
	Rand      *rand.Rand
	Logger    *zap.Logger
}

// WithDefaults fills unset dependencies. A missing progress store is backed
// by memory.
func (d Deps) WithDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Progress == nil {
		d.Progress = progress.Open(storage.NewMemoryStore(), d.Logger)
	}
	if d.Analytics == nil {
		d.Analytics = nopTracker{}
	}
	if d.Player == nil {
		d.Player = nopPlayer{}
	}
	if d.Catalog == nil {
		d.Catalog = catalog.Default
	}
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.Logger = logger.OrNop(d.Logger)
	return d
}

// PlayItem plays an item's sound at the profile's volume.
func (d Deps) PlayItem(it catalog.Item) {
	vol := d.Progress.Load().Settings.Volume
	if err := d.Player.Play(it.Sound, vol); err != nil {
		d.Logger.Debug("sound unavailable", zap.String("sound", it.Sound), zap.Error(err))
	}
}

type nopTracker struct{}

func (nopTracker) TrackAttempt(bool, string, string) analytics.Record { return analytics.NewRecord() }
func (nopTracker) TrackSession(string, float64) analytics.Record      { return analytics.NewRecord() }

type nopPlayer struct{}

func (nopPlayer) Play(string, float64) error { return nil }
