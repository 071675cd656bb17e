package analytics

import (
	"errors"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/storage"
	"github.com/architect/soundlearn/pkg/logger"
)

// Key is the storage key of the local analytics document.
const Key = "analyticsData"

// LocalStore keeps a profile's analytics in its blob storage. Storage
// failures are logged and swallowed; play never stops for analytics.
type LocalStore struct {
	kv    storage.Store
	clock clockwork.Clock
	log   *zap.Logger

	mu sync.Mutex
}

// OpenLocal binds a local analytics store to a profile's blob storage. A nil
// clock uses the real clock.
func OpenLocal(kv storage.Store, clock clockwork.Clock, log *zap.Logger) *LocalStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LocalStore{kv: kv, clock: clock, log: logger.OrNop(log).Named("analytics")}
}

// Get returns the stored record, or an empty one.
func (s *LocalStore) Get() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *LocalStore) load() Record {
	data, err := s.kv.Get(Key)
	if errors.Is(err, storage.ErrNotFound) {
		return NewRecord()
	}
	if err != nil {
		s.log.Warn("failed to read analytics", zap.Error(err))
		return NewRecord()
	}
	r, err := Decode(data)
	if err != nil {
		s.log.Warn("discarding unreadable analytics", zap.Error(err))
		return NewRecord()
	}
	return r
}

func (s *LocalStore) save(r Record) {
	data, err := encode(r)
	if err != nil {
		s.log.Warn("failed to encode analytics", zap.Error(err))
		return
	}
	if err := s.kv.Set(Key, data); err != nil {
		s.log.Warn("failed to save analytics", zap.Error(err))
	}
}

// TrackAttempt records one answer. gameMode is accepted for symmetry with
// the server API and does not affect the counters.
func (s *LocalStore) TrackAttempt(isCorrect bool, category string, gameMode string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.load()
	r.RecordAttempt(isCorrect, category)
	s.save(r)
	return r
}

// TrackSession records a finished session of durationMinutes.
func (s *LocalStore) TrackSession(gameMode string, durationMinutes float64) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.load()
	entry := r.RecordSession(gameMode, durationMinutes, s.clock.Now())
	s.save(r)
	s.log.Debug("session tracked", zap.String("mode", entry.GameMode), zap.Float64("minutes", entry.Duration))
	return r
}

// Summary summarizes the stored record.
func (s *LocalStore) Summary() Summary {
	return Summarize(s.Get())
}

// Reset deletes the stored record.
func (s *LocalStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(Key); err != nil {
		s.log.Warn("failed to reset analytics", zap.Error(err))
	}
}
