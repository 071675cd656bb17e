package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/storage"
	"github.com/architect/soundlearn/pkg/logger"
)

// Key is the storage key of the progress document.
const Key = "soundlearn_progress"

var (
	ErrUnknownField  = errors.New("progress: unknown field")
	ErrInvalidValue  = errors.New("progress: invalid value")
	ErrNotMonotonic  = errors.New("progress: value would decrease")
	ErrStoreClosed   = errors.New("progress: store closed")
	ErrInvalidAmount = errors.New("progress: amount must not be negative")
)

// Store reads and writes the progress document of one profile. Each
// operation holds the store lock for its whole read-modify-write.
type Store struct {
	kv  storage.Store
	log *zap.Logger

	mu     sync.Mutex
	closed bool
}

// Open binds a progress store to a profile's blob storage.
func Open(kv storage.Store, log *zap.Logger) *Store {
	return &Store{kv: kv, log: logger.OrNop(log).Named("progress")}
}

// Close ends the store's lifecycle. Later loads return defaults and later
// saves fail.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Load returns the stored record merged over the defaults. Missing or
// unreadable documents yield the defaults.
func (s *Store) Load() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() Record {
	if s.closed {
		return Default()
	}
	data, err := s.kv.Get(Key)
	if errors.Is(err, storage.ErrNotFound) {
		return Default()
	}
	if err != nil {
		s.log.Warn("failed to read progress", zap.Error(err))
		return Default()
	}
	r, err := Decode(data)
	if err != nil {
		s.log.Warn("discarding unreadable progress", zap.Error(err))
		return Default()
	}
	return r
}

// Save writes the record and reports whether it was persisted.
func (s *Store) Save(r Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(r)
}

func (s *Store) save(r Record) bool {
	if s.closed {
		return false
	}
	r = r.Clone()
	r.normalize()
	data, err := r.encode()
	if err != nil {
		s.log.Warn("failed to encode progress", zap.Error(err))
		return false
	}
	if err := s.kv.Set(Key, data); err != nil {
		s.log.Warn("failed to save progress", zap.Error(err))
		return false
	}
	return true
}

// Reset replaces the stored record with the defaults and returns them.
func (s *Store) Reset() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Default()
	s.save(d)
	return d
}

// Update applies fn to the current record and saves the result. The
// returned record is what fn produced, even if the save failed.
func (s *Store) Update(fn func(*Record)) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.load()
	fn(&r)
	return r, s.save(r)
}

// AddStars adds n stars.
func (s *Store) AddStars(n int) (Record, error) {
	if n < 0 {
		return s.Load(), ErrInvalidAmount
	}
	r, _ := s.Update(func(r *Record) { r.StarsEarned += n })
	return r, nil
}

// MarkCategoryExplored flips a category's exploration flag to true.
func (s *Store) MarkCategoryExplored(c catalog.Category) Record {
	if !c.Valid() {
		return s.Load()
	}
	r, _ := s.Update(func(r *Record) { r.ExplorationComplete[c] = true })
	return r
}

// UpdateSettings merges a settings patch.
func (s *Store) UpdateSettings(p SettingsPatch) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.load()
	if err := r.Settings.Apply(p); err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	s.save(r)
	return r, nil
}

// UpdateField sets one top-level field by its document name, e.g.
// "starsEarned". Object values merge key by key into the current object, so
// {"vehicles": true} leaves other categories untouched. Counters may only
// grow and exploration flags may only be set, so a decreasing value is
// rejected with ErrNotMonotonic.
func (s *Store) UpdateField(field string, value any) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.load()

	next, err := withField(r, field, value)
	if err != nil {
		return r, err
	}
	if err := checkMonotonic(r, next); err != nil {
		return r, err
	}
	s.save(next)
	return next, nil
}

func withField(r Record, field string, value any) (Record, error) {
	doc, err := json.Marshal(r)
	if err != nil {
		return r, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return r, err
	}
	if _, ok := fields[field]; !ok {
		return r, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if obj, ok := mergeObject(fields[field], raw); ok {
		raw = obj
	}
	fields[field] = raw
	merged, err := json.Marshal(fields)
	if err != nil {
		return r, err
	}

	next := Default()
	if err := json.Unmarshal(merged, &next); err != nil {
		return r, fmt.Errorf("%w for %s: %v", ErrInvalidValue, field, err)
	}
	if err := validate(next); err != nil {
		return r, err
	}
	return next, nil
}

// mergeObject overlays patch onto cur when both are JSON objects.
func mergeObject(cur, patch json.RawMessage) (json.RawMessage, bool) {
	if len(cur) == 0 || cur[0] != '{' || len(patch) == 0 || patch[0] != '{' {
		return nil, false
	}
	var base, over map[string]json.RawMessage
	if json.Unmarshal(cur, &base) != nil || json.Unmarshal(patch, &over) != nil {
		return nil, false
	}
	for k, v := range over {
		base[k] = v
	}
	out, err := json.Marshal(base)
	if err != nil {
		return nil, false
	}
	return out, true
}

func validate(r Record) error {
	for _, v := range []int{r.StarsEarned, r.QuizzesCompleted, r.GamesWon, r.TotalScore} {
		if v < 0 {
			return fmt.Errorf("%w: counters must not be negative", ErrInvalidValue)
		}
	}
	if math.IsNaN(r.Settings.Volume) || r.Settings.Volume < 0 || r.Settings.Volume > 1 {
		return fmt.Errorf("%w: volume must be between 0 and 1", ErrInvalidValue)
	}
	if !r.Settings.TextSize.Valid() {
		return fmt.Errorf("%w: unknown text size %q", ErrInvalidValue, r.Settings.TextSize)
	}
	return nil
}

func checkMonotonic(prev, next Record) error {
	if next.StarsEarned < prev.StarsEarned ||
		next.QuizzesCompleted < prev.QuizzesCompleted ||
		next.GamesWon < prev.GamesWon ||
		next.TotalScore < prev.TotalScore {
		return ErrNotMonotonic
	}
	for c, done := range prev.ExplorationComplete {
		if done && !next.ExplorationComplete[c] {
			return ErrNotMonotonic
		}
	}
	return nil
}
