package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/storage"
)

type brokenStore struct{}

func (brokenStore) Get(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (brokenStore) Set(string, []byte) error   { return errors.New("disk gone") }
func (brokenStore) Delete(string) error        { return errors.New("disk gone") }

func TestLocalStoreTracks(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))
	kv := storage.NewMemoryStore()
	s := OpenLocal(kv, clock, nil)

	s.TrackAttempt(true, "animals", "quiz")
	s.TrackAttempt(false, "animals", "quiz")
	s.TrackSession("maths-learning", 3)

	reopened := OpenLocal(kv, clock, nil).Get()
	assert.Equal(t, 2, reopened.TotalAttempts)
	assert.Equal(t, 1, reopened.GameModeStats[catalog.MathsLearning].Sessions)
	require.Len(t, reopened.SessionHistory, 1)
	assert.True(t, clock.Now().Equal(reopened.SessionHistory[0].Timestamp))

	sum := s.Summary()
	assert.Equal(t, 50, sum.SuccessRate)
	assert.Equal(t, catalog.MathsLearning, sum.FavoriteMode)
}

func TestLocalStoreReset(t *testing.T) {
	kv := storage.NewMemoryStore()
	s := OpenLocal(kv, nil, nil)
	s.TrackAttempt(true, "", "maths-learning")
	s.Reset()

	assert.Equal(t, NewRecord(), s.Get())
	_, err := kv.Get(Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLocalStoreSwallowsStorageErrors(t *testing.T) {
	s := OpenLocal(brokenStore{}, nil, nil)
	assert.NotPanics(t, func() {
		r := s.TrackAttempt(true, "human", "quiz")
		assert.Equal(t, 1, r.TotalAttempts)
		s.TrackSession("quiz", 1)
		s.Reset()
	})
	assert.Equal(t, NewRecord(), s.Get())
}
