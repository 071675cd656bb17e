package games

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/analytics"
)

type recordingTracker struct {
	mu       sync.Mutex
	sessions []string
	minutes  []float64
}

func (r *recordingTracker) TrackAttempt(bool, string, string) analytics.Record {
	return analytics.NewRecord()
}

func (r *recordingTracker) TrackSession(mode string, minutes float64) analytics.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, mode)
	r.minutes = append(r.minutes, minutes)
	return analytics.NewRecord()
}

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		idx, err := Sample(rng, 9, 3)
		require.NoError(t, err)
		require.Len(t, idx, 3)
		seen := map[int]bool{}
		for _, v := range idx {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 9)
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestSampleInsufficientPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	idx, err := Sample(rng, 2, 5)
	assert.ErrorIs(t, err, ErrInsufficientPool)
	assert.ElementsMatch(t, []int{0, 1}, idx)

	idx, err = Sample(rng, 0, 1)
	assert.ErrorIs(t, err, ErrInsufficientPool)
	assert.Empty(t, idx)
}

func TestShuffleKeepsElements(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := []string{"a", "b", "c", "d"}
	out := Shuffle(rng, in)
	assert.ElementsMatch(t, in, out)
	assert.Equal(t, []string{"a", "b", "c", "d"}, in, "input untouched")
}

func TestSessionReportsOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tracker := &recordingTracker{}
	deps := Deps{Clock: clock, Analytics: tracker}.WithDefaults()

	s := NewSession(&deps, "mathsLearning")
	_, ok := s.End()
	assert.False(t, ok, "never begun")

	s.Begin()
	clock.Advance(90 * time.Second)
	s.Begin()
	minutes, ok := s.End()
	require.True(t, ok)
	assert.InDelta(t, 1.5, minutes, 1e-9)

	_, ok = s.End()
	assert.False(t, ok)
	assert.Equal(t, []string{"maths-learning"}, tracker.sessions)
}

func TestWithDefaults(t *testing.T) {
	d := Deps{}.WithDefaults()
	assert.NotNil(t, d.Progress)
	assert.NotNil(t, d.Analytics)
	assert.NotNil(t, d.Player)
	assert.NotNil(t, d.Catalog)
	assert.NotNil(t, d.Clock)
	assert.NotNil(t, d.Rand)
	assert.NotNil(t, d.Logger)
}
