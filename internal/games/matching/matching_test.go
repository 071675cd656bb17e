package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/games/gamestest"
)

func start(t *testing.T, seed int64) (*Controller, *gamestest.Fixture) {
	t.Helper()
	f := gamestest.New(seed)
	c := New(f.Deps)
	require.NoError(t, c.SelectCategory(catalog.Vehicles))
	return c, f
}

func TestTracksCoverSameItems(t *testing.T) {
	c, _ := start(t, 5)
	snap := c.Snapshot()
	assert.Equal(t, catalog.Default.ByCategory(catalog.Vehicles), snap.Sounds)
	assert.ElementsMatch(t, snap.Sounds, snap.Images)
}

func TestMatchAllWins(t *testing.T) {
	c, f := start(t, 5)
	items := catalog.Default.ByCategory(catalog.Vehicles)

	for i, it := range items {
		_, err := c.SelectSound(it.ID)
		require.NoError(t, err)
		res, err := c.SelectImage(it.ID)
		require.NoError(t, err)
		assert.True(t, res.Matched)
		assert.Equal(t, i == len(items)-1, res.Completed)
	}

	snap := c.Snapshot()
	assert.Equal(t, StateComplete, snap.State)
	assert.Equal(t, 60, snap.Score)
	assert.Equal(t, 6, snap.Attempts)

	p := f.Progress.Load()
	assert.Equal(t, 5, p.StarsEarned)
	assert.Equal(t, 1, p.GamesWon)
	assert.Equal(t, 60, p.TotalScore)
	assert.Len(t, f.Tracker.Attempts(), 6)
}

func TestMismatchClearsAfterDelay(t *testing.T) {
	c, f := start(t, 5)

	_, err := c.SelectImage(7)
	require.NoError(t, err)
	res, err := c.SelectSound(8)
	require.NoError(t, err)
	assert.True(t, res.Evaluated)
	assert.False(t, res.Matched)

	snap := c.Snapshot()
	assert.True(t, snap.Locked)
	assert.Equal(t, 8, snap.SelectedSound)
	assert.Equal(t, 7, snap.SelectedImage)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Attempts)

	ignored, err := c.SelectSound(9)
	require.NoError(t, err)
	assert.True(t, ignored.Ignored, "selection is locked during the delay")

	f.Clock.Advance(MismatchDelay - time.Millisecond)
	assert.True(t, c.Snapshot().Locked)

	f.Clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return !c.Snapshot().Locked }, time.Second, time.Millisecond)
	snap = c.Snapshot()
	assert.Zero(t, snap.SelectedSound)
	assert.Zero(t, snap.SelectedImage)

	attempts := f.Tracker.Attempts()
	require.Len(t, attempts, 1)
	assert.False(t, attempts[0].Correct)
	assert.Equal(t, "vehicles", attempts[0].Category)
}

func TestMatchedItemsAreIgnored(t *testing.T) {
	c, _ := start(t, 5)
	_, err := c.SelectSound(10)
	require.NoError(t, err)
	_, err = c.SelectImage(10)
	require.NoError(t, err)

	res, err := c.SelectImage(10)
	require.NoError(t, err)
	assert.True(t, res.Ignored)

	_, err = c.SelectSound(1)
	assert.ErrorIs(t, err, games.ErrUnknownItem)
}

func TestCloseCancelsPendingReset(t *testing.T) {
	c, f := start(t, 5)
	_, err := c.SelectSound(7)
	require.NoError(t, err)
	_, err = c.SelectImage(8)
	require.NoError(t, err)

	c.Close()
	f.Clock.Advance(2 * MismatchDelay)
	assert.True(t, c.Snapshot().Locked, "reset never runs after close")

	sessions := f.Tracker.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "matching", sessions[0].Mode)

	_, err = c.SelectSound(7)
	assert.ErrorIs(t, err, games.ErrClosed)
}

func TestSelectBeforeCategory(t *testing.T) {
	f := gamestest.New(1)
	c := New(f.Deps)
	_, err := c.SelectSound(1)
	assert.ErrorIs(t, err, games.ErrWrongState)
	assert.ErrorIs(t, c.SelectCategory("space"), games.ErrUnknownCategory)
}
