package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/games/gamestest"
)

func start(t *testing.T) (*Controller, *gamestest.Fixture) {
	t.Helper()
	f := gamestest.New(11)
	c := New(f.Deps)
	require.NoError(t, c.SelectCategory(catalog.Animals))
	return c, f
}

func pending(c *Controller) int {
	n := 0
	for _, card := range c.Snapshot().Cards {
		if card.FaceUp && !card.Matched {
			n++
		}
	}
	return n
}

func settle(t *testing.T, c *Controller, f *gamestest.Fixture, d time.Duration) {
	t.Helper()
	f.Clock.Advance(d)
	require.Eventually(t, func() bool { return pending(c) == 0 }, time.Second, time.Millisecond)
}

func flipPair(t *testing.T, c *Controller, a, b string) FlipResult {
	t.Helper()
	res, err := c.Flip(a)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	res, err = c.Flip(b)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.True(t, res.Evaluated)
	return res
}

func TestScore(t *testing.T) {
	assert.Equal(t, 88, Score(6))
	assert.Equal(t, 80, Score(10))
	assert.Equal(t, 20, Score(40))
	assert.Equal(t, 20, Score(100))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00", FormatElapsed(0))
	assert.Equal(t, "0:09", FormatElapsed(9500*time.Millisecond))
	assert.Equal(t, "1:05", FormatElapsed(65*time.Second))
	assert.Equal(t, "12:30", FormatElapsed(750*time.Second))
}

func TestDeck(t *testing.T) {
	c, _ := start(t)
	snap := c.Snapshot()
	require.Len(t, snap.Cards, 12)
	assert.Equal(t, 6, snap.Pairs)

	perPair := map[int]int{}
	ids := map[string]bool{}
	for _, card := range snap.Cards {
		perPair[card.PairID]++
		assert.False(t, ids[card.UniqueID])
		ids[card.UniqueID] = true
		assert.Equal(t, card.PairID, card.Item.ID)
	}
	for id := 1; id <= 6; id++ {
		assert.Equal(t, 2, perPair[id])
		assert.True(t, ids[fmt.Sprintf("%d-A", id)])
		assert.True(t, ids[fmt.Sprintf("%d-B", id)])
	}
}

func TestWinInTenMoves(t *testing.T) {
	c, f := start(t)

	for i := 0; i < 4; i++ {
		res := flipPair(t, c, "1-A", "2-A")
		assert.False(t, res.Matched)
		settle(t, c, f, MismatchDelay)
	}
	f.Clock.Advance(60 * time.Second)

	for id := 1; id <= 6; id++ {
		res := flipPair(t, c, fmt.Sprintf("%d-A", id), fmt.Sprintf("%d-B", id))
		assert.True(t, res.Matched)
		if id == 6 {
			f.Clock.Advance(5 * time.Second)
		}
		settle(t, c, f, MatchDelay)
	}

	require.Eventually(t, func() bool { return c.Snapshot().State == StateComplete }, time.Second, time.Millisecond)
	snap := c.Snapshot()
	assert.Equal(t, 10, snap.Moves)
	assert.Equal(t, 80, snap.Score)
	assert.Equal(t, 6, snap.Matched)

	p := f.Progress.Load()
	assert.Equal(t, 5, p.StarsEarned)
	assert.Equal(t, 1, p.GamesWon)
	assert.Equal(t, 80, p.TotalScore)

	frozen := c.Elapsed()
	f.Clock.Advance(time.Minute)
	assert.Equal(t, frozen, c.Elapsed(), "timer stops at the final flip")
	assert.Equal(t, "1:06", FormatElapsed(frozen))

	attempts := f.Tracker.Attempts()
	require.Len(t, attempts, 10)
	assert.False(t, attempts[0].Correct)
	assert.True(t, attempts[9].Correct)
	assert.Equal(t, "memory", attempts[9].Mode)
}

func TestFlipRefusals(t *testing.T) {
	c, f := start(t)

	res, err := c.Flip("3-A")
	require.NoError(t, err)
	require.True(t, res.Accepted)

	res, err = c.Flip("3-A")
	require.NoError(t, err)
	assert.False(t, res.Accepted, "already face up")

	flip, err := c.Flip("4-A")
	require.NoError(t, err)
	assert.True(t, flip.Evaluated)

	res, err = c.Flip("5-A")
	require.NoError(t, err)
	assert.False(t, res.Accepted, "two cards already face up")
	assert.Equal(t, 1, c.Snapshot().Moves)

	settle(t, c, f, MismatchDelay)
	flipPair(t, c, "3-A", "3-B")
	settle(t, c, f, MatchDelay)

	res, err = c.Flip("3-B")
	require.NoError(t, err)
	assert.False(t, res.Accepted, "matched")

	_, err = c.Flip("99-A")
	assert.ErrorIs(t, err, games.ErrUnknownItem)
}

func TestMismatchStaysVisibleUntilDelay(t *testing.T) {
	c, f := start(t)
	flipPair(t, c, "1-A", "6-B")

	f.Clock.Advance(MismatchDelay / 2)
	assert.Equal(t, 2, pending(c))

	settle(t, c, f, MismatchDelay/2)
	assert.Equal(t, 0, pending(c))
	assert.Equal(t, StateInProgress, c.Snapshot().State)
}

func TestCloseCancelsReveal(t *testing.T) {
	c, f := start(t)
	flipPair(t, c, "2-A", "2-B")
	c.Close()
	f.Clock.Advance(time.Second)

	assert.Equal(t, 2, pending(c), "resolution never runs after close")
	assert.Equal(t, 0, c.Snapshot().Matched)
	require.Len(t, f.Tracker.Sessions(), 1)

	_, err := c.Flip("1-A")
	assert.ErrorIs(t, err, games.ErrClosed)
}

func TestFlipBeforeDeal(t *testing.T) {
	f := gamestest.New(1)
	c := New(f.Deps)
	_, err := c.Flip("1-A")
	assert.ErrorIs(t, err, games.ErrWrongState)
	assert.Equal(t, time.Duration(0), c.Elapsed())
}
