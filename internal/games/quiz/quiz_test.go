package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/games/gamestest"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run(string(d), func(t *testing.T) {
			level, _ := d.Level()
			qs, err := Generate(rng, catalog.Default, catalog.Household, d)
			require.NoError(t, err)
			require.Len(t, qs, level.Questions)

			for _, q := range qs {
				assert.Equal(t, catalog.Household, q.Answer.Category)
				require.Len(t, q.Options, level.Options)
				ids := map[int]bool{}
				hasAnswer := 0
				for _, o := range q.Options {
					assert.False(t, ids[o.ID], "options are distinct")
					ids[o.ID] = true
					if o.ID == q.Answer.ID {
						hasAnswer++
					}
				}
				assert.Equal(t, 1, hasAnswer)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(rng, catalog.Default, "space", Easy)
	assert.ErrorIs(t, err, games.ErrUnknownCategory)
	_, err = Generate(rng, catalog.Default, catalog.Animals, "extreme")
	assert.Error(t, err)
}

func TestStars(t *testing.T) {
	tests := []struct{ score, total, want int }{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 5},
		{3, 8, 2},
		{7, 10, 4},
		{1, 10, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stars(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}

func playQuiz(t *testing.T, c *Controller, answerRight func(i int) bool) {
	t.Helper()
	for i := 0; ; i++ {
		snap := c.Snapshot()
		require.Equal(t, StateInQuestion, snap.State)
		q := snap.Question
		pick := q.Answer.ID
		if !answerRight(i) {
			for _, o := range q.Options {
				if o.ID != q.Answer.ID {
					pick = o.ID
					break
				}
			}
		}
		res, err := c.Answer(pick)
		require.NoError(t, err)
		assert.Equal(t, answerRight(i), res.Correct)
		require.NoError(t, c.Next())
		if c.Snapshot().State == StateComplete {
			return
		}
	}
}

func TestFullQuizRewards(t *testing.T) {
	f := gamestest.New(7)
	c := New(f.Deps)

	require.NoError(t, c.SelectCategory(catalog.Animals))
	require.NoError(t, c.SelectDifficulty(Easy))
	playQuiz(t, c, func(i int) bool { return i < 3 })

	snap := c.Snapshot()
	assert.Equal(t, StateComplete, snap.State)
	assert.Equal(t, 3, snap.Score)
	assert.Equal(t, 3, snap.Stars)

	p := f.Progress.Load()
	assert.Equal(t, 1, p.QuizzesCompleted)
	assert.Equal(t, 3, p.StarsEarned)
	assert.Equal(t, 3, p.TotalScore)

	attempts := f.Tracker.Attempts()
	require.Len(t, attempts, 5)
	for _, a := range attempts {
		assert.Equal(t, "animals", a.Category)
		assert.Equal(t, "quiz", a.Mode)
	}
	assert.Len(t, f.Player.Played(), 5)
}

func TestPerfectHardQuiz(t *testing.T) {
	f := gamestest.New(3)
	c := New(f.Deps)
	require.NoError(t, c.SelectCategory(catalog.Human))
	require.NoError(t, c.SelectDifficulty(Hard))
	playQuiz(t, c, func(int) bool { return true })

	assert.Equal(t, 5, c.Snapshot().Stars)
	assert.Equal(t, 10, f.Progress.Load().TotalScore)
}

func TestHintAndNavigation(t *testing.T) {
	f := gamestest.New(1)
	c := New(f.Deps)

	_, err := c.ToggleHint()
	assert.ErrorIs(t, err, games.ErrWrongState)
	assert.ErrorIs(t, c.SelectDifficulty(Easy), games.ErrWrongState)

	require.NoError(t, c.SelectCategory(catalog.Nature))
	require.NoError(t, c.Back())
	assert.Equal(t, StateChoosingCategory, c.Snapshot().State)

	require.NoError(t, c.SelectCategory(catalog.Nature))
	require.NoError(t, c.SelectDifficulty(Medium))
	on, err := c.ToggleHint()
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, catalog.Nature, c.Snapshot().Question.Category)

	require.NoError(t, c.PlaySound())
	_, err = c.Answer(9999)
	assert.ErrorIs(t, err, games.ErrUnknownItem)
	assert.ErrorIs(t, c.Next(), games.ErrWrongState)

	require.NoError(t, c.Restart())
	snap := c.Snapshot()
	assert.Equal(t, StateChoosingCategory, snap.State)
	assert.Zero(t, snap.Total)
}

func TestCloseReportsQuizSession(t *testing.T) {
	f := gamestest.New(1)
	c := New(f.Deps)
	c.Close()
	require.Len(t, f.Tracker.Sessions(), 1)
	assert.Equal(t, "quiz", f.Tracker.Sessions()[0].Mode)
	assert.ErrorIs(t, c.SelectCategory(catalog.Animals), games.ErrClosed)
}
