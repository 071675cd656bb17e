package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/catalog"
)

func TestNewRecordShape(t *testing.T) {
	r := NewRecord()
	assert.Len(t, r.CategoryPerformance, 5)
	assert.Len(t, r.GameModeStats, 5)
	assert.NotNil(t, r.SessionHistory)
	assert.NotNil(t, r.DailyActivity)

	data, err := encode(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mathsLearning":{"sessions":0,"timeSpent":0}`)
	assert.Contains(t, string(data), `"sessionHistory":[]`)
}

func TestRecordAttempt(t *testing.T) {
	r := NewRecord()
	r.RecordAttempt(true, "animals")
	r.RecordAttempt(false, "animals")
	r.RecordAttempt(true, "")
	r.RecordAttempt(false, "dinosaurs")

	assert.Equal(t, 4, r.TotalAttempts)
	assert.Equal(t, 2, r.CorrectAnswers)
	assert.Equal(t, 2, r.IncorrectAnswers)
	assert.Equal(t, CategoryStats{Attempts: 2, Correct: 1}, r.CategoryPerformance[catalog.Animals])
	assert.Len(t, r.CategoryPerformance, 5)

	sum := 0
	for _, s := range r.CategoryPerformance {
		assert.LessOrEqual(t, s.Correct, s.Attempts)
		sum += s.Attempts
	}
	assert.LessOrEqual(t, sum, r.TotalAttempts)
	assert.Equal(t, r.TotalAttempts, r.CorrectAnswers+r.IncorrectAnswers)
}

func TestRecordAttemptInvariantsHold(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	labels := []string{"", "dinosaurs", "Animals"}
	for _, c := range catalog.Categories() {
		labels = append(labels, string(c))
	}

	r := NewRecord()
	known := 0
	for i := 0; i < 500; i++ {
		label := labels[rng.Intn(len(labels))]
		if catalog.Category(label).Valid() {
			known++
		}
		r.RecordAttempt(rng.Intn(2) == 0, label)

		require.Equal(t, i+1, r.TotalAttempts)
		require.Equal(t, r.TotalAttempts, r.CorrectAnswers+r.IncorrectAnswers)
		require.Len(t, r.CategoryPerformance, 5)
		sum := 0
		for c, s := range r.CategoryPerformance {
			require.LessOrEqual(t, s.Correct, s.Attempts, "category %s", c)
			sum += s.Attempts
		}
		require.Equal(t, known, sum)
		require.LessOrEqual(t, sum, r.TotalAttempts)
	}
}

func TestRecordSession(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	r := NewRecord()

	e := r.RecordSession("maths-learning", 4.5, at)
	assert.Equal(t, "mathsLearning", e.GameMode)
	assert.Equal(t, ModeStats{Sessions: 1, TimeSpent: 4.5}, r.GameModeStats[catalog.MathsLearning])

	e = r.RecordSession("drawing", 2, at)
	assert.Equal(t, "drawing", e.GameMode)
	assert.Equal(t, 6.5, r.TimeSpent)
	assert.Len(t, r.SessionHistory, 2)
	for _, m := range catalog.GameModes() {
		if m != catalog.MathsLearning {
			assert.Zero(t, r.GameModeStats[m].Sessions)
		}
	}

	r.RecordSession("quiz", -3, at)
	assert.Equal(t, 6.5, r.TimeSpent, "negative durations count as zero")
	assert.Equal(t, 1, r.GameModeStats[catalog.Quiz].Sessions)
}

func TestDecodeFillsMissingBuckets(t *testing.T) {
	r, err := Decode([]byte(`{"totalAttempts":2,"correctAnswers":2,"categoryPerformance":{"animals":{"attempts":2,"correct":2},"custom":{"attempts":9,"correct":9}}}`))
	require.NoError(t, err)
	assert.Equal(t, 2, r.TotalAttempts)
	assert.Len(t, r.CategoryPerformance, 5)
	_, hasCustom := r.CategoryPerformance["custom"]
	assert.False(t, hasCustom)
	assert.Len(t, r.GameModeStats, 5)

	_, err = Decode([]byte(`[1,2`))
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	r := NewRecord()
	r.RecordSession("quiz", 1, time.Now())
	c := r.Clone()
	c.RecordSession("quiz", 1, time.Now())
	c.RecordAttempt(true, "human")

	assert.Len(t, r.SessionHistory, 1)
	assert.Equal(t, 1, r.GameModeStats[catalog.Quiz].Sessions)
	assert.Zero(t, r.CategoryPerformance[catalog.Human].Attempts)
}
