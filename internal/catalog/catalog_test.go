package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	all := Default.All()
	require.Len(t, all, 30)

	seen := make(map[int]bool)
	for i, it := range all {
		assert.Equal(t, i+1, it.ID, "ids run 1..30 in category order")
		assert.False(t, seen[it.ID])
		seen[it.ID] = true
		assert.True(t, it.Category.Valid())
	}

	for _, c := range Categories() {
		assert.Len(t, Default.ByCategory(c), 6, string(c))
	}
}

func TestByCategoryUnknown(t *testing.T) {
	assert.Nil(t, Default.ByCategory("dinosaurs"))
}

func TestNewPrefixesSoundPaths(t *testing.T) {
	c := New("https://cdn.example.org/")
	dog, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.org/sounds/animals/dog.mp3", dog.Sound)

	waves, ok := Default.Lookup(16)
	require.True(t, ok)
	assert.Equal(t, "Ocean Waves", waves.Name)
	assert.Equal(t, "/sounds/nature/waves.mp3", waves.Sound)
}

func TestByCategoryReturnsCopy(t *testing.T) {
	items := Default.ByCategory(Animals)
	items[0].Name = "Wolf"
	again := Default.ByCategory(Animals)
	assert.Equal(t, "Dog", again[0].Name)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		it, ok := Default.Random(rng, Human)
		require.True(t, ok)
		assert.Equal(t, Human, it.Category)
	}
	_, ok := Default.Random(rng, "space")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Animals ")
	require.NoError(t, err)
	assert.Equal(t, Animals, c)

	_, err = ParseCategory("custom")
	assert.Error(t, err)
}

func TestCanonicalMode(t *testing.T) {
	tests := []struct {
		in   string
		want GameMode
		ok   bool
	}{
		{"exploration", Exploration, true},
		{"quiz", Quiz, true},
		{"matching", Matching, true},
		{"memory", Memory, true},
		{"maths-learning", MathsLearning, true},
		{"mathsLearning", MathsLearning, true},
		{"math-learning", MathsLearning, true},
		{"drawing", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "maths-learning", MathsLearning.WireName())
	assert.Equal(t, "quiz", Quiz.WireName())
}
