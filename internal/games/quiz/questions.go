package quiz

import (
	"fmt"
	"math/rand"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Level is the option and question count of a difficulty.
type Level struct {
	Options   int `json:"options"`
	Questions int `json:"questions"`
}

var levels = map[Difficulty]Level{
	Easy:   {Options: 4, Questions: 5},
	Medium: {Options: 6, Questions: 8},
	Hard:   {Options: 8, Questions: 10},
}

func (d Difficulty) Level() (Level, bool) {
	l, ok := levels[d]
	return l, ok
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := levels[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Question asks which option makes the played sound.
type Question struct {
	Category catalog.Category `json:"category"`
	Answer   catalog.Item     `json:"answer"`
	Options  []catalog.Item   `json:"options"`
}

// Generate builds a quiz. Each question's answer is drawn uniformly from the
// category; the other options are distinct items from the whole catalog.
// When the catalog is too small the questions carry fewer options.
func Generate(rng *rand.Rand, cat *catalog.Catalog, category catalog.Category, d Difficulty) ([]Question, error) {
	level, ok := d.Level()
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", d)
	}
	items := cat.ByCategory(category)
	if len(items) == 0 {
		return nil, games.ErrUnknownCategory
	}
	all := cat.All()

	out := make([]Question, 0, level.Questions)
	for i := 0; i < level.Questions; i++ {
		answer := items[rng.Intn(len(items))]

		others := make([]catalog.Item, 0, len(all)-1)
		for _, it := range all {
			if it.ID != answer.ID {
				others = append(others, it)
			}
		}
		idx, _ := games.Sample(rng, len(others), level.Options-1)

		options := make([]catalog.Item, 0, len(idx)+1)
		options = append(options, answer)
		for _, j := range idx {
			options = append(options, others[j])
		}
		out = append(out, Question{
			Category: category,
			Answer:   answer,
			Options:  games.Shuffle(rng, options),
		})
	}
	return out, nil
}

// Stars is the reward for score correct answers out of total: five stars
// scaled by the score and rounded up.
func Stars(score, total int) int {
	if total <= 0 || score <= 0 {
		return 0
	}
	return (5*score + total - 1) / total
}
