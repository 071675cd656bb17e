package mathlearning

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/architect/soundlearn/internal/games"
)

type Family string

const (
	Counting   Family = "counting"
	Addition   Family = "addition"
	Patterns   Family = "patterns"
	Comparison Family = "comparison"
)

func Families() []Family {
	return []Family{Counting, Addition, Patterns, Comparison}
}

func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown problem family %q", s)
}

// Emojis is the picture set problems draw from.
var Emojis = []string{"🍎", "🍌", "🍇", "🍊", "🍓", "🐶", "🐱", "🚗", "⭐"}

const (
	apple = "🍎"
	left  = "Left"
	right = "Right"

	choices = 3
)

type Problem struct {
	Family     Family   `json:"family"`
	Question   string   `json:"question"`
	Emoji      string   `json:"emoji,omitempty"`
	Count      int      `json:"count,omitempty"`
	Addends    []int    `json:"addends,omitempty"`
	Pattern    []string `json:"pattern,omitempty"`
	LeftCount  int      `json:"leftCount,omitempty"`
	RightCount int      `json:"rightCount,omitempty"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
}

// Generate builds one problem of the family.
func Generate(rng *rand.Rand, f Family) (Problem, error) {
	switch f {
	case Counting:
		return counting(rng), nil
	case Addition:
		return addition(rng), nil
	case Patterns:
		return patterns(rng), nil
	case Comparison:
		return comparison(rng), nil
	}
	return Problem{}, fmt.Errorf("unknown problem family %q", f)
}

func randomEmoji(rng *rand.Rand) string {
	return Emojis[rng.Intn(len(Emojis))]
}

// numberOptions returns the answer plus choices-1 distinct wrong numbers
// from lo..hi, shuffled.
func numberOptions(rng *rand.Rand, answer, lo, hi int) []string {
	pool := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		if n != answer {
			pool = append(pool, n)
		}
	}
	idx, _ := games.Sample(rng, len(pool), choices-1)
	opts := []string{strconv.Itoa(answer)}
	for _, i := range idx {
		opts = append(opts, strconv.Itoa(pool[i]))
	}
	return games.Shuffle(rng, opts)
}

func counting(rng *rand.Rand) Problem {
	count := 1 + rng.Intn(8)
	emoji := randomEmoji(rng)
	noun := "items"
	if emoji == apple {
		noun = "apples"
	}
	return Problem{
		Family:   Counting,
		Question: fmt.Sprintf("How many %s do you see?", noun),
		Emoji:    emoji,
		Count:    count,
		Options:  numberOptions(rng, count, 1, 9),
		Answer:   strconv.Itoa(count),
	}
}

func addition(rng *rand.Rand) Problem {
	a := 1 + rng.Intn(5)
	b := 1 + rng.Intn(4)
	return Problem{
		Family:   Addition,
		Question: "Add the apples together!",
		Emoji:    apple,
		Addends:  []int{a, b},
		Options:  numberOptions(rng, a+b, 1, 10),
		Answer:   strconv.Itoa(a + b),
	}
}

func patterns(rng *rand.Rand) Problem {
	pair, _ := games.Sample(rng, len(Emojis), 2)
	a, b := Emojis[pair[0]], Emojis[pair[1]]

	pool := make([]string, 0, len(Emojis)-1)
	for _, e := range Emojis {
		if e != b {
			pool = append(pool, e)
		}
	}
	idx, _ := games.Sample(rng, len(pool), choices-1)
	opts := []string{b}
	for _, i := range idx {
		opts = append(opts, pool[i])
	}
	return Problem{
		Family:   Patterns,
		Question: "What comes next?",
		Pattern:  []string{a, b, a, b, a},
		Options:  games.Shuffle(rng, opts),
		Answer:   b,
	}
}

func comparison(rng *rand.Rand) Problem {
	pair, _ := games.Sample(rng, 8, 2)
	l, r := pair[0]+1, pair[1]+1
	answer := right
	if l > r {
		answer = left
	}
	return Problem{
		Family:     Comparison,
		Question:   "Which side has MORE?",
		Emoji:      randomEmoji(rng),
		LeftCount:  l,
		RightCount: r,
		Options:    []string{left, right},
		Answer:     answer,
	}
}
