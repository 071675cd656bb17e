// Package progress holds a profile's cumulative rewards and settings.
package progress

import (
	"encoding/json"
	"fmt"

	"github.com/architect/soundlearn/internal/catalog"
)

type TextSize string

const (
	TextSmall  TextSize = "small"
	TextMedium TextSize = "medium"
	TextLarge  TextSize = "large"
)

func (t TextSize) Valid() bool {
	switch t {
	case TextSmall, TextMedium, TextLarge:
		return true
	}
	return false
}

// Settings are the accessibility preferences shared by client and server.
type Settings struct {
	Volume        float64  `json:"volume"`
	HighContrast  bool     `json:"highContrast"`
	TextSize      TextSize `json:"textSize"`
	ReducedMotion bool     `json:"reducedMotion"`
}

func DefaultSettings() Settings {
	return Settings{Volume: 0.8, TextSize: TextMedium}
}

// ExplorationFlags always carries exactly the fixed categories.
type ExplorationFlags map[catalog.Category]bool

func NewExplorationFlags() ExplorationFlags {
	f := make(ExplorationFlags, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		f[c] = false
	}
	return f
}

// UnmarshalJSON drops unknown categories and fills missing ones with false.
func (f *ExplorationFlags) UnmarshalJSON(b []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	flags := NewExplorationFlags()
	for k, v := range raw {
		if c := catalog.Category(k); c.Valid() {
			flags[c] = v
		}
	}
	*f = flags
	return nil
}

func (f ExplorationFlags) clone() ExplorationFlags {
	out := NewExplorationFlags()
	for k, v := range f {
		if k.Valid() {
			out[k] = v
		}
	}
	return out
}

// Counters are the cumulative reward fields. The server's user document
// stores these without settings.
type Counters struct {
	StarsEarned         int              `json:"starsEarned"`
	QuizzesCompleted    int              `json:"quizzesCompleted"`
	GamesWon            int              `json:"gamesWon"`
	TotalScore          int              `json:"totalScore"`
	ExplorationComplete ExplorationFlags `json:"explorationComplete"`
}

func DefaultCounters() Counters {
	return Counters{ExplorationComplete: NewExplorationFlags()}
}

// Record is the singleton progress document of a profile.
type Record struct {
	Counters
	Settings Settings `json:"settings"`
}

func Default() Record {
	return Record{Counters: DefaultCounters(), Settings: DefaultSettings()}
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	r.ExplorationComplete = r.ExplorationComplete.clone()
	return r
}

// normalize repairs values a hand-edited or older document may carry.
func (r *Record) normalize() {
	for _, p := range []*int{&r.StarsEarned, &r.QuizzesCompleted, &r.GamesWon, &r.TotalScore} {
		if *p < 0 {
			*p = 0
		}
	}
	r.ExplorationComplete = r.ExplorationComplete.clone()

	def := DefaultSettings()
	if r.Settings.Volume < 0 || r.Settings.Volume > 1 {
		r.Settings.Volume = def.Volume
	}
	if !r.Settings.TextSize.Valid() {
		r.Settings.TextSize = def.TextSize
	}
}

// Decode parses a stored document over the defaults.
func Decode(data []byte) (Record, error) {
	r := Default()
	if err := json.Unmarshal(data, &r); err != nil {
		return Default(), fmt.Errorf("decode progress: %w", err)
	}
	r.normalize()
	return r, nil
}

func (r Record) encode() ([]byte, error) {
	return json.Marshal(r)
}

// ExploredCount is the number of categories marked explored.
func (c Counters) ExploredCount() int {
	n := 0
	for _, done := range c.ExplorationComplete {
		if done {
			n++
		}
	}
	return n
}
