package analytics

import (
	"math"

	"github.com/architect/soundlearn/internal/catalog"
)

// Summary is the headline view of a record. TimeSpent is the raw minute
// total; rounding is left to whoever displays it.
type Summary struct {
	SuccessRate   int              `json:"successRate"`
	TotalAttempts int              `json:"totalAttempts"`
	TimeSpent     float64          `json:"timeSpent"`
	FavoriteMode  catalog.GameMode `json:"favoriteMode"`
}

type CategoryScore struct {
	Category   catalog.Category `json:"category"`
	Attempts   int              `json:"attempts"`
	Correct    int              `json:"correct"`
	Percentage int              `json:"percentage"`
}

type ModeShare struct {
	Mode       catalog.GameMode `json:"mode"`
	Sessions   int              `json:"sessions"`
	TimeSpent  float64          `json:"timeSpent"`
	Percentage int              `json:"percentage"`
}

// roundHalfUp rounds .5 away from zero for the non-negative values used here.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(whole) * 100)
}

// Summarize derives the headline metrics. The favorite mode is the one with
// the most sessions; ties keep the earliest mode in GameModes order and a
// record with no sessions reports exploration.
func Summarize(r Record) Summary {
	fav := catalog.Exploration
	best := 0
	for _, m := range catalog.GameModes() {
		if n := r.GameModeStats[m].Sessions; n > best {
			best = n
			fav = m
		}
	}
	return Summary{
		SuccessRate:   percent(r.CorrectAnswers, r.TotalAttempts),
		TotalAttempts: r.TotalAttempts,
		TimeSpent:     r.TimeSpent,
		FavoriteMode:  fav,
	}
}

// CategoryBreakdown lists every category in fixed order.
func CategoryBreakdown(r Record) []CategoryScore {
	out := make([]CategoryScore, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		s := r.CategoryPerformance[c]
		out = append(out, CategoryScore{
			Category:   c,
			Attempts:   s.Attempts,
			Correct:    s.Correct,
			Percentage: percent(s.Correct, s.Attempts),
		})
	}
	return out
}

// BestCategory is the breakdown entry with the highest percentage among
// attempted categories; the earliest wins ties.
func BestCategory(r Record) (CategoryScore, bool) {
	var best CategoryScore
	found := false
	for _, s := range CategoryBreakdown(r) {
		if s.Attempts == 0 {
			continue
		}
		if !found || s.Percentage > best.Percentage {
			best = s
			found = true
		}
	}
	return best, found
}

// ModeDistribution is each mode's share of all recognized sessions.
func ModeDistribution(r Record) []ModeShare {
	total := 0
	for _, m := range catalog.GameModes() {
		total += r.GameModeStats[m].Sessions
	}
	out := make([]ModeShare, 0, len(catalog.GameModes()))
	for _, m := range catalog.GameModes() {
		s := r.GameModeStats[m]
		out = append(out, ModeShare{
			Mode:       m,
			Sessions:   s.Sessions,
			TimeSpent:  s.TimeSpent,
			Percentage: percent(s.Sessions, total),
		})
	}
	return out
}

// AverageSessionMinutes is total time over the number of reported sessions.
func AverageSessionMinutes(r Record) int {
	if len(r.SessionHistory) == 0 {
		return 0
	}
	return roundHalfUp(r.TimeSpent / float64(len(r.SessionHistory)))
}

// Breakdown bundles the detailed views.
type Breakdown struct {
	Categories            []CategoryScore `json:"categories"`
	Modes                 []ModeShare     `json:"modes"`
	AverageSessionMinutes int             `json:"averageSessionMinutes"`
	BestCategory          *CategoryScore  `json:"bestCategory,omitempty"`
}

func NewBreakdown(r Record) Breakdown {
	b := Breakdown{
		Categories:            CategoryBreakdown(r),
		Modes:                 ModeDistribution(r),
		AverageSessionMinutes: AverageSessionMinutes(r),
	}
	if best, ok := BestCategory(r); ok {
		b.BestCategory = &best
	}
	return b
}
