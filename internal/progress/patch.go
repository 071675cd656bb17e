package progress

import (
	"fmt"

	"github.com/architect/soundlearn/internal/catalog"
)

// SettingsPatch carries the settings fields to change. Nil fields are kept.
type SettingsPatch struct {
	Volume        *float64  `json:"volume,omitempty" binding:"omitempty,gte=0,lte=1"`
	HighContrast  *bool     `json:"highContrast,omitempty"`
	TextSize      *TextSize `json:"textSize,omitempty" binding:"omitempty,oneof=small medium large"`
	ReducedMotion *bool     `json:"reducedMotion,omitempty"`
}

// Apply merges p into s.
func (s *Settings) Apply(p SettingsPatch) error {
	if p.Volume != nil && (*p.Volume < 0 || *p.Volume > 1) {
		return fmt.Errorf("volume must be between 0 and 1")
	}
	if p.TextSize != nil && !p.TextSize.Valid() {
		return fmt.Errorf("textSize must be one of small, medium, large")
	}
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.HighContrast != nil {
		s.HighContrast = *p.HighContrast
	}
	if p.TextSize != nil {
		s.TextSize = *p.TextSize
	}
	if p.ReducedMotion != nil {
		s.ReducedMotion = *p.ReducedMotion
	}
	return nil
}

// CountersPatch carries the progress fields to overwrite.
type CountersPatch struct {
	StarsEarned         *int            `json:"starsEarned,omitempty" binding:"omitempty,gte=0"`
	QuizzesCompleted    *int            `json:"quizzesCompleted,omitempty" binding:"omitempty,gte=0"`
	GamesWon            *int            `json:"gamesWon,omitempty" binding:"omitempty,gte=0"`
	TotalScore          *int            `json:"totalScore,omitempty" binding:"omitempty,gte=0"`
	ExplorationComplete map[string]bool `json:"explorationComplete,omitempty"`
}

// Apply merges p into c. Exploration entries merge per category.
func (c *Counters) Apply(p CountersPatch) error {
	for _, v := range []*int{p.StarsEarned, p.QuizzesCompleted, p.GamesWon, p.TotalScore} {
		if v != nil && *v < 0 {
			return fmt.Errorf("progress counters must not be negative")
		}
	}
	for k := range p.ExplorationComplete {
		if !catalog.Category(k).Valid() {
			return fmt.Errorf("unknown category %q", k)
		}
	}

	if p.StarsEarned != nil {
		c.StarsEarned = *p.StarsEarned
	}
	if p.QuizzesCompleted != nil {
		c.QuizzesCompleted = *p.QuizzesCompleted
	}
	if p.GamesWon != nil {
		c.GamesWon = *p.GamesWon
	}
	if p.TotalScore != nil {
		c.TotalScore = *p.TotalScore
	}
	flags := c.ExplorationComplete.clone()
	for k, v := range p.ExplorationComplete {
		flags[catalog.Category(k)] = v
	}
	c.ExplorationComplete = flags
	return nil
}
