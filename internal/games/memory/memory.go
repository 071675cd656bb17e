// Package memory is the face-down card pairs game.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/progress"
)

type State string

const (
	StateChoosingCategory State = "choosing-category"
	StateInProgress       State = "in-progress"
	StateComplete         State = "complete"
)

const (
	MatchDelay    = 500 * time.Millisecond
	MismatchDelay = time.Second
	WinStars      = 5
	maxScore      = 100
	minScore      = 20
	movePenalty   = 2
)

// Score is the reward for finishing in moves moves.
func Score(moves int) int {
	s := maxScore - movePenalty*moves
	if s < minScore {
		return minScore
	}
	return s
}

// FormatElapsed renders d as m:ss.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

type Card struct {
	UniqueID string       `json:"uniqueId"`
	PairID   int          `json:"pairId"`
	Item     catalog.Item `json:"item"`
	FaceUp   bool         `json:"faceUp"`
	Matched  bool         `json:"matched"`
}

type FlipResult struct {
	Accepted  bool `json:"accepted"`
	Evaluated bool `json:"evaluated"`
	Matched   bool `json:"matched"`
}

type Snapshot struct {
	State    State            `json:"state"`
	Category catalog.Category `json:"category,omitempty"`
	Cards    []Card           `json:"cards,omitempty"`
	Moves    int              `json:"moves"`
	Pairs    int              `json:"pairs"`
	Matched  int              `json:"matched"`
	Elapsed  time.Duration    `json:"elapsed"`
	Score    int              `json:"score"`
}

type Controller struct {
	deps    games.Deps
	session *games.Session

	mu         sync.Mutex
	state      State
	category   catalog.Category
	deck       []Card
	flipped    []int
	matched    int
	moves      int
	score      int
	startedAt  time.Time
	finishedAt time.Time
	timer      clockwork.Timer
	gen        int
	closed     bool
}

func New(deps games.Deps) *Controller {
	deps = deps.WithDefaults()
	c := &Controller{deps: deps, state: StateChoosingCategory}
	c.session = games.NewSession(&c.deps, catalog.Memory)
	c.session.Begin()
	return c
}

// SelectCategory deals a shuffled deck holding every item of the category
// twice and starts the elapsed timer.
func (c *Controller) SelectCategory(category catalog.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	if c.state == StateInProgress {
		return games.ErrWrongState
	}
	items := c.deps.Catalog.ByCategory(category)
	if len(items) == 0 {
		return games.ErrUnknownCategory
	}

	deck := make([]Card, 0, 2*len(items))
	for _, it := range items {
		deck = append(deck,
			Card{UniqueID: fmt.Sprintf("%d-A", it.ID), PairID: it.ID, Item: it},
			Card{UniqueID: fmt.Sprintf("%d-B", it.ID), PairID: it.ID, Item: it},
		)
	}

	c.cancelTimer()
	c.state = StateInProgress
	c.category = category
	c.deck = games.Shuffle(c.deps.Rand, deck)
	c.flipped = nil
	c.matched = 0
	c.moves = 0
	c.score = 0
	c.startedAt = c.deps.Clock.Now()
	c.finishedAt = time.Time{}
	return nil
}

// Flip turns a card face up. Flips are refused while two cards are face up
// and for cards that are matched or already face up. The second card of a
// pair counts one move and schedules the reveal resolution.
func (c *Controller) Flip(uniqueID string) (FlipResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return FlipResult{}, games.ErrClosed
	}
	if c.state != StateInProgress {
		return FlipResult{}, games.ErrWrongState
	}
	idx := c.indexOf(uniqueID)
	if idx < 0 {
		return FlipResult{}, games.ErrUnknownItem
	}
	card := &c.deck[idx]
	if len(c.flipped) >= 2 || card.Matched || card.FaceUp {
		return FlipResult{}, nil
	}

	card.FaceUp = true
	c.flipped = append(c.flipped, idx)
	c.deps.PlayItem(card.Item)
	if len(c.flipped) < 2 {
		return FlipResult{Accepted: true}, nil
	}

	c.moves++
	a, b := c.deck[c.flipped[0]], c.deck[c.flipped[1]]
	isMatch := a.PairID == b.PairID
	c.deps.Analytics.TrackAttempt(isMatch, string(c.category), catalog.Memory.WireName())

	gen := c.gen
	if isMatch {
		if c.matched+1 == len(c.deck)/2 {
			c.finishedAt = c.deps.Clock.Now()
		}
		c.timer = c.deps.Clock.AfterFunc(MatchDelay, func() { c.resolve(gen, true) })
	} else {
		c.timer = c.deps.Clock.AfterFunc(MismatchDelay, func() { c.resolve(gen, false) })
	}
	return FlipResult{Accepted: true, Evaluated: true, Matched: isMatch}, nil
}

func (c *Controller) resolve(gen int, isMatch bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.closed {
		return
	}
	c.timer = nil
	for _, i := range c.flipped {
		if isMatch {
			c.deck[i].Matched = true
		} else {
			c.deck[i].FaceUp = false
		}
	}
	c.flipped = nil
	if !isMatch {
		return
	}

	c.matched++
	if c.matched < len(c.deck)/2 {
		return
	}
	c.state = StateComplete
	c.score = Score(c.moves)
	score := c.score
	c.deps.Progress.Update(func(r *progress.Record) {
		r.StarsEarned += WinStars
		r.GamesWon++
		r.TotalScore += score
	})
	c.deps.Logger.Info("memory complete",
		zap.String("category", string(c.category)),
		zap.Int("moves", c.moves),
		zap.Int("score", score),
	)
}

func (c *Controller) cancelTimer() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) indexOf(uniqueID string) int {
	for i, card := range c.deck {
		if card.UniqueID == uniqueID {
			return i
		}
	}
	return -1
}

// Elapsed is the time since the deck was dealt, frozen at the final flip.
func (c *Controller) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed()
}

func (c *Controller) elapsed() time.Duration {
	switch {
	case c.startedAt.IsZero():
		return 0
	case !c.finishedAt.IsZero():
		return c.finishedAt.Sub(c.startedAt)
	default:
		return c.deps.Clock.Since(c.startedAt)
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:    c.state,
		Category: c.category,
		Cards:    append([]Card(nil), c.deck...),
		Moves:    c.moves,
		Pairs:    len(c.deck) / 2,
		Matched:  c.matched,
		Elapsed:  c.elapsed(),
		Score:    c.score,
	}
}

// Close cancels the pending reveal and reports the session.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancelTimer()
	c.session.End()
}
