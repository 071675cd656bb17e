// Package exploration is free play: the child taps through a category's
// sounds and earns a bonus for hearing all of them.
package exploration

import (
	"sync"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/progress"
)

type State string

const (
	StateChoosingCategory State = "choosing-category"
	StateBrowsing         State = "browsing"
)

// CompletionBonus is the star reward for hearing every sound of a category.
const CompletionBonus = 5

type PlayResult struct {
	Item              catalog.Item `json:"item"`
	FirstTime         bool         `json:"firstTime"`
	CategoryCompleted bool         `json:"categoryCompleted"`
	StarsAwarded      int          `json:"starsAwarded"`
}

type Snapshot struct {
	State      State            `json:"state"`
	Category   catalog.Category `json:"category,omitempty"`
	Items      []catalog.Item   `json:"items,omitempty"`
	Played     []int            `json:"played,omitempty"`
	Completion int              `json:"completion"`
}

type Controller struct {
	deps    games.Deps
	session *games.Session

	mu       sync.Mutex
	state    State
	category catalog.Category
	items    []catalog.Item
	played   map[int]bool
	order    []int
	rewarded bool
	closed   bool
}

func New(deps games.Deps) *Controller {
	deps = deps.WithDefaults()
	c := &Controller{deps: deps, state: StateChoosingCategory}
	c.session = games.NewSession(&c.deps, catalog.Exploration)
	c.session.Begin()
	return c
}

// SelectCategory starts browsing a category. A category that is already
// complete in progress never grants the bonus again.
func (c *Controller) SelectCategory(category catalog.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	if c.state != StateChoosingCategory {
		return games.ErrWrongState
	}
	items := c.deps.Catalog.ByCategory(category)
	if len(items) == 0 {
		return games.ErrUnknownCategory
	}

	c.state = StateBrowsing
	c.category = category
	c.items = items
	c.played = make(map[int]bool, len(items))
	c.order = nil
	c.rewarded = c.deps.Progress.Load().ExplorationComplete[category]
	return nil
}

// Play plays an item's sound and records it as heard.
func (c *Controller) Play(itemID int) (PlayResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return PlayResult{}, games.ErrClosed
	}
	if c.state != StateBrowsing {
		return PlayResult{}, games.ErrWrongState
	}
	item, ok := c.find(itemID)
	if !ok {
		return PlayResult{}, games.ErrUnknownItem
	}

	c.deps.PlayItem(item)
	res := PlayResult{Item: item}
	if !c.played[itemID] {
		c.played[itemID] = true
		c.order = append(c.order, itemID)
		res.FirstTime = true
	}

	if len(c.played) == len(c.items) && !c.rewarded {
		c.rewarded = true
		category := c.category
		c.deps.Progress.Update(func(r *progress.Record) {
			r.ExplorationComplete[category] = true
			r.StarsEarned += CompletionBonus
		})
		res.CategoryCompleted = true
		res.StarsAwarded = CompletionBonus
		c.deps.Logger.Info("category explored", zap.String("category", string(category)))
	}
	return res, nil
}

func (c *Controller) find(id int) (catalog.Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.Item{}, false
}

// Back returns to category selection and forgets the heard set.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	c.state = StateChoosingCategory
	c.category = ""
	c.items = nil
	c.played = nil
	c.order = nil
	c.rewarded = false
	return nil
}

// Completion is the rounded percentage of the category's sounds heard.
func (c *Controller) Completion() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completion()
}

func (c *Controller) completion() int {
	if len(c.items) == 0 {
		return 0
	}
	return (len(c.played)*200 + len(c.items)) / (2 * len(c.items))
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:      c.state,
		Category:   c.category,
		Items:      append([]catalog.Item(nil), c.items...),
		Played:     append([]int(nil), c.order...),
		Completion: c.completion(),
	}
}

// Close ends the controller and reports the session.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.session.End()
}
