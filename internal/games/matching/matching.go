// Package matching pairs each sound with its picture.
package matching

import (
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
	PointsPerMatch = 10
	WinStars       = 5
	MismatchDelay  = time.Second
)

type Track string

const (
	TrackSound Track = "sound"
	TrackImage Track = "image"
)

type Result struct {
	Ignored   bool `json:"ignored"`
	Evaluated bool `json:"evaluated"`
	Matched   bool `json:"matched"`
	Completed bool `json:"completed"`
}

type Snapshot struct {
	State         State            `json:"state"`
	Category      catalog.Category `json:"category,omitempty"`
	Sounds        []catalog.Item   `json:"sounds,omitempty"`
	Images        []catalog.Item   `json:"images,omitempty"`
	SelectedSound int              `json:"selectedSound,omitempty"`
	SelectedImage int              `json:"selectedImage,omitempty"`
	Matched       []int            `json:"matched,omitempty"`
	Score         int              `json:"score"`
	Attempts      int              `json:"attempts"`
	Locked        bool             `json:"locked"`
}

type Controller struct {
	deps    games.Deps
	session *games.Session

	mu       sync.Mutex
	state    State
	category catalog.Category
	sounds   []catalog.Item
	images   []catalog.Item
	selSound int
	selImage int
	matched  map[int]bool
	order    []int
	score    int
	attempts int
	locked   bool
	timer    clockwork.Timer
	gen      int
	closed   bool
}

func New(deps games.Deps) *Controller {
	deps = deps.WithDefaults()
	c := &Controller{deps: deps, state: StateChoosingCategory}
	c.session = games.NewSession(&c.deps, catalog.Matching)
	c.session.Begin()
	return c
}

// SelectCategory lays out the sound track in catalog order and the image
// track shuffled.
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
	c.cancelTimer()
	c.state = StateInProgress
	c.category = category
	c.sounds = items
	c.images = games.Shuffle(c.deps.Rand, items)
	c.selSound, c.selImage = 0, 0
	c.matched = make(map[int]bool, len(items))
	c.order = nil
	c.score, c.attempts = 0, 0
	c.locked = false
	return nil
}

// SelectSound plays a sound and selects it on the sound track.
func (c *Controller) SelectSound(itemID int) (Result, error) {
	return c.selectOn(TrackSound, itemID)
}

// SelectImage selects a picture on the image track.
func (c *Controller) SelectImage(itemID int) (Result, error) {
	return c.selectOn(TrackImage, itemID)
}

func (c *Controller) selectOn(track Track, itemID int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Result{}, games.ErrClosed
	}
	if c.state != StateInProgress {
		return Result{}, games.ErrWrongState
	}
	item, ok := c.find(itemID)
	if !ok {
		return Result{}, games.ErrUnknownItem
	}
	if c.locked || c.matched[itemID] {
		return Result{Ignored: true}, nil
	}

	if track == TrackSound {
		c.deps.PlayItem(item)
		c.selSound = itemID
	} else {
		c.selImage = itemID
	}
	if c.selSound == 0 || c.selImage == 0 {
		return Result{}, nil
	}
	return c.evaluate(), nil
}

func (c *Controller) evaluate() Result {
	c.attempts++
	res := Result{Evaluated: true}
	isMatch := c.selSound == c.selImage
	c.deps.Analytics.TrackAttempt(isMatch, string(c.category), catalog.Matching.WireName())

	if !isMatch {
		c.locked = true
		gen := c.gen
		c.timer = c.deps.Clock.AfterFunc(MismatchDelay, func() { c.clearSelection(gen) })
		return res
	}

	res.Matched = true
	c.matched[c.selSound] = true
	c.order = append(c.order, c.selSound)
	c.score += PointsPerMatch
	c.selSound, c.selImage = 0, 0

	if len(c.matched) == len(c.sounds) {
		c.state = StateComplete
		res.Completed = true
		score := c.score
		c.deps.Progress.Update(func(r *progress.Record) {
			r.StarsEarned += WinStars
			r.GamesWon++
			r.TotalScore += score
		})
		c.deps.Logger.Info("matching complete",
			zap.String("category", string(c.category)),
			zap.Int("score", score),
			zap.Int("attempts", c.attempts),
		)
	}
	return res
}

func (c *Controller) clearSelection(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.closed {
		return
	}
	c.selSound, c.selImage = 0, 0
	c.locked = false
	c.timer = nil
}

func (c *Controller) cancelTimer() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) find(id int) (catalog.Item, bool) {
	for _, it := range c.sounds {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.Item{}, false
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:         c.state,
		Category:      c.category,
		Sounds:        append([]catalog.Item(nil), c.sounds...),
		Images:        append([]catalog.Item(nil), c.images...),
		SelectedSound: c.selSound,
		SelectedImage: c.selImage,
		Matched:       append([]int(nil), c.order...),
		Score:         c.score,
		Attempts:      c.attempts,
		Locked:        c.locked,
	}
}

// Close cancels the pending mismatch reset and reports the session.
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
