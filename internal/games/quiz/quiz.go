// Package quiz runs the listen-and-pick quiz over one category.
package quiz

import (
	"sync"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/progress"
)

type State string

const (
	StateChoosingCategory   State = "choosing-category"
	StateChoosingDifficulty State = "choosing-difficulty"
	StateInQuestion         State = "in-question"
	StateQuestionResult     State = "question-result"
	StateComplete           State = "complete"
)

type AnswerResult struct {
	Correct bool         `json:"correct"`
	Answer  catalog.Item `json:"answer"`
	Score   int          `json:"score"`
}

type Snapshot struct {
	State       State            `json:"state"`
	Category    catalog.Category `json:"category,omitempty"`
	Difficulty  Difficulty       `json:"difficulty,omitempty"`
	Index       int              `json:"index"`
	Total       int              `json:"total"`
	Score       int              `json:"score"`
	Question    *Question        `json:"question,omitempty"`
	HintVisible bool             `json:"hintVisible"`
	LastCorrect *bool            `json:"lastCorrect,omitempty"`
	Stars       int              `json:"stars"`
}

type Controller struct {
	deps    games.Deps
	session *games.Session

	mu          sync.Mutex
	state       State
	category    catalog.Category
	difficulty  Difficulty
	questions   []Question
	index       int
	score       int
	hint        bool
	lastCorrect *bool
	stars       int
	closed      bool
}

func New(deps games.Deps) *Controller {
	deps = deps.WithDefaults()
	c := &Controller{deps: deps, state: StateChoosingCategory}
	c.session = games.NewSession(&c.deps, catalog.Quiz)
	c.session.Begin()
	return c
}

func (c *Controller) SelectCategory(category catalog.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StateChoosingCategory); err != nil {
		return err
	}
	if !category.Valid() || len(c.deps.Catalog.ByCategory(category)) == 0 {
		return games.ErrUnknownCategory
	}
	c.category = category
	c.state = StateChoosingDifficulty
	return nil
}

// SelectDifficulty generates the questions and plays the first sound.
func (c *Controller) SelectDifficulty(d Difficulty) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StateChoosingDifficulty); err != nil {
		return err
	}
	qs, err := Generate(c.deps.Rand, c.deps.Catalog, c.category, d)
	if err != nil {
		return err
	}
	c.difficulty = d
	c.questions = qs
	c.index = 0
	c.score = 0
	c.stars = 0
	c.hint = false
	c.lastCorrect = nil
	c.state = StateInQuestion
	c.deps.PlayItem(qs[0].Answer)
	return nil
}

// PlaySound replays the current question's sound.
func (c *Controller) PlaySound() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	if c.state != StateInQuestion && c.state != StateQuestionResult {
		return games.ErrWrongState
	}
	c.deps.PlayItem(c.questions[c.index].Answer)
	return nil
}

// ToggleHint shows or hides the question's category and returns the new
// visibility.
func (c *Controller) ToggleHint() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StateInQuestion); err != nil {
		return false, err
	}
	c.hint = !c.hint
	return c.hint, nil
}

func (c *Controller) Answer(itemID int) (AnswerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StateInQuestion); err != nil {
		return AnswerResult{}, err
	}
	q := c.questions[c.index]
	found := false
	for _, o := range q.Options {
		if o.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return AnswerResult{}, games.ErrUnknownItem
	}

	correct := itemID == q.Answer.ID
	if correct {
		c.score++
	}
	c.lastCorrect = &correct
	c.state = StateQuestionResult
	c.deps.Analytics.TrackAttempt(correct, string(q.Category), catalog.Quiz.WireName())
	return AnswerResult{Correct: correct, Answer: q.Answer, Score: c.score}, nil
}

// Next advances to the next question, or completes the quiz and grants its
// rewards after the last one.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StateQuestionResult); err != nil {
		return err
	}
	if c.index+1 < len(c.questions) {
		c.index++
		c.hint = false
		c.lastCorrect = nil
		c.state = StateInQuestion
		c.deps.PlayItem(c.questions[c.index].Answer)
		return nil
	}

	c.state = StateComplete
	c.stars = Stars(c.score, len(c.questions))
	score, stars := c.score, c.stars
	c.deps.Progress.Update(func(r *progress.Record) {
		r.QuizzesCompleted++
		r.StarsEarned += stars
		r.TotalScore += score
	})
	c.deps.Logger.Info("quiz complete",
		zap.String("category", string(c.category)),
		zap.Int("score", score),
		zap.Int("stars", stars),
	)
	return nil
}

// Back steps from difficulty selection to category selection.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StateChoosingDifficulty); err != nil {
		return err
	}
	c.category = ""
	c.state = StateChoosingCategory
	return nil
}

// Restart returns to category selection from any state.
func (c *Controller) Restart() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	c.state = StateChoosingCategory
	c.category = ""
	c.difficulty = ""
	c.questions = nil
	c.index = 0
	c.score = 0
	c.hint = false
	c.lastCorrect = nil
	c.stars = 0
	return nil
}

func (c *Controller) expect(s State) error {
	if c.closed {
		return games.ErrClosed
	}
	if c.state != s {
		return games.ErrWrongState
	}
	return nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{
		State:       c.state,
		Category:    c.category,
		Difficulty:  c.difficulty,
		Index:       c.index,
		Total:       len(c.questions),
		Score:       c.score,
		HintVisible: c.hint,
		LastCorrect: c.lastCorrect,
		Stars:       c.stars,
	}
	if c.state == StateInQuestion || c.state == StateQuestionResult {
		q := c.questions[c.index]
		s.Question = &q
	}
	return s
}

func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.session.End()
}
