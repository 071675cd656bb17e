// Package mathlearning runs counting, addition, pattern and comparison
// problems with a token goal that ends in a certificate.
package mathlearning

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/games"
	"github.com/architect/soundlearn/internal/progress"
)

type State string

const (
	StateMenu        State = "menu"
	StatePlaying     State = "playing"
	StateCertificate State = "certificate"
)

const (
	DefaultWindow    = 3 * time.Second
	DefaultTokenGoal = 5
	PointsPerCorrect = 10
	StarsPerCorrect  = 1
)

// ErrOptionLocked is returned for a wrong option chosen during the
// observation window, when only the correct option is selectable.
var ErrOptionLocked = errors.New("mathlearning: option not selectable yet")

// Narrator reads text aloud.
type Narrator interface {
	Speak(text string)
}

type nopNarrator struct{}

func (nopNarrator) Speak(string) {}

type Option func(*Controller)

// WithWindow sets the observation window opened by each new problem.
func WithWindow(d time.Duration) Option { return func(c *Controller) { c.window = d } }

// WithTokenGoal sets how many consecutive correct answers earn the
// certificate.
func WithTokenGoal(n int) Option { return func(c *Controller) { c.goal = n } }

func WithNarrator(n Narrator) Option { return func(c *Controller) { c.narrator = n } }

type AnswerResult struct {
	Correct     bool   `json:"correct"`
	Score       int    `json:"score"`
	Tokens      int    `json:"tokens"`
	Certificate bool   `json:"certificate"`
	Answer      string `json:"answer"`
}

type Snapshot struct {
	State      State    `json:"state"`
	Family     Family   `json:"family,omitempty"`
	Problem    *Problem `json:"problem,omitempty"`
	Selectable []string `json:"selectable,omitempty"`
	Score      int      `json:"score"`
	Tokens     int      `json:"tokens"`
	Goal       int      `json:"goal"`
	Streak     int      `json:"streak"`
}

type Controller struct {
	deps     games.Deps
	session  *games.Session
	window   time.Duration
	goal     int
	narrator Narrator

	mu       sync.Mutex
	state    State
	family   Family
	problem  Problem
	openedAt time.Time
	score    int
	tokens   int
	streak   int
	closed   bool
}

func New(deps games.Deps, opts ...Option) *Controller {
	deps = deps.WithDefaults()
	c := &Controller{
		deps:     deps,
		window:   DefaultWindow,
		goal:     DefaultTokenGoal,
		narrator: nopNarrator{},
		state:    StateMenu,
	}
	for _, o := range opts {
		o(c)
	}
	if c.goal < 1 {
		c.goal = 1
	}
	c.session = games.NewSession(&c.deps, catalog.MathsLearning)
	return c
}

// Start begins a round of one family. A session still open from an earlier
// round is reported first.
func (c *Controller) Start(f Family) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	if _, err := ParseFamily(string(f)); err != nil {
		return err
	}
	c.session.End()
	c.session.Begin()

	c.family = f
	c.score = 0
	c.tokens = 0
	c.streak = 0
	c.state = StatePlaying
	return c.next()
}

func (c *Controller) next() error {
	p, err := Generate(c.deps.Rand, c.family)
	if err != nil {
		return err
	}
	c.problem = p
	c.openedAt = c.deps.Clock.Now()
	c.narrator.Speak(p.Question)
	return nil
}

func (c *Controller) inWindow() bool {
	return c.deps.Clock.Since(c.openedAt) < c.window
}

// Answer submits an option of the current problem.
func (c *Controller) Answer(option string) (AnswerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return AnswerResult{}, games.ErrClosed
	}
	if c.state != StatePlaying {
		return AnswerResult{}, games.ErrWrongState
	}
	if !contains(c.problem.Options, option) {
		return AnswerResult{}, games.ErrUnknownItem
	}
	correct := option == c.problem.Answer
	if !correct && c.inWindow() {
		return AnswerResult{}, ErrOptionLocked
	}

	c.deps.Analytics.TrackAttempt(correct, "", catalog.MathsLearning.WireName())
	res := AnswerResult{Correct: correct, Answer: c.problem.Answer}

	if !correct {
		c.tokens = 0
		c.streak = 0
		c.narrator.Speak("Try again.")
		res.Score, res.Tokens = c.score, c.tokens
		return res, nil
	}

	c.score += PointsPerCorrect
	c.tokens++
	c.streak++
	c.deps.Progress.Update(func(r *progress.Record) { r.StarsEarned += StarsPerCorrect })
	c.narrator.Speak("Great job!")
	res.Score, res.Tokens = c.score, c.tokens

	if c.tokens >= c.goal {
		c.state = StateCertificate
		res.Certificate = true
		c.deps.Logger.Info("math certificate earned",
			zap.String("family", string(c.family)),
			zap.Int("score", c.score),
		)
		return res, nil
	}
	if err := c.next(); err != nil {
		return res, err
	}
	return res, nil
}

// Selectable lists the options that can be chosen right now.
func (c *Controller) Selectable() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectable()
}

func (c *Controller) selectable() []string {
	if c.state != StatePlaying {
		return nil
	}
	if c.inWindow() {
		return []string{c.problem.Answer}
	}
	return append([]string(nil), c.problem.Options...)
}

// Repeat reads the current question again.
func (c *Controller) Repeat() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePlaying {
		return games.ErrWrongState
	}
	c.narrator.Speak(c.problem.Question)
	return nil
}

// PlayAgain leaves the certificate for a fresh token run of the same family.
func (c *Controller) PlayAgain() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return games.ErrClosed
	}
	if c.state != StateCertificate {
		return games.ErrWrongState
	}
	c.tokens = 0
	c.state = StatePlaying
	return c.next()
}

// Menu returns to family selection. The session stays open.
func (c *Controller) Menu() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateMenu
	c.family = ""
	c.tokens = 0
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{
		State:  c.state,
		Family: c.family,
		Score:  c.score,
		Tokens: c.tokens,
		Goal:   c.goal,
		Streak: c.streak,
	}
	if c.state == StatePlaying {
		p := c.problem
		s.Problem = &p
		s.Selectable = c.selectable()
	}
	return s
}

// Close reports the open session.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.session.End()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
