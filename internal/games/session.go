package games

import (
	"time"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/catalog"
)

// Session measures one stay in a game mode and reports it once.
type Session struct {
	Mode catalog.GameMode

	deps    *Deps
	started time.Time
	open    bool
}

func NewSession(deps *Deps, mode catalog.GameMode) *Session {
	return &Session{Mode: mode, deps: deps}
}

// Begin opens the session if it is not already open.
func (s *Session) Begin() {
	if s.open {
		return
	}
	s.started = s.deps.Clock.Now()
	s.open = true
}

// Open reports whether the session is running.
func (s *Session) Open() bool { return s.open }

// End reports the open session with its elapsed minutes.
func (s *Session) End() (float64, bool) {
	if !s.open {
		return 0, false
	}
	s.open = false
	minutes := s.deps.Clock.Since(s.started).Minutes()
	s.deps.Analytics.TrackSession(s.Mode.WireName(), minutes)
	s.deps.Logger.Debug("session ended", zap.String("mode", string(s.Mode)), zap.Float64("minutes", minutes))
	return minutes, true
}
