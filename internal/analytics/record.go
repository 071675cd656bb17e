// Package analytics records answer attempts and play sessions and derives
// summary metrics from them. The same record shape backs the local
// profile document and the server's per-user document.
package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/architect/soundlearn/internal/catalog"
)

type CategoryStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

type ModeStats struct {
	Sessions  int     `json:"sessions"`
	TimeSpent float64 `json:"timeSpent"`
}

// SessionEntry is one reported session. GameMode holds the canonical mode
// key when the mode is known and the reported name otherwise.
type SessionEntry struct {
	GameMode  string    `json:"gameMode"`
	Duration  float64   `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyActivity is part of the stored schema but nothing fills it yet.
type DailyActivity struct {
	Date           string `json:"date"`
	Attempts       int    `json:"attempts"`
	CorrectAnswers int    `json:"correctAnswers"`
}

type Record struct {
	TotalAttempts       int                                `json:"totalAttempts"`
	CorrectAnswers      int                                `json:"correctAnswers"`
	IncorrectAnswers    int                                `json:"incorrectAnswers"`
	TimeSpent           float64                            `json:"timeSpent"`
	CategoryPerformance map[catalog.Category]CategoryStats `json:"categoryPerformance"`
	GameModeStats       map[catalog.GameMode]ModeStats     `json:"gameModeStats"`
	SessionHistory      []SessionEntry                     `json:"sessionHistory"`
	DailyActivity       []DailyActivity                    `json:"dailyActivity"`
}

// NewRecord returns an empty record with every category and mode bucket.
func NewRecord() Record {
	r := Record{}
	r.Normalize()
	return r
}

// Normalize fills missing buckets, drops unknown ones and replaces nil
// slices so the record always carries the full fixed shape.
func (r *Record) Normalize() {
	cats := make(map[catalog.Category]CategoryStats, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		cats[c] = r.CategoryPerformance[c]
	}
	r.CategoryPerformance = cats

	modes := make(map[catalog.GameMode]ModeStats, len(catalog.GameModes()))
	for _, m := range catalog.GameModes() {
		modes[m] = r.GameModeStats[m]
	}
	r.GameModeStats = modes

	if r.SessionHistory == nil {
		r.SessionHistory = []SessionEntry{}
	}
	if r.DailyActivity == nil {
		r.DailyActivity = []DailyActivity{}
	}
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := r
	out.CategoryPerformance = make(map[catalog.Category]CategoryStats, len(r.CategoryPerformance))
	for k, v := range r.CategoryPerformance {
		out.CategoryPerformance[k] = v
	}
	out.GameModeStats = make(map[catalog.GameMode]ModeStats, len(r.GameModeStats))
	for k, v := range r.GameModeStats {
		out.GameModeStats[k] = v
	}
	out.SessionHistory = append([]SessionEntry{}, r.SessionHistory...)
	out.DailyActivity = append([]DailyActivity{}, r.DailyActivity...)
	return out
}

// RecordAttempt counts one answer. The category bucket is only touched for
// a known category; totals are always updated.
func (r *Record) RecordAttempt(isCorrect bool, category string) {
	r.Normalize()
	r.TotalAttempts++
	if isCorrect {
		r.CorrectAnswers++
	} else {
		r.IncorrectAnswers++
	}

	c := catalog.Category(category)
	if !c.Valid() {
		return
	}
	stats := r.CategoryPerformance[c]
	stats.Attempts++
	if isCorrect {
		stats.Correct++
	}
	r.CategoryPerformance[c] = stats
}

// RecordSession adds a session of the given length in minutes. The mode
// bucket is only touched for a recognized mode; total time and history are
// always updated. Negative durations count as zero.
func (r *Record) RecordSession(gameMode string, minutes float64, at time.Time) SessionEntry {
	r.Normalize()
	if minutes < 0 {
		minutes = 0
	}

	name := gameMode
	if m, ok := catalog.CanonicalMode(gameMode); ok {
		name = string(m)
		stats := r.GameModeStats[m]
		stats.Sessions++
		stats.TimeSpent += minutes
		r.GameModeStats[m] = stats
	}
	r.TimeSpent += minutes

	entry := SessionEntry{GameMode: name, Duration: minutes, Timestamp: at.UTC()}
	r.SessionHistory = append(r.SessionHistory, entry)
	return entry
}

// Decode parses a stored record. Missing buckets are filled.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return NewRecord(), fmt.Errorf("decode analytics: %w", err)
	}
	r.Normalize()
	return r, nil
}

func encode(r Record) ([]byte, error) {
	r.Normalize()
	return json.Marshal(r)
}
