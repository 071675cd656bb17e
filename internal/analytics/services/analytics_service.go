package services

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/analytics"
	"github.com/architect/soundlearn/internal/analytics/models"
	"github.com/architect/soundlearn/internal/analytics/repository"
	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/common/errors"
	"github.com/architect/soundlearn/internal/common/metrics"
	"github.com/architect/soundlearn/pkg/logger"
)

// Clock stamps session history entries.
var Clock clockwork.Clock = clockwork.NewRealClock()

func checkUserID(id string) error {
	if !database.ValidID(id) {
		return errors.BadRequest("invalid user id")
	}
	return nil
}

// GetAnalytics returns the user's document, creating it if needed
func GetAnalytics(userID string) (*models.Response, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}
	doc, err := repository.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	resp := doc.Response()
	return &resp, nil
}

// TrackAttempt counts one answer for the user
func TrackAttempt(req models.TrackAttemptRequest) (*models.Response, error) {
	doc, err := repository.GetOrCreate(req.UserID)
	if err != nil {
		return nil, err
	}

	rec := doc.Record()
	rec.RecordAttempt(*req.IsCorrect, req.Category)
	doc.SetRecord(rec)
	if err := repository.SaveAnalytics(doc); err != nil {
		return nil, err
	}

	metrics.Default.ObserveAttempt(*req.IsCorrect)
	resp := doc.Response()
	return &resp, nil
}

// TrackSession adds one play session for the user
func TrackSession(req models.TrackSessionRequest) (*models.Response, error) {
	doc, err := repository.GetOrCreate(req.UserID)
	if err != nil {
		return nil, err
	}

	rec := doc.Record()
	entry := rec.RecordSession(req.GameMode, *req.DurationMinutes, Clock.Now())
	doc.SetRecord(rec)
	if err := repository.SaveAnalytics(doc); err != nil {
		return nil, err
	}

	label := "other"
	if m, ok := catalog.CanonicalMode(req.GameMode); ok {
		label = string(m)
	}
	metrics.Default.ObserveSession(label)
	logger.Debug("session tracked",
		zap.String("user_id", req.UserID),
		zap.String("mode", entry.GameMode),
		zap.Float64("minutes", entry.Duration),
	)
	resp := doc.Response()
	return &resp, nil
}

// record loads the user's record without creating a document. A missing
// document reads as an empty record.
func record(userID string) (analytics.Record, error) {
	if err := checkUserID(userID); err != nil {
		return analytics.Record{}, err
	}
	doc, err := repository.FindByUserID(userID)
	if err != nil {
		return analytics.Record{}, err
	}
	if doc == nil {
		return analytics.NewRecord(), nil
	}
	return doc.Record(), nil
}

// GetSummary derives the headline metrics
func GetSummary(userID string) (*analytics.Summary, error) {
	rec, err := record(userID)
	if err != nil {
		return nil, err
	}
	s := analytics.Summarize(rec)
	return &s, nil
}

// GetBreakdown derives the per-category and per-mode views
func GetBreakdown(userID string) (*analytics.Breakdown, error) {
	rec, err := record(userID)
	if err != nil {
		return nil, err
	}
	b := analytics.NewBreakdown(rec)
	return &b, nil
}

// ResetAnalytics deletes the user's document. Resetting a user with no
// document succeeds.
func ResetAnalytics(userID string) error {
	if err := checkUserID(userID); err != nil {
		return err
	}
	existed, err := repository.DeleteByUserID(userID)
	if err != nil {
		return err
	}
	logger.Info("analytics reset", zap.String("user_id", userID), zap.Bool("existed", existed))
	return nil
}
