package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/architect/soundlearn/internal/analytics"
	"github.com/architect/soundlearn/internal/common/database"
)

// Analytics is the per-user analytics document. The counters, buckets and
// history live in one JSON column.
type Analytics struct {
	database.Document
	UserID string                               `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	Data   datatypes.JSONType[analytics.Record] `json:"-"`
}

// TableName keeps the collection name singular like the other documents.
func (Analytics) TableName() string { return "analytics" }

// Record returns the stored record with every bucket present.
func (a *Analytics) Record() analytics.Record {
	r := a.Data.Data().Clone()
	r.Normalize()
	return r
}

func (a *Analytics) SetRecord(r analytics.Record) {
	a.Data = datatypes.NewJSONType(r)
}

// Response flattens the record fields next to the document fields.
type Response struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	analytics.Record
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Analytics) Response() Response {
	return Response{
		ID:        a.ID,
		UserID:    a.UserID,
		Record:    a.Record(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// Request types
type TrackAttemptRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	IsCorrect *bool  `json:"isCorrect" binding:"required"`
	Category  string `json:"category"`
	GameMode  string `json:"gameMode"`
}

type TrackSessionRequest struct {
	UserID          string   `json:"userId" binding:"required,uuid"`
	GameMode        string   `json:"gameMode" binding:"required"`
	DurationMinutes *float64 `json:"durationMinutes" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
