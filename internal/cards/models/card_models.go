package models

import (
	"github.com/architect/soundlearn/internal/common/database"
)

const DefaultCategory = "custom"

// CustomCard is a user-made sound card, optionally shared publicly.
type CustomCard struct {
	database.Document
	UserID      string `gorm:"type:varchar(36);not null;index" json:"userId"`
	Name        string `gorm:"not null" json:"name"`
	Emoji       string `gorm:"not null" json:"emoji"`
	Description string `gorm:"not null" json:"description"`
	Color       string `gorm:"not null" json:"color"`
	SoundID     string `gorm:"not null" json:"soundId"`
	Category    string `gorm:"not null" json:"category"`
	IsPublic    bool   `gorm:"index" json:"isPublic"`
	UsageCount  int    `gorm:"not null;index" json:"usageCount"`
}

// Request/Response types
type CreateCardRequest struct {
	UserID      string `json:"userId" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Emoji       string `json:"emoji" binding:"required"`
	Description string `json:"description" binding:"required"`
	Color       string `json:"color" binding:"required"`
	SoundID     string `json:"soundId" binding:"required"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdateCardRequest carries the fields to change. Usage is only changed
// through the use endpoint.
type UpdateCardRequest struct {
	Name        *string `json:"name"`
	Emoji       *string `json:"emoji"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	SoundID     *string `json:"soundId"`
	Category    *string `json:"category"`
	IsPublic    *bool   `json:"isPublic"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
