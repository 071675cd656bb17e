package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/progress"
)

// Now stamps lastActive. Tests replace it.
var Now = time.Now

// User is a child profile with its parent contact, rewards and settings.
type User struct {
	database.Document
	ChildName   string                                 `gorm:"not null" json:"childName"`
	Age         *int                                   `json:"age,omitempty"`
	ParentEmail string                                 `gorm:"not null;index" json:"parentEmail"`
	Progress    datatypes.JSONType[progress.Counters] `json:"progress"`
	Settings    datatypes.JSONType[progress.Settings] `json:"settings"`
	LastActive  time.Time                              `gorm:"index" json:"lastActive"`
}

// BeforeSave refreshes lastActive on every write.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.LastActive = Now()
	return nil
}

// Request/Response types
type CreateUserRequest struct {
	ChildName   string                  `json:"childName" binding:"required"`
	Age         *int                    `json:"age" binding:"omitempty,min=1,max=18"`
	ParentEmail string                  `json:"parentEmail" binding:"required"`
	Progress    *progress.CountersPatch `json:"progress"`
	Settings    *progress.SettingsPatch `json:"settings"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
