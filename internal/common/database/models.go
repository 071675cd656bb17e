package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document provides the id and timestamps shared by every collection.
// Ids are uuid strings assigned on first insert.
type Document struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an id if none was set.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// ValidID reports whether id has the shape of a document id.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
