package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one stored blob in the profile_entries table.
type Entry struct {
	Profile   string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"primaryKey;column:entry_key;size:128"`
	Value     []byte
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "profile_entries" }

// GormStore keeps the blobs of one profile in a SQL table, so several local
// profiles can share a database file.
type GormStore struct {
	db      *gorm.DB
	profile string
}

// NewGormStore migrates the entries table and scopes the store to profile.
func NewGormStore(db *gorm.DB, profile string) (*GormStore, error) {
	if profile == "" {
		profile = "default"
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("storage: migrate entries: %w", err)
	}
	return &GormStore{db: db, profile: profile}, nil
}

func (g *GormStore) Get(key string) ([]byte, error) {
	var e Entry
	err := g.db.Where("profile = ? AND entry_key = ?", g.profile, key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return e.Value, nil
}

func (g *GormStore) Set(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	e := Entry{Profile: g.profile, Key: key, Value: value}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}

func (g *GormStore) Delete(key string) error {
	err := g.db.Where("profile = ? AND entry_key = ?", g.profile, key).Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
