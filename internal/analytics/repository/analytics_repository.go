package repository

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/architect/soundlearn/internal/analytics"
	"github.com/architect/soundlearn/internal/analytics/models"
	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/common/errors"
)

// FindByUserID returns the user's analytics document, or nil if there is none
func FindByUserID(userID string) (*models.Analytics, error) {
	var doc models.Analytics
	result := database.DB.Where("user_id = ?", userID).First(&doc)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch analytics", result.Error.Error())
	}
	return &doc, nil
}

// GetOrCreate returns the user's document, creating an empty one if absent
func GetOrCreate(userID string) (*models.Analytics, error) {
	doc, err := FindByUserID(userID)
	if err != nil || doc != nil {
		return doc, err
	}

	doc = &models.Analytics{UserID: userID}
	doc.SetRecord(analytics.NewRecord())
	if result := database.DB.Create(doc); result.Error != nil {
		return nil, errors.Internal("failed to create analytics", result.Error.Error())
	}
	return doc, nil
}

// SaveAnalytics writes the document back
func SaveAnalytics(doc *models.Analytics) error {
	result := database.DB.Save(doc)
	if result.Error != nil {
		return errors.Internal("failed to update analytics", result.Error.Error())
	}
	return nil
}

// DeleteByUserID removes the user's document and reports whether one existed
func DeleteByUserID(userID string) (bool, error) {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.Analytics{})
	if result.Error != nil {
		return false, errors.Internal("failed to delete analytics", result.Error.Error())
	}
	return result.RowsAffected > 0, nil
}
