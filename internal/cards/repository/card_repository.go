package repository

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/architect/soundlearn/internal/cards/models"
	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/common/errors"
)

// GetUserCards returns a user's cards, newest first
func GetUserCards(userID string) ([]models.CustomCard, error) {
	cards := []models.CustomCard{}
	result := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&cards)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch cards", result.Error.Error())
	}
	return cards, nil
}

// GetPublicCards returns shared cards, most used first
func GetPublicCards() ([]models.CustomCard, error) {
	cards := []models.CustomCard{}
	result := database.DB.Where("is_public = ?", true).Order("usage_count DESC").Find(&cards)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch public cards", result.Error.Error())
	}
	return cards, nil
}

// GetCard retrieves a card by id
func GetCard(id string) (*models.CustomCard, error) {
	var card models.CustomCard
	result := database.DB.First(&card, "id = ?", id)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Card")
		}
		return nil, errors.Internal("failed to fetch card", result.Error.Error())
	}
	return &card, nil
}

// CreateCard inserts a card
func CreateCard(card *models.CustomCard) error {
	result := database.DB.Create(card)
	if result.Error != nil {
		return errors.Internal("failed to create card", result.Error.Error())
	}
	return nil
}

// UpdateCard writes the given columns of a card
func UpdateCard(card *models.CustomCard, fields map[string]interface{}) error {
	result := database.DB.Model(card).Updates(fields)
	if result.Error != nil {
		return errors.Internal("failed to update card", result.Error.Error())
	}
	return nil
}

// IncrementUsage adds one to a card's usage count in a single statement
func IncrementUsage(id string) error {
	result := database.DB.Model(&models.CustomCard{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1))
	if result.Error != nil {
		return errors.Internal("failed to update card usage", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Card")
	}
	return nil
}

// DeleteCard removes a card by id
func DeleteCard(id string) error {
	result := database.DB.Delete(&models.CustomCard{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("failed to delete card", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Card")
	}
	return nil
}
