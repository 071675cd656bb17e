package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/architect/soundlearn/internal/cards/models"
	"github.com/architect/soundlearn/internal/cards/repository"
	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/common/errors"
	"github.com/architect/soundlearn/internal/common/metrics"
	"github.com/architect/soundlearn/pkg/logger"
)

func checkID(id, what string) error {
	if !database.ValidID(id) {
		return errors.BadRequest("invalid " + what + " id")
	}
	return nil
}

// GetUserCards lists a user's cards
func GetUserCards(userID string) ([]models.CustomCard, error) {
	if err := checkID(userID, "user"); err != nil {
		return nil, err
	}
	return repository.GetUserCards(userID)
}

// GetPublicCards lists every shared card
func GetPublicCards() ([]models.CustomCard, error) {
	return repository.GetPublicCards()
}

// CreateCard stores a new card with trimmed text fields
func CreateCard(req models.CreateCardRequest) (*models.CustomCard, error) {
	card := &models.CustomCard{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Emoji:       strings.TrimSpace(req.Emoji),
		Description: strings.TrimSpace(req.Description),
		Color:       strings.TrimSpace(req.Color),
		SoundID:     strings.TrimSpace(req.SoundID),
		Category:    strings.TrimSpace(req.Category),
		IsPublic:    req.IsPublic,
	}
	if card.Category == "" {
		card.Category = models.DefaultCategory
	}
	if err := requireText(card.Name, card.Emoji, card.Description, card.Color, card.SoundID); err != nil {
		return nil, err
	}

	if err := repository.CreateCard(card); err != nil {
		return nil, err
	}
	logger.Info("card created", zap.String("card_id", card.ID), zap.String("user_id", card.UserID))
	return card, nil
}

// UpdateCard applies the non-nil request fields
func UpdateCard(id string, req models.UpdateCardRequest) (*models.CustomCard, error) {
	if err := checkID(id, "card"); err != nil {
		return nil, err
	}
	card, err := repository.GetCard(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	text := map[string]*string{
		"name":        req.Name,
		"emoji":       req.Emoji,
		"description": req.Description,
		"color":       req.Color,
		"sound_id":    req.SoundID,
		"category":    req.Category,
	}
	for column, v := range text {
		if v == nil {
			continue
		}
		s := strings.TrimSpace(*v)
		if s == "" {
			return nil, errors.Validation("validation failed", column+" must not be empty")
		}
		fields[column] = s
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if len(fields) == 0 {
		return card, nil
	}

	if err := repository.UpdateCard(card, fields); err != nil {
		return nil, err
	}
	return repository.GetCard(id)
}

// UseCard records one use of a card
func UseCard(id string) (*models.CustomCard, error) {
	if err := checkID(id, "card"); err != nil {
		return nil, err
	}
	if err := repository.IncrementUsage(id); err != nil {
		return nil, err
	}
	metrics.Default.CardUses.Inc()
	return repository.GetCard(id)
}

// DeleteCard removes a card
func DeleteCard(id string) error {
	if err := checkID(id, "card"); err != nil {
		return err
	}
	return repository.DeleteCard(id)
}

func requireText(values ...string) error {
	for _, v := range values {
		if v == "" {
			return errors.Validation("validation failed", "text fields must not be empty")
		}
	}
	return nil
}
