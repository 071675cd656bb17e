package repository

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/common/errors"
	"github.com/architect/soundlearn/internal/users/models"
)

// ListUsers returns every user, most recently active first
func ListUsers() ([]models.User, error) {
	var users []models.User
	result := database.DB.Order("last_active DESC").Find(&users)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch users", result.Error.Error())
	}
	return users, nil
}

// GetUser retrieves a user by id
func GetUser(id string) (*models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("User")
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}
	return &user, nil
}

// CreateUser inserts a new user
func CreateUser(user *models.User) error {
	result := database.DB.Create(user)
	if result.Error != nil {
		return errors.Internal("failed to create user", result.Error.Error())
	}
	return nil
}

// SaveUser writes every column of user
func SaveUser(user *models.User) error {
	result := database.DB.Save(user)
	if result.Error != nil {
		return errors.Internal("failed to update user", result.Error.Error())
	}
	return nil
}

// DeleteUser removes a user by id
func DeleteUser(id string) error {
	result := database.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("failed to delete user", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("User")
	}
	return nil
}
