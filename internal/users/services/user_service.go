package services

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/common/errors"
	"github.com/architect/soundlearn/internal/common/validation"
	"github.com/architect/soundlearn/internal/progress"
	"github.com/architect/soundlearn/internal/users/models"
	"github.com/architect/soundlearn/internal/users/repository"
	"github.com/architect/soundlearn/pkg/logger"
)

type newUser struct {
	ChildName   string `validate:"required,max=100"`
	Age         *int   `validate:"omitempty,min=1,max=18"`
	ParentEmail string `validate:"required,email"`
}

func checkID(id string) error {
	if !database.ValidID(id) {
		return errors.BadRequest("invalid user id")
	}
	return nil
}

// ListUsers returns all users by recent activity
func ListUsers() ([]models.User, error) {
	return repository.ListUsers()
}

// GetUser fetches one user
func GetUser(id string) (*models.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return repository.GetUser(id)
}

// CreateUser normalizes and stores a new profile. Progress and settings
// start from defaults with any given fields merged in.
func CreateUser(req models.CreateUserRequest) (*models.User, error) {
	in := newUser{
		ChildName:   strings.TrimSpace(req.ChildName),
		Age:         req.Age,
		ParentEmail: strings.ToLower(strings.TrimSpace(req.ParentEmail)),
	}
	if appErr := validation.FromList(validation.Validate(in)); appErr != nil {
		return nil, appErr
	}

	counters := progress.Default().Counters
	if req.Progress != nil {
		if err := counters.Apply(*req.Progress); err != nil {
			return nil, errors.Validation("invalid progress", err.Error())
		}
	}
	settings := progress.DefaultSettings()
	if req.Settings != nil {
		if err := settings.Apply(*req.Settings); err != nil {
			return nil, errors.Validation("invalid settings", err.Error())
		}
	}

	user := &models.User{
		ChildName:   in.ChildName,
		Age:         in.Age,
		ParentEmail: in.ParentEmail,
		Progress:    datatypes.NewJSONType(counters),
		Settings:    datatypes.NewJSONType(settings),
	}
	if err := repository.CreateUser(user); err != nil {
		return nil, err
	}
	logger.Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

// UpdateProgress merges the given fields into the user's progress
func UpdateProgress(id string, patch progress.CountersPatch) (*models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}
	counters := user.Progress.Data()
	if err := counters.Apply(patch); err != nil {
		return nil, errors.Validation("invalid progress", err.Error())
	}
	user.Progress = datatypes.NewJSONType(counters)
	if err := repository.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateSettings merges the given fields into the user's settings
func UpdateSettings(id string, patch progress.SettingsPatch) (*models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}
	settings := user.Settings.Data()
	if err := settings.Apply(patch); err != nil {
		return nil, errors.Validation("invalid settings", err.Error())
	}
	user.Settings = datatypes.NewJSONType(settings)
	if err := repository.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a profile
func DeleteUser(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := repository.DeleteUser(id); err != nil {
		return err
	}
	logger.Info("user deleted", zap.String("user_id", id))
	return nil
}
