package services

import (
	"errors"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"gorm.io/gorm"
)

// GetProfile retrieves the business profile for a user, creating an empty one
// for accounts that predate profiles.
func GetProfile(userID string) (models.Profile, error) {
	repo := repositories.NewUserRepository()
	profile, err := repo.FindProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user, err := repo.FindByID(userID)
			if err != nil {
				return models.Profile{}, err
			}
			profile = models.Profile{ID: user.ID, Email: user.Email}
			if err := repo.SaveProfile(profile); err != nil {
				return models.Profile{}, err
			}
			return profile, nil
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile saves the business details shown on quotes and invoices
func UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.Profile, error) {
	profile, err := GetProfile(userID)
	if err != nil {
		return models.Profile{}, err
	}
	if req.BusinessName != "" {
		profile.BusinessName = req.BusinessName
	}
	if req.Email != "" {
		profile.Email = req.Email
	}
	repo := repositories.NewUserRepository()
	if err := repo.SaveProfile(profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
