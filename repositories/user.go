package repositories

import (
	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
)

// UserRepository handles database operations for users and profiles
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindAll retrieves all users, used by the admin panel
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Order("created_at DESC").Find(&users)
	return users, result.Error
}

// Count counts all users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Count(&count)
	return count, result.Error
}

// FindProfile retrieves the business profile for a user
func (r *UserRepository) FindProfile(userID string) (models.Profile, error) {
	var profile models.Profile
	result := database.DB.First(&profile, "id = ?", userID)
	return profile, result.Error
}

// SaveProfile upserts the business profile for a user
func (r *UserRepository) SaveProfile(profile models.Profile) error {
	result := database.DB.Save(&profile)
	return result.Error
}
