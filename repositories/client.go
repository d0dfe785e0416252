package repositories

import (
	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
)

// ClientRepository handles database operations for clients
type ClientRepository struct{}

// NewClientRepository creates a new client repository instance
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// FindByID retrieves a client by its ID
func (r *ClientRepository) FindByID(id string) (models.Client, error) {
	var client models.Client
	result := database.DB.First(&client, "id = ?", id)
	return client, result.Error
}

// FindByUserID retrieves all clients belonging to a landscaper
func (r *ClientRepository) FindByUserID(userID string) ([]models.Client, error) {
	var clients []models.Client
	result := database.DB.Where("user_id = ?", userID).Order("client_name ASC").Find(&clients)
	return clients, result.Error
}

// FindByPortalUserID retrieves the client record linked to a portal login
func (r *ClientRepository) FindByPortalUserID(portalUserID string) (models.Client, error) {
	var client models.Client
	result := database.DB.First(&client, "portal_user_id = ?", portalUserID)
	return client, result.Error
}

// Create inserts a new client into the database
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	result := database.DB.Create(&client)
	return client, result.Error
}

// Update modifies an existing client
func (r *ClientRepository) Update(client models.Client) error {
	result := database.DB.Save(&client)
	return result.Error
}

// Delete removes a client from the database (soft delete)
func (r *ClientRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Client{}, "id = ?", id)
	return result.Error
}
