package repositories

import (
	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
	"gorm.io/gorm"
)

// QuoteRepository handles database operations for quotes
type QuoteRepository struct{}

// NewQuoteRepository creates a new quote repository instance
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

// FindByID retrieves a quote by its ID
func (r *QuoteRepository) FindByID(id string) (models.Quote, error) {
	var quote models.Quote
	result := database.DB.First(&quote, "id = ?", id)
	return quote, result.Error
}

// Create inserts a new quote into the database
func (r *QuoteRepository) Create(quote models.Quote) (models.Quote, error) {
	result := database.DB.Create(&quote)
	return quote, result.Error
}

// UpdateIfUnchanged saves the quote only when the stored row still carries
// the expected updated_at.
func (r *QuoteRepository) UpdateIfUnchanged(quote models.Quote, expectedUpdatedAt interface{}) error {
	result := database.DB.Model(&models.Quote{}).
		Where("id = ? AND updated_at = ?", quote.ID, expectedUpdatedAt).
		Select("job_title", "job_description", "labor_cost", "equipment_cost",
			"material_cost", "total", "completion_time", "notes", "status").
		Updates(&quote)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a quote from the database (soft delete)
func (r *QuoteRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Quote{}, "id = ?", id)
	return result.Error
}

// Count counts all quotes
func (r *QuoteRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Quote{}).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves quotes scoped to a user, newest first
func (r *QuoteRepository) FindWithPagination(page, pageSize int, userID string, status string) ([]models.Quote, int64, error) {
	var quotes []models.Quote
	var totalCount int64

	db := database.DB.Model(&models.Quote{}).Where("user_id = ?", userID)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at DESC").Limit(pageSize).Offset(offset).Preload("Client").Find(&quotes).Error; err != nil {
		return nil, 0, err
	}

	return quotes, totalCount, nil
}

// FindByClientID retrieves quotes for one client, used by the client portal
func (r *QuoteRepository) FindByClientID(clientID string) ([]models.Quote, error) {
	var quotes []models.Quote
	result := database.DB.Where("client_id = ?", clientID).Order("created_at DESC").Find(&quotes)
	return quotes, result.Error
}
