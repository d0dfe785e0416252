package repositories

import (
	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
)

// AnalysisRepository handles database operations for land analyses
type AnalysisRepository struct{}

// NewAnalysisRepository creates a new analysis repository instance
func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{}
}

// Create inserts a new analysis into the database
func (r *AnalysisRepository) Create(analysis models.Analysis) (models.Analysis, error) {
	result := database.DB.Create(&analysis)
	return analysis, result.Error
}

// FindByProjectID retrieves all analyses for a project, newest first
func (r *AnalysisRepository) FindByProjectID(projectID string) ([]models.Analysis, error) {
	var analyses []models.Analysis
	result := database.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&analyses)
	return analyses, result.Error
}

// Latest retrieves the most recent analysis for a project
func (r *AnalysisRepository) Latest(projectID string) (models.Analysis, error) {
	var analysis models.Analysis
	result := database.DB.Where("project_id = ?", projectID).Order("created_at DESC").First(&analysis)
	return analysis, result.Error
}

// DeleteByProjectID removes every analysis tied to a project's boundary.
// Called when the boundary changes, since prior results no longer apply.
func (r *AnalysisRepository) DeleteByProjectID(projectID string) error {
	result := database.DB.Where("project_id = ?", projectID).Delete(&models.Analysis{})
	return result.Error
}
