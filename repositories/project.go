package repositories

import (
	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// WithAnalyses loads a project with its analyses, newest first
func (r *ProjectRepository) WithAnalyses(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Analyses", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// UpdateIfUnchanged saves the project only when the stored row still carries
// the expected updated_at. Returns gorm.ErrRecordNotFound when the
// precondition fails so callers can report a conflict.
func (r *ProjectRepository) UpdateIfUnchanged(project models.Project, expectedUpdatedAt interface{}) error {
	result := database.DB.Model(&models.Project{}).
		Where("id = ? AND updated_at = ?", project.ID, expectedUpdatedAt).
		Select("name", "description", "location", "boundary", "acreage", "status").
		Updates(&project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a project and its analyses (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Analysis{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// CountByUserID counts projects belonging to a user
func (r *ProjectRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Where("user_id = ?", userID).Count(&count)
	return count, result.Error
}

// Count counts all projects
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	userID string,
	isAdmin bool,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	// Non-admins only ever see their own rows
	if !isAdmin && userID != "" {
		db = db.Where("user_id = ?", userID)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name LIKE ? OR description LIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
