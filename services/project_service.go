package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/lib/geo"
	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for land projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	analysisRepo *repositories.AnalysisRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		analysisRepo: repositories.NewAnalysisRepository(),
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting.
// Admin can see all projects, regular users only see their own.
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"acreage":    true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.UserID,
		filter.IsAdmin,
		filter.Search,
	)
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return response, nil
}

// GetProjectDetail retrieves a project with its analyses.
// Access control: admin can view any project, regular users only their own.
func (s *ProjectService) GetProjectDetail(projectID, userID string, isAdmin bool) (models.Project, error) {
	project, err := s.projectRepo.WithAnalyses(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}
	if !isAdmin && project.UserID != userID {
		return models.Project{}, ErrForbidden
	}
	return project, nil
}

// CreateProject creates a project, deriving acreage from the boundary when
// one is supplied. A boundary with fewer than 3 vertices leaves acreage NULL.
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Status:      models.ProjectDraft,
	}

	if len(req.Boundary) > 0 {
		acreage, err := deriveAcreage(req.Boundary)
		if err != nil {
			return models.Project{}, err
		}
		project.Boundary = req.Boundary
		project.Acreage = acreage
	}

	return s.projectRepo.Create(project)
}

// UpdateProject mutates a project with an optimistic-concurrency check on
// updated_at. Saving a changed boundary recomputes acreage and invalidates
// every analysis computed against the prior boundary.
func (s *ProjectService) UpdateProject(projectID, userID string, isAdmin bool, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}
	if !isAdmin && project.UserID != userID {
		return models.Project{}, ErrForbidden
	}

	expectedUpdatedAt, err := parseRowVersion(req.UpdatedAt)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	boundaryChanged := false
	if len(req.Boundary) > 0 {
		acreage, err := deriveAcreage(req.Boundary)
		if err != nil {
			return models.Project{}, err
		}
		project.Boundary = req.Boundary
		project.Acreage = acreage
		boundaryChanged = true
	}

	if err := s.projectRepo.UpdateIfUnchanged(project, expectedUpdatedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrConflict
		}
		return models.Project{}, err
	}

	if boundaryChanged {
		// Prior analyses describe a boundary that no longer exists.
		if err := s.analysisRepo.DeleteByProjectID(projectID); err != nil {
			log.Printf("Failed to clear stale analyses for project %s: %v", projectID, err)
		}
	}

	return s.projectRepo.FindByID(projectID)
}

// DeleteProject removes a project and everything hanging off it
func (s *ProjectService) DeleteProject(projectID, userID string, isAdmin bool) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !isAdmin && project.UserID != userID {
		return ErrForbidden
	}
	return s.projectRepo.Delete(projectID)
}

// deriveAcreage computes acres from a GeoJSON boundary. A ring that cannot
// enclose area yields a nil acreage, matching the cleared UI state.
func deriveAcreage(boundary []byte) (*float64, error) {
	poly, err := geo.ParseBoundary(boundary)
	if err != nil {
		if errors.Is(err, geo.ErrTooFewVertices) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid boundary: %w", err)
	}
	acres, err := geo.AreaAcres(poly)
	if err != nil {
		if errors.Is(err, geo.ErrTooFewVertices) {
			return nil, nil
		}
		return nil, err
	}
	return &acres, nil
}

// parseRowVersion parses the updatedAt precondition sent by the client
func parseRowVersion(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid updatedAt: %w", err)
	}
	return t, nil
}
