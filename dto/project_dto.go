package dto

import (
	"encoding/json"

	"github.com/landpro-backend/models"
)

// CreateProjectRequest creates a land project. Boundary is optional at
// creation; acreage is always derived server-side, never trusted from the
// client.
type CreateProjectRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Boundary    json.RawMessage `json:"boundary"`
}

// UpdateProjectRequest mutates a project with an optimistic-concurrency
// precondition on UpdatedAt.
type UpdateProjectRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Location    *string               `json:"location"`
	Boundary    json.RawMessage       `json:"boundary"`
	Status      *models.ProjectStatus `json:"status" binding:"omitempty,oneof=draft active completed"`
	UpdatedAt   string                `json:"updatedAt" binding:"required"`
}

// ProjectFilter drives paginated project listing
type ProjectFilter struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	UserID    string
	IsAdmin   bool
	Search    string
}

// ProjectListResponse is a paginated project listing
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}
