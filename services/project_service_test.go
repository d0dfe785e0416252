package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/landpro-backend/database"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/models"
)

// oneAcreBoundary returns a GeoJSON square enclosing roughly one acre.
func oneAcreBoundary() json.RawMessage {
	side := math.Sqrt(4046.86) / 111319.49
	return json.RawMessage(fmt.Sprintf(
		`{"type":"Polygon","coordinates":[[[0,0],[%g,0],[%g,%g],[0,%g],[0,0]]]}`,
		side, side, side, side))
}

func TestCreateProjectDerivesAcreage(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewProjectService()

	project, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Name:     "North Field",
		Location: "Crawford County",
		Boundary: oneAcreBoundary(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Acreage == nil {
		t.Fatal("expected acreage derived from boundary")
	}
	if math.Abs(*project.Acreage-1.00) > 0.01 {
		t.Fatalf("expected ~1.00 acres, got %v", *project.Acreage)
	}
	if project.Status != models.ProjectDraft {
		t.Fatalf("expected draft status, got %s", project.Status)
	}
}

func TestCreateProjectDegenerateBoundary(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewProjectService()

	// Two distinct vertices cannot enclose area; the boundary is kept but
	// acreage stays unset.
	boundary := json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[0.001,0],[0,0]]]}`)
	project, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Name:     "Line",
		Boundary: boundary,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Acreage != nil {
		t.Fatalf("expected nil acreage for a degenerate boundary, got %v", *project.Acreage)
	}
	if len(project.Boundary) == 0 {
		t.Fatal("expected boundary stored as drawn")
	}
}

func TestCreateProjectRejectsInvalidBoundary(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewProjectService()

	_, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Name:     "Bad",
		Boundary: json.RawMessage(`{"type":"Point","coordinates":[0,0]}`),
	})
	if err == nil {
		t.Fatal("expected error for non-polygon boundary")
	}
}

func TestUpdateProjectBoundaryClearsAnalyses(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewProjectService()

	project, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Name:     "North Field",
		Boundary: oneAcreBoundary(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	analysis := models.Analysis{ProjectID: project.ID, Intent: "clear", Result: []byte(`{"version":1}`)}
	if err := database.DB.Create(&analysis).Error; err != nil {
		t.Fatalf("seed analysis: %v", err)
	}

	// A rename leaves the stored analyses alone.
	name := "North Field (rev)"
	project, err = svc.UpdateProject(project.ID, user.ID, false, dto.UpdateProjectRequest{
		Name:      &name,
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	var count int64
	database.DB.Model(&models.Analysis{}).Where("project_id = ?", project.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected analyses kept on rename, got %d", count)
	}

	// Saving a new boundary invalidates every analysis of the old one.
	bigger := json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[0.002,0],[0.002,0.002],[0,0.002],[0,0]]]}`)
	project, err = svc.UpdateProject(project.ID, user.ID, false, dto.UpdateProjectRequest{
		Boundary:  bigger,
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		t.Fatalf("boundary update: %v", err)
	}
	database.DB.Model(&models.Analysis{}).Where("project_id = ?", project.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected analyses cleared on boundary change, got %d", count)
	}
	if project.Acreage == nil || *project.Acreage <= 1 {
		t.Fatalf("expected acreage recomputed from the new boundary, got %v", project.Acreage)
	}
}

func TestUpdateProjectStaleVersionConflicts(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewProjectService()

	project, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{Name: "North Field"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Renamed"
	stale := project.UpdatedAt.Add(-time.Minute).Format(time.RFC3339Nano)
	_, err = svc.UpdateProject(project.ID, user.ID, false, dto.UpdateProjectRequest{
		Name:      &name,
		UpdatedAt: stale,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for stale version, got %v", err)
	}
}

func TestListProjectsScoping(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "owner@example.com")
	other := seedUser(t, "other@example.com")
	svc := NewProjectService()

	if _, err := svc.CreateProject(owner.ID, dto.CreateProjectRequest{Name: "Mine"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateProject(other.ID, dto.CreateProjectRequest{Name: "Theirs"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.ListProjects(dto.ProjectFilter{UserID: owner.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if mine.TotalCount != 1 || mine.Projects[0].Name != "Mine" {
		t.Fatalf("expected only the caller's project, got %+v", mine.Projects)
	}

	all, err := svc.ListProjects(dto.ProjectFilter{UserID: owner.ID, IsAdmin: true})
	if err != nil {
		t.Fatalf("list as admin: %v", err)
	}
	if all.TotalCount != 2 {
		t.Fatalf("expected admin to see every project, got %d", all.TotalCount)
	}
}

func TestDeleteProjectRemovesAnalyses(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewProjectService()

	project, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{Name: "Doomed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	analysis := models.Analysis{ProjectID: project.ID, Result: []byte(`{}`)}
	if err := database.DB.Create(&analysis).Error; err != nil {
		t.Fatalf("seed analysis: %v", err)
	}

	if err := svc.DeleteProject(project.ID, user.ID, false); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetProjectDetail(project.ID, user.ID, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	var count int64
	database.DB.Model(&models.Analysis{}).Where("project_id = ?", project.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected analyses soft-deleted with the project, got %d", count)
	}
}
