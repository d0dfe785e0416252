package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/lib/geo"
	"github.com/landpro-backend/lib/llm"
	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

const analysisSystemPrompt = "You are an expert land analysis AI for landscaping professionals. " +
	"Always respond with valid JSON only, no markdown or extra text."

// Intent-specific emphasis appended to the analysis prompt. Keys match the
// picker in the dashboard: build, clear, farm, evaluate.
var intentEmphasis = map[string]string{
	"build": "The owner wants to BUILD on this land. Emphasize construction " +
		"suitability: site preparation, grading needs, drainage around foundations, " +
		"access for heavy equipment, and clearing required before development.",
	"clear": "The owner wants to CLEAR this land. Emphasize brush clearing, " +
		"grading and site prep: vegetation removal methods, debris hauling, " +
		"mulching versus burning, and the equipment passes required.",
	"farm": "The owner wants to FARM this land. Emphasize soil and terrain for " +
		"agriculture: likely soil quality, irrigation and drainage, field layout, " +
		"and what preparation the ground needs before planting.",
	"evaluate": "The owner wants a GENERAL EVALUATION of this land. Emphasize " +
		"overall condition and valuation factors: usable area, maintenance burden, " +
		"notable risks, and what work would most improve the parcel.",
}

// AnalysisService handles AI land analysis
type AnalysisService struct {
	analysisRepo *repositories.AnalysisRepository
	projectRepo  *repositories.ProjectRepository
	ai           *llm.Client
}

// NewAnalysisService creates a new analysis service instance
func NewAnalysisService(ai *llm.Client) *AnalysisService {
	return &AnalysisService{
		analysisRepo: repositories.NewAnalysisRepository(),
		projectRepo:  repositories.NewProjectRepository(),
		ai:           ai,
	}
}

// AnalyzeLand runs one analysis over a drawn boundary. The reply is parsed
// into the typed result and rejected on shape mismatch; when the request
// names a project the validated result is persisted against it. No caching:
// the same boundary re-triggers a full model call every time.
func (s *AnalysisService) AnalyzeLand(ctx context.Context, userID string, isAdmin bool, req dto.AnalyzeLandRequest) (*models.AnalysisResult, error) {
	poly, err := geo.ParseBoundary(req.Boundary)
	if err != nil {
		return nil, fmt.Errorf("invalid boundary: %w", err)
	}

	log.Println("Calling AI gateway for land analysis...")

	content, err := s.ai.Complete(ctx, analysisSystemPrompt, buildAnalysisPrompt(poly, req), llm.Options{})
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := llm.DecodeJSON(content, &result); err != nil {
		log.Printf("Failed to parse AI analysis reply: %v", err)
		return nil, err
	}
	if err := result.Validate(); err != nil {
		// Parseable JSON in the wrong shape is the same failure class as
		// unparseable output: the model's reply, not the transport.
		return nil, fmt.Errorf("%w: %v", llm.ErrMalformedReply, err)
	}
	result.Version = models.AnalysisResultVersion

	if req.ProjectID != nil {
		if err := s.saveAnalysis(*req.ProjectID, userID, isAdmin, req.Intent, &result); err != nil {
			return nil, err
		}
	}

	log.Println("Land analysis completed successfully")
	return &result, nil
}

// ListAnalyses retrieves the stored analyses for a project, newest first
func (s *AnalysisService) ListAnalyses(projectID, userID string, isAdmin bool) ([]models.Analysis, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !isAdmin && project.UserID != userID {
		return nil, ErrForbidden
	}
	return s.analysisRepo.FindByProjectID(projectID)
}

// LatestAnalysis retrieves the newest stored analysis for a project, the one
// that describes its current boundary.
func (s *AnalysisService) LatestAnalysis(projectID, userID string, isAdmin bool) (models.Analysis, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Analysis{}, ErrNotFound
	}
	if !isAdmin && project.UserID != userID {
		return models.Analysis{}, ErrForbidden
	}
	analysis, err := s.analysisRepo.Latest(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Analysis{}, ErrNotFound
		}
		return models.Analysis{}, err
	}
	return analysis, nil
}

func (s *AnalysisService) saveAnalysis(projectID, userID string, isAdmin bool, intent string, result *models.AnalysisResult) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return ErrNotFound
	}
	if !isAdmin && project.UserID != userID {
		return ErrForbidden
	}

	blob, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = s.analysisRepo.Create(models.Analysis{
		ProjectID: projectID,
		Intent:    intent,
		Result:    blob,
	})
	return err
}

func buildAnalysisPrompt(poly orb.Polygon, req dto.AnalyzeLandRequest) string {
	centroid := geo.Centroid(poly)
	vertices := len(poly[0]) - 1

	location := ""
	if req.Location != "" {
		location = fmt.Sprintf("- Address/Location: %s\n", req.Location)
	}

	prompt := fmt.Sprintf(`You are an AI land analysis expert for landscaping professionals. Analyze this land parcel and provide detailed recommendations.

Land Details:
- Area: %g acres (%.0f square meters)
- Location coordinates: %.4f°N, %.4f°W
- Polygon vertices: %d points
%s
Based on typical land characteristics for this region and size, provide a comprehensive analysis in the following JSON format:

{
  "vegetation": {
    "type": "string describing likely vegetation type (e.g., mixed grass, wooded, brush)",
    "density": "low/medium/high",
    "recommendations": ["array of vegetation management recommendations"]
  },
  "terrain": {
    "type": "string describing likely terrain (e.g., flat, rolling hills, steep)",
    "slope_estimate": "percentage range estimate",
    "drainage": "good/moderate/poor",
    "recommendations": ["array of terrain-related recommendations"]
  },
  "equipment": {
    "recommended": ["array of recommended equipment types"],
    "considerations": ["array of equipment considerations based on terrain/vegetation"]
  },
  "labor": {
    "estimated_crew_size": number,
    "estimated_hours": number,
    "difficulty": "easy/moderate/challenging"
  },
  "hazards": ["array of potential hazards to watch for"],
  "cost_factors": {
    "base_rate_per_acre": number,
    "estimated_total": number,
    "factors_affecting_cost": ["array of cost factors"]
  },
  "summary": "2-3 sentence summary of the analysis"
}

Provide realistic estimates based on the acreage and typical conditions. Be specific and actionable in recommendations.`,
		req.Acreage, req.Acreage*geo.SquareMetersPerAcre,
		centroid[1], math.Abs(centroid[0]),
		vertices, location)

	if emphasis, ok := intentEmphasis[req.Intent]; ok {
		prompt += "\n\n" + emphasis
	}
	return prompt
}
