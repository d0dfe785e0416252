package dto

import (
	"encoding/json"

	"github.com/landpro-backend/models"
)

// AnalyzeLandRequest is the AI land-analysis input. Boundary is a GeoJSON
// Polygon; Intent optionally tailors the prompt's emphasis.
type AnalyzeLandRequest struct {
	Boundary  json.RawMessage `json:"boundary" binding:"required"`
	Acreage   float64         `json:"acreage" binding:"required,gt=0"`
	Location  string          `json:"location"`
	Intent    string          `json:"intent" binding:"omitempty,oneof=build clear farm evaluate"`
	ProjectID *string         `json:"projectId"`
}

// AnalyzeLandResponse wraps the validated analysis
type AnalyzeLandResponse struct {
	Analysis *models.AnalysisResult `json:"analysis"`
}

// MeasureRequest runs the measurement math over a click trail
type MeasureRequest struct {
	Mode   string      `json:"mode" binding:"required,oneof=distance area"`
	Points [][]float64 `json:"points" binding:"required"`
}

// MeasureResponse carries the formatted running measurement
type MeasureResponse struct {
	Result string `json:"result"`
}
