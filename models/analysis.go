package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalysisResultVersion is stamped onto every stored result so older rows can
// be told apart if the shape ever changes.
const AnalysisResultVersion = 1

// Analysis stores one AI land-analysis run for a project. Rows are ordered by
// CreatedAt; the newest one is the current analysis for the boundary it was
// computed against.
type Analysis struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Intent    string         `json:"intent" gorm:"type:varchar(10);default:null"`
	Result    []byte         `json:"result" gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (a *Analysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AnalysisResult is the validated shape of a model reply. The model's output
// is never stored or returned untyped: it is parsed into this struct and
// rejected on shape mismatch at the boundary.
type AnalysisResult struct {
	Version    int               `json:"version"`
	Vegetation VegetationSection `json:"vegetation"`
	Terrain    TerrainSection    `json:"terrain"`
	Equipment  EquipmentSection  `json:"equipment"`
	Labor      LaborSection      `json:"labor"`
	Hazards    []string          `json:"hazards"`
	CostFactor CostFactorSection `json:"cost_factors"`
	Summary    string            `json:"summary"`
	NextSteps  []string          `json:"next_steps,omitempty"`
}

type VegetationSection struct {
	Type            string   `json:"type"`
	Density         string   `json:"density"`
	Recommendations []string `json:"recommendations"`
}

type TerrainSection struct {
	Type            string   `json:"type"`
	SlopeEstimate   string   `json:"slope_estimate"`
	Drainage        string   `json:"drainage"`
	Recommendations []string `json:"recommendations"`
}

type EquipmentSection struct {
	Recommended    []string `json:"recommended"`
	Considerations []string `json:"considerations"`
}

type LaborSection struct {
	EstimatedCrewSize float64 `json:"estimated_crew_size"`
	EstimatedHours    float64 `json:"estimated_hours"`
	Difficulty        string  `json:"difficulty"`
}

type CostFactorSection struct {
	BaseRatePerAcre      float64  `json:"base_rate_per_acre"`
	EstimatedTotal       float64  `json:"estimated_total"`
	FactorsAffectingCost []string `json:"factors_affecting_cost"`
}

var ErrInvalidAnalysisShape = errors.New("analysis result has unexpected shape")

// Validate checks that every required section of the result is present.
// Called immediately after parsing a model reply.
func (r *AnalysisResult) Validate() error {
	switch {
	case r.Vegetation.Type == "":
		return fmt.Errorf("%w: missing vegetation.type", ErrInvalidAnalysisShape)
	case r.Terrain.Type == "":
		return fmt.Errorf("%w: missing terrain.type", ErrInvalidAnalysisShape)
	case len(r.Equipment.Recommended) == 0:
		return fmt.Errorf("%w: missing equipment.recommended", ErrInvalidAnalysisShape)
	case r.Labor.Difficulty == "":
		return fmt.Errorf("%w: missing labor.difficulty", ErrInvalidAnalysisShape)
	case r.Hazards == nil:
		return fmt.Errorf("%w: missing hazards", ErrInvalidAnalysisShape)
	case r.Summary == "":
		return fmt.Errorf("%w: missing summary", ErrInvalidAnalysisShape)
	}
	return nil
}

// DecodeResult unmarshals the stored result blob back into its typed form.
func (a *Analysis) DecodeResult() (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal(a.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
