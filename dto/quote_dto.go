package dto

import "github.com/landpro-backend/models"

// GenerateQuoteRequest is the AI quote-generation input
type GenerateQuoteRequest struct {
	ClientName     string  `json:"clientName" binding:"required"`
	JobDescription string  `json:"jobDescription" binding:"required"`
	PropertySize   float64 `json:"propertySize" binding:"required,gt=0"`
	PropertyUnit   string  `json:"propertyUnit" binding:"required,oneof=acres sqft"`
	MaterialNotes  string  `json:"materialNotes"`
}

// GeneratedQuote is the composed quote returned to the caller. Costs are
// integers after rounding and TotalEstimate is computed locally, never taken
// from the model.
type GeneratedQuote struct {
	JobTitle       string  `json:"jobTitle"`
	LaborCost      float64 `json:"laborCost"`
	EquipmentCost  float64 `json:"equipmentCost"`
	MaterialCost   float64 `json:"materialCost"`
	TotalEstimate  float64 `json:"totalEstimate"`
	CompletionTime int     `json:"completionTime"`
	Notes          string  `json:"notes"`
	ClientName     string  `json:"clientName"`
	Timestamp      string  `json:"timestamp"`
}

// CreateQuoteRequest saves a quote against the caller's account
type CreateQuoteRequest struct {
	ClientID       *string `json:"clientId"`
	ProjectID      *string `json:"projectId"`
	JobTitle       string  `json:"jobTitle" binding:"required"`
	JobDescription string  `json:"jobDescription"`
	PropertySize   float64 `json:"propertySize"`
	PropertyUnit   string  `json:"propertyUnit" binding:"omitempty,oneof=acres sqft"`
	LaborCost      float64 `json:"laborCost" binding:"min=0"`
	EquipmentCost  float64 `json:"equipmentCost" binding:"min=0"`
	MaterialCost   float64 `json:"materialCost" binding:"min=0"`
	CompletionTime int     `json:"completionTime"`
	Notes          string  `json:"notes"`
}

// UpdateQuoteRequest mutates a saved quote. UpdatedAt carries the row version
// the caller last saw; a mismatch fails the write with a conflict.
type UpdateQuoteRequest struct {
	JobTitle       *string             `json:"jobTitle"`
	JobDescription *string             `json:"jobDescription"`
	LaborCost      *float64            `json:"laborCost"`
	EquipmentCost  *float64            `json:"equipmentCost"`
	MaterialCost   *float64            `json:"materialCost"`
	CompletionTime *int                `json:"completionTime"`
	Notes          *string             `json:"notes"`
	Status         *models.QuoteStatus `json:"status"`
	UpdatedAt      string              `json:"updatedAt" binding:"required"`
}

// QuoteListResponse is a paginated quote listing
type QuoteListResponse struct {
	Quotes     []models.Quote `json:"quotes"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
