package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/lib/llm"
	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"gorm.io/gorm"
)

const quoteSystemPrompt = "You are LandPro AI, a professional landscaping cost estimator. " +
	"Always respond with valid JSON only, no markdown formatting or additional text."

// quoteReply is the shape requested from the model
type quoteReply struct {
	JobTitle       string  `json:"jobTitle"`
	LaborCost      float64 `json:"laborCost"`
	EquipmentCost  float64 `json:"equipmentCost"`
	MaterialCost   float64 `json:"materialCost"`
	CompletionTime float64 `json:"completionTime"`
	Notes          string  `json:"notes"`
}

// QuoteService handles AI quote generation and quote persistence
type QuoteService struct {
	quoteRepo *repositories.QuoteRepository
	ai        *llm.Client
}

// NewQuoteService creates a new quote service instance
func NewQuoteService(ai *llm.Client) *QuoteService {
	return &QuoteService{
		quoteRepo: repositories.NewQuoteRepository(),
		ai:        ai,
	}
}

// GenerateQuote builds the estimate prompt, runs one completion and composes
// the quote. TotalEstimate is always computed locally from the parsed costs;
// every cost is rounded to an integer. A single attempt per invocation, the
// caller retries by re-invoking.
func (s *QuoteService) GenerateQuote(ctx context.Context, req dto.GenerateQuoteRequest) (*dto.GeneratedQuote, error) {
	log.Printf("Generating quote for %s: %s (%g %s)", req.ClientName, req.JobDescription, req.PropertySize, req.PropertyUnit)

	content, err := s.ai.Complete(ctx, quoteSystemPrompt, buildQuotePrompt(req), llm.Options{
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, err
	}

	var reply quoteReply
	if err := llm.DecodeJSON(content, &reply); err != nil {
		log.Printf("Failed to parse AI quote reply: %v", err)
		return nil, err
	}

	totalEstimate := reply.LaborCost + reply.EquipmentCost + reply.MaterialCost

	return &dto.GeneratedQuote{
		JobTitle:       reply.JobTitle,
		LaborCost:      math.Round(reply.LaborCost),
		EquipmentCost:  math.Round(reply.EquipmentCost),
		MaterialCost:   math.Round(reply.MaterialCost),
		TotalEstimate:  math.Round(totalEstimate),
		CompletionTime: int(math.Round(reply.CompletionTime)),
		Notes:          reply.Notes,
		ClientName:     req.ClientName,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func buildQuotePrompt(req dto.GenerateQuoteRequest) string {
	materials := ""
	if req.MaterialNotes != "" {
		materials = fmt.Sprintf("Materials/Notes: %s\n", req.MaterialNotes)
	}
	return fmt.Sprintf(`You are LandPro AI — an expert in landscaping and land management quotes.
Based on the details below, generate a professional, itemized project estimate.

Client: %s
Job Description: %s
Property Size: %g %s
%s
Provide a detailed breakdown including:
1. A brief job title (max 50 characters)
2. Labor cost (in USD)
3. Equipment cost (in USD)
4. Material cost (in USD)
5. Estimated completion time (in days)
6. Professional notes about the project

Consider factors like:
- Property size and terrain complexity
- Type of work (clearing, grading, mulching, maintenance, etc.)
- Equipment rental and labor requirements
- Material costs specific to the job type
- Debris removal and finishing work

Respond ONLY with a valid JSON object in this exact format:
{
  "jobTitle": "Brief descriptive title",
  "laborCost": number,
  "equipmentCost": number,
  "materialCost": number,
  "completionTime": number,
  "notes": "Professional notes about the project"
}`, req.ClientName, req.JobDescription, req.PropertySize, req.PropertyUnit, materials)
}

// ListQuotes retrieves the caller's quotes, newest first
func (s *QuoteService) ListQuotes(userID string, page, pageSize int, status string) (dto.QuoteListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	quotes, totalCount, err := s.quoteRepo.FindWithPagination(page, pageSize, userID, status)
	if err != nil {
		return dto.QuoteListResponse{}, err
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return dto.QuoteListResponse{
		Quotes:     quotes,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetQuote retrieves one quote with an ownership check
func (s *QuoteService) GetQuote(quoteID, userID string, isAdmin bool) (models.Quote, error) {
	quote, err := s.quoteRepo.FindByID(quoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Quote{}, ErrNotFound
		}
		return models.Quote{}, err
	}
	if !isAdmin && quote.UserID != userID {
		return models.Quote{}, ErrForbidden
	}
	return quote, nil
}

// CreateQuote saves a quote. Total is always derived from the cost
// components, never taken from the request.
func (s *QuoteService) CreateQuote(userID string, req dto.CreateQuoteRequest) (models.Quote, error) {
	unit := req.PropertyUnit
	if unit == "" {
		unit = "acres"
	}
	quote := models.Quote{
		UserID:         userID,
		ClientID:       req.ClientID,
		ProjectID:      req.ProjectID,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		PropertySize:   req.PropertySize,
		PropertyUnit:   unit,
		LaborCost:      req.LaborCost,
		EquipmentCost:  req.EquipmentCost,
		MaterialCost:   req.MaterialCost,
		Total:          req.LaborCost + req.EquipmentCost + req.MaterialCost,
		CompletionTime: req.CompletionTime,
		Notes:          req.Notes,
		Status:         models.QuotePending,
	}
	return s.quoteRepo.Create(quote)
}

// UpdateQuote mutates a quote under the updatedAt precondition, recomputing
// the total whenever any cost component changes.
func (s *QuoteService) UpdateQuote(quoteID, userID string, isAdmin bool, req dto.UpdateQuoteRequest) (models.Quote, error) {
	quote, err := s.GetQuote(quoteID, userID, isAdmin)
	if err != nil {
		return models.Quote{}, err
	}

	expectedUpdatedAt, err := parseRowVersion(req.UpdatedAt)
	if err != nil {
		return models.Quote{}, err
	}

	if req.JobTitle != nil {
		quote.JobTitle = *req.JobTitle
	}
	if req.JobDescription != nil {
		quote.JobDescription = *req.JobDescription
	}
	if req.LaborCost != nil {
		quote.LaborCost = *req.LaborCost
	}
	if req.EquipmentCost != nil {
		quote.EquipmentCost = *req.EquipmentCost
	}
	if req.MaterialCost != nil {
		quote.MaterialCost = *req.MaterialCost
	}
	if req.CompletionTime != nil {
		quote.CompletionTime = *req.CompletionTime
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}
	if req.Status != nil {
		quote.Status = *req.Status
	}
	quote.Total = quote.LaborCost + quote.EquipmentCost + quote.MaterialCost

	if err := s.quoteRepo.UpdateIfUnchanged(quote, expectedUpdatedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Quote{}, ErrConflict
		}
		return models.Quote{}, err
	}
	return s.quoteRepo.FindByID(quoteID)
}

// DeleteQuote removes a quote
func (s *QuoteService) DeleteQuote(quoteID, userID string, isAdmin bool) error {
	if _, err := s.GetQuote(quoteID, userID, isAdmin); err != nil {
		return err
	}
	return s.quoteRepo.Delete(quoteID)
}
