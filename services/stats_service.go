package services

import (
	"time"

	"github.com/landpro-backend/repositories"
)

// BusinessStats is the admin panel's platform overview
type BusinessStats struct {
	Users       int64   `json:"users"`
	Projects    int64   `json:"projects"`
	Quotes      int64   `json:"quotes"`
	Invoices    int64   `json:"invoices"`
	PaidRevenue float64 `json:"paidRevenue"`
}

// StatsService aggregates platform-wide counts for the admin panel
type StatsService struct {
	userRepo    *repositories.UserRepository
	projectRepo *repositories.ProjectRepository
	quoteRepo   *repositories.QuoteRepository
	invoiceRepo *repositories.InvoiceRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{
		userRepo:    repositories.NewUserRepository(),
		projectRepo: repositories.NewProjectRepository(),
		quoteRepo:   repositories.NewQuoteRepository(),
		invoiceRepo: repositories.NewInvoiceRepository(),
	}
}

// GetBusinessStats collects the platform overview
func (s *StatsService) GetBusinessStats() (BusinessStats, error) {
	var stats BusinessStats
	var err error

	if stats.Users, err = s.userRepo.Count(); err != nil {
		return stats, err
	}
	if stats.Projects, err = s.projectRepo.Count(); err != nil {
		return stats, err
	}
	if stats.Quotes, err = s.quoteRepo.Count(); err != nil {
		return stats, err
	}
	if stats.Invoices, err = s.invoiceRepo.Count(); err != nil {
		return stats, err
	}
	if stats.PaidRevenue, err = s.invoiceRepo.PaidTotal(); err != nil {
		return stats, err
	}
	return stats, nil
}

// ListUsers returns every account for the admin panel
func (s *StatsService) ListUsers() ([]UserSummary, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		projects, err := s.projectRepo.CountByUserID(u.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, UserSummary{
			ID:        u.ID,
			Email:     u.Email,
			Role:      string(u.Role),
			Projects:  projects,
			CreatedAt: u.CreatedAt,
		})
	}
	return summaries, nil
}

// UserSummary is one row of the admin user listing
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Projects  int64     `json:"projects"`
	CreatedAt time.Time `json:"createdAt"`
}
