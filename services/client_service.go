package services

import (
	"errors"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"gorm.io/gorm"
)

// ClientService handles business logic for a landscaper's client book
type ClientService struct {
	clientRepo  *repositories.ClientRepository
	quoteRepo   *repositories.QuoteRepository
	invoiceRepo *repositories.InvoiceRepository
}

// NewClientService creates a new client service instance
func NewClientService() *ClientService {
	return &ClientService{
		clientRepo:  repositories.NewClientRepository(),
		quoteRepo:   repositories.NewQuoteRepository(),
		invoiceRepo: repositories.NewInvoiceRepository(),
	}
}

// ListClients retrieves every client belonging to a landscaper
func (s *ClientService) ListClients(userID string) (dto.ClientListResponse, error) {
	clients, err := s.clientRepo.FindByUserID(userID)
	if err != nil {
		return dto.ClientListResponse{}, err
	}
	return dto.ClientListResponse{
		Clients:    clients,
		TotalCount: int64(len(clients)),
	}, nil
}

// GetClient retrieves one client with an ownership check
func (s *ClientService) GetClient(clientID, userID string, isAdmin bool) (models.Client, error) {
	client, err := s.clientRepo.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, ErrNotFound
		}
		return models.Client{}, err
	}
	if !isAdmin && client.UserID != userID {
		return models.Client{}, ErrForbidden
	}
	return client, nil
}

// CreateClient adds a customer to the caller's book
func (s *ClientService) CreateClient(userID string, req dto.CreateClientRequest) (models.Client, error) {
	client := models.Client{
		UserID:     userID,
		ClientName: req.ClientName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
		Status:     models.ClientActive,
	}
	return s.clientRepo.Create(client)
}

// UpdateClient mutates a client record
func (s *ClientService) UpdateClient(clientID, userID string, isAdmin bool, req dto.UpdateClientRequest) (models.Client, error) {
	client, err := s.GetClient(clientID, userID, isAdmin)
	if err != nil {
		return models.Client{}, err
	}

	if req.ClientName != nil {
		client.ClientName = *req.ClientName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.PortalUserID != nil {
		client.PortalUserID = req.PortalUserID
	}

	if err := s.clientRepo.Update(client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// DeleteClient removes a client record
func (s *ClientService) DeleteClient(clientID, userID string, isAdmin bool) error {
	if _, err := s.GetClient(clientID, userID, isAdmin); err != nil {
		return err
	}
	return s.clientRepo.Delete(clientID)
}

// PortalView returns the quotes and invoices visible to a portal login.
// The portal user sees only rows tied to the client record linked to them.
func (s *ClientService) PortalView(portalUserID string) (models.Client, []models.Quote, []models.Invoice, error) {
	client, err := s.clientRepo.FindByPortalUserID(portalUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, nil, nil, ErrNotFound
		}
		return models.Client{}, nil, nil, err
	}

	quotes, err := s.quoteRepo.FindByClientID(client.ID)
	if err != nil {
		return models.Client{}, nil, nil, err
	}
	invoices, err := s.invoiceRepo.FindByClientID(client.ID)
	if err != nil {
		return models.Client{}, nil, nil, err
	}
	return client, quotes, invoices, nil
}
