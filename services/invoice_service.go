package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"gorm.io/gorm"
)

// InvoiceService handles business logic for invoices
type InvoiceService struct {
	invoiceRepo *repositories.InvoiceRepository
	clientRepo  *repositories.ClientRepository
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService() *InvoiceService {
	return &InvoiceService{
		invoiceRepo: repositories.NewInvoiceRepository(),
		clientRepo:  repositories.NewClientRepository(),
	}
}

// ListInvoices retrieves the caller's invoices
func (s *InvoiceService) ListInvoices(userID string) (dto.InvoiceListResponse, error) {
	invoices, err := s.invoiceRepo.FindByUserID(userID)
	if err != nil {
		return dto.InvoiceListResponse{}, err
	}
	return dto.InvoiceListResponse{
		Invoices:   invoices,
		TotalCount: int64(len(invoices)),
	}, nil
}

// GetInvoice retrieves one invoice with an ownership check
func (s *InvoiceService) GetInvoice(invoiceID, userID string, isAdmin bool) (models.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Invoice{}, ErrNotFound
		}
		return models.Invoice{}, err
	}
	if !isAdmin && invoice.UserID != userID {
		return models.Invoice{}, ErrForbidden
	}
	return invoice, nil
}

// CreateInvoice issues a draft invoice for one of the caller's clients
func (s *InvoiceService) CreateInvoice(userID string, req dto.CreateInvoiceRequest) (models.Invoice, error) {
	client, err := s.clientRepo.FindByID(req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Invoice{}, ErrNotFound
		}
		return models.Invoice{}, err
	}
	if client.UserID != userID {
		return models.Invoice{}, ErrForbidden
	}

	number, err := s.nextInvoiceNumber(userID)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice := models.Invoice{
		UserID:        userID,
		ClientID:      req.ClientID,
		QuoteID:       req.QuoteID,
		InvoiceNumber: number,
		Amount:        req.Amount,
		Status:        models.InvoiceDraft,
	}

	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return models.Invoice{}, fmt.Errorf("invalid dueDate: %w", err)
		}
		invoice.DueDate = &due
	}

	return s.invoiceRepo.Create(invoice)
}

// UpdateInvoice mutates an invoice under the updatedAt precondition. Status
// changes must follow the monotonic draft→sent→paid path (sent→overdue→paid
// for late payers); anything else is rejected.
func (s *InvoiceService) UpdateInvoice(invoiceID, userID string, isAdmin bool, req dto.UpdateInvoiceRequest) (models.Invoice, error) {
	invoice, err := s.GetInvoice(invoiceID, userID, isAdmin)
	if err != nil {
		return models.Invoice{}, err
	}

	expectedUpdatedAt, err := parseRowVersion(req.UpdatedAt)
	if err != nil {
		return models.Invoice{}, err
	}

	if req.Amount != nil {
		if invoice.Status != models.InvoiceDraft {
			return models.Invoice{}, fmt.Errorf("%w: amount can only change on a draft invoice", ErrInvalidTransition)
		}
		invoice.Amount = *req.Amount
	}
	if req.Status != nil && *req.Status != invoice.Status {
		if !invoice.Status.CanTransition(*req.Status) {
			return models.Invoice{}, fmt.Errorf("%w: %s→%s", ErrInvalidTransition, invoice.Status, *req.Status)
		}
		invoice.Status = *req.Status
	}

	if err := s.invoiceRepo.UpdateIfUnchanged(invoice, expectedUpdatedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Invoice{}, ErrConflict
		}
		return models.Invoice{}, err
	}
	return s.invoiceRepo.FindByID(invoiceID)
}

// DeleteInvoice removes a draft invoice. Sent and paid invoices are part of
// the billing record and stay.
func (s *InvoiceService) DeleteInvoice(invoiceID, userID string, isAdmin bool) error {
	invoice, err := s.GetInvoice(invoiceID, userID, isAdmin)
	if err != nil {
		return err
	}
	if invoice.Status != models.InvoiceDraft {
		return fmt.Errorf("%w: only draft invoices can be deleted", ErrInvalidTransition)
	}
	return s.invoiceRepo.Delete(invoiceID)
}

// nextInvoiceNumber produces INV-YYYY-NNNN, numbered per user across all
// rows ever created so numbers never repeat.
func (s *InvoiceService) nextInvoiceNumber(userID string) (string, error) {
	count, err := s.invoiceRepo.CountForNumber(userID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%04d", time.Now().Year(), count+1), nil
}
