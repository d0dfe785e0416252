package repositories

import (
	"errors"
	"time"

	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
	"gorm.io/gorm"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct{}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

// FindByID retrieves an invoice by its ID
func (r *InvoiceRepository) FindByID(id string) (models.Invoice, error) {
	var invoice models.Invoice
	result := database.DB.Preload("Client").First(&invoice, "id = ?", id)
	return invoice, result.Error
}

// FindByUserID retrieves all invoices belonging to a landscaper
func (r *InvoiceRepository) FindByUserID(userID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	result := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Preload("Client").Find(&invoices)
	return invoices, result.Error
}

// FindByClientID retrieves invoices for one client, used by the client portal
func (r *InvoiceRepository) FindByClientID(clientID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	result := database.DB.Where("client_id = ?", clientID).Order("created_at DESC").Find(&invoices)
	return invoices, result.Error
}

// Create inserts a new invoice into the database
func (r *InvoiceRepository) Create(invoice models.Invoice) (models.Invoice, error) {
	result := database.DB.Create(&invoice)
	return invoice, result.Error
}

// Update modifies an existing invoice
func (r *InvoiceRepository) Update(invoice models.Invoice) error {
	result := database.DB.Save(&invoice)
	return result.Error
}

// UpdateIfUnchanged saves the invoice only when the stored row still carries
// the expected updated_at.
func (r *InvoiceRepository) UpdateIfUnchanged(invoice models.Invoice, expectedUpdatedAt interface{}) error {
	result := database.DB.Model(&models.Invoice{}).
		Where("id = ? AND updated_at = ?", invoice.ID, expectedUpdatedAt).
		Select("amount", "status", "stripe_payment_link", "stripe_payment_intent_id").
		Updates(&invoice)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an invoice from the database (soft delete)
func (r *InvoiceRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Invoice{}, "id = ?", id)
	return result.Error
}

// CountForNumber counts every invoice row ever created for a user, including
// soft-deleted ones, so invoice numbers never repeat.
func (r *InvoiceRepository) CountForNumber(userID string) (int64, error) {
	var count int64
	err := database.DB.Unscoped().Model(&models.Invoice{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Count counts all invoices
func (r *InvoiceRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Invoice{}).Count(&count)
	return count, result.Error
}

// PaidTotal sums paid invoice amounts across all users
func (r *InvoiceRepository) PaidTotal() (float64, error) {
	var total float64
	err := database.DB.Model(&models.Invoice{}).
		Where("status = ?", models.InvoicePaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// ErrDuplicateEvent reports a webhook event that was already applied.
var ErrDuplicateEvent = errors.New("webhook event already processed")

// MarkPaid records a completed payment inside one transaction together with
// the webhook dedupe insert. A re-delivered event id fails the check-and-insert
// and rolls the whole thing back before the invoice is touched twice.
func (r *InvoiceRepository) MarkPaid(invoiceID, paymentIntentID, eventID, eventType string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var seen int64
		if err := tx.Model(&models.WebhookEvent{}).Where("event_id = ?", eventID).Count(&seen).Error; err != nil {
			return err
		}
		if seen > 0 {
			return ErrDuplicateEvent
		}

		event := models.WebhookEvent{
			EventID:    eventID,
			EventType:  eventType,
			InvoiceID:  invoiceID,
			ReceivedAt: time.Now(),
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		var invoice models.Invoice
		if err := tx.First(&invoice, "id = ?", invoiceID).Error; err != nil {
			return err
		}
		if !invoice.Status.CanTransition(models.InvoicePaid) {
			// Already paid or never sent; nothing to apply.
			return nil
		}

		return tx.Model(&models.Invoice{}).Where("id = ?", invoiceID).Updates(map[string]interface{}{
			"status":                   models.InvoicePaid,
			"stripe_payment_intent_id": paymentIntentID,
		}).Error
	})
}
