package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceStatus represents invoice lifecycle states
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// CanTransition reports whether moving to the given status is allowed.
// Transitions are monotonic: draft→sent→paid, with sent→overdue→paid as the
// late-payment path. Paid is terminal.
func (s InvoiceStatus) CanTransition(to InvoiceStatus) bool {
	switch s {
	case InvoiceDraft:
		return to == InvoiceSent
	case InvoiceSent:
		return to == InvoicePaid || to == InvoiceOverdue
	case InvoiceOverdue:
		return to == InvoicePaid
	default:
		return false
	}
}

// Invoice represents a billable amount owed by a client.
type Invoice struct {
	ID                    string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID                string         `json:"userId" gorm:"type:uuid;not null;index"`
	ClientID              string         `json:"clientId" gorm:"type:uuid;not null;index"`
	QuoteID               *string        `json:"quoteId" gorm:"type:uuid;default:null"`
	InvoiceNumber         string         `json:"invoiceNumber" gorm:"uniqueIndex;not null"`
	Amount                float64        `json:"amount" gorm:"not null"`
	Status                InvoiceStatus  `json:"status" gorm:"type:varchar(10);default:'draft'"`
	DueDate               *time.Time     `json:"dueDate" gorm:"default:null"`
	StripePaymentLink     string         `json:"stripePaymentLink" gorm:"default:null"`
	StripePaymentIntentID string         `json:"stripePaymentIntentId" gorm:"default:null"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	DeletedAt             gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
