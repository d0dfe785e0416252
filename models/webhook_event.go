package models

import (
	"time"
)

// WebhookEvent records every payment-provider event already applied, keyed by
// the provider's event id. Re-deliveries hit the unique index and are skipped
// without touching the invoice again.
type WebhookEvent struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    string    `json:"eventId" gorm:"uniqueIndex;not null"`
	EventType  string    `json:"eventType" gorm:"not null"`
	InvoiceID  string    `json:"invoiceId" gorm:"type:uuid;default:null"`
	ReceivedAt time.Time `json:"receivedAt"`
}
