package models

import (
	"time"
)

// Profile holds the business details shown on quotes and invoices.
// Its ID is the owning user's ID, one row per account.
type Profile struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	BusinessName string    `json:"businessName" gorm:"default:null"`
	Email        string    `json:"email" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
