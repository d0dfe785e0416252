package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientStatus represents the lifecycle of a client relationship
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Client represents a landscaper's customer. PortalUserID links an optional
// portal login so the customer can view their own quotes and invoices.
type Client struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID       string         `json:"userId" gorm:"type:uuid;not null;index"`
	PortalUserID *string        `json:"portalUserId" gorm:"type:uuid;default:null;index"`
	ClientName   string         `json:"clientName" gorm:"not null"`
	Email        string         `json:"email" gorm:"default:null"`
	Phone        string         `json:"phone" gorm:"default:null"`
	Address      string         `json:"address" gorm:"default:null"`
	Notes        string         `json:"notes" gorm:"default:null"`
	Status       ClientStatus   `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
