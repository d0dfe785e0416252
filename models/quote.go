package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteStatus represents quote lifecycle states
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteSent     QuoteStatus = "sent"
	QuoteApproved QuoteStatus = "approved"
	QuoteDeclined QuoteStatus = "declined"
)

// Quote represents a saved project estimate. Total always equals
// LaborCost + EquipmentCost + MaterialCost; writes that violate that are
// rejected in the service layer.
type Quote struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID         string         `json:"userId" gorm:"type:uuid;not null;index"`
	ClientID       *string        `json:"clientId" gorm:"type:uuid;default:null;index"`
	ProjectID      *string        `json:"projectId" gorm:"type:uuid;default:null;index"`
	JobTitle       string         `json:"jobTitle" gorm:"not null"`
	JobDescription string         `json:"jobDescription" gorm:"default:null"`
	PropertySize   float64        `json:"propertySize" gorm:"default:null"`
	PropertyUnit   string         `json:"propertyUnit" gorm:"type:varchar(10);default:'acres'"`
	LaborCost      float64        `json:"laborCost" gorm:"not null"`
	EquipmentCost  float64        `json:"equipmentCost" gorm:"default:0"`
	MaterialCost   float64        `json:"materialCost" gorm:"not null"`
	Total          float64        `json:"total" gorm:"not null"`
	CompletionTime int            `json:"completionTime" gorm:"default:null"`
	Notes          string         `json:"notes" gorm:"default:null"`
	Status         QuoteStatus    `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User   User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
