package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents project lifecycle states
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

// Project represents a land parcel under management. Boundary holds the
// GeoJSON polygon as stored; Acreage is derived from it on save and is NULL
// until a valid boundary (3+ vertices) exists.
type Project struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string         `json:"userId" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	Boundary    []byte         `json:"boundary" gorm:"type:jsonb;default:null"`
	Acreage     *float64       `json:"acreage" gorm:"default:null"`
	Location    string         `json:"location" gorm:"default:null"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(10);default:'draft'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User     User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Analyses []Analysis `json:"analyses,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
