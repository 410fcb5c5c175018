package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	IncidentStatusNew         = "new"
	IncidentStatusUnderReview = "under_review"
	IncidentStatusResolved    = "resolved"
)

var IncidentStatuses = []string{
	IncidentStatusNew,
	IncidentStatusUnderReview,
	IncidentStatusResolved,
}

var IncidentCategories = []string{
	"harassment",
	"stalking",
	"domestic_violence",
	"assault",
	"theft",
	"cybercrime",
	"other",
}

// Incident is a safety-incident report. UserID is null exactly when the
// report is anonymous. Incidents are never hard-deleted.
type Incident struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Category    string         `gorm:"size:30;not null;index" json:"category"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Address     string         `gorm:"size:255" json:"address,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	IsAnonymous bool           `gorm:"default:false" json:"is_anonymous"`
	Status      string         `gorm:"size:20;not null;default:'new';index" json:"status"`
	Evidence    datatypes.JSON `gorm:"type:jsonb" json:"evidence,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func IsValidIncidentCategory(category string) bool {
	for _, c := range IncidentCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidIncidentStatus(status string) bool {
	for _, s := range IncidentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
