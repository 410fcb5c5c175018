package models

import (
	"time"

	"github.com/google/uuid"
)

// SOSAlert is a panic-button alert with the owner's location at the moment
// of activation. DeactivatedAt is set exactly when IsActive flips to false;
// a deactivated alert is never reactivated.
type SOSAlert struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Latitude      float64    `gorm:"not null" json:"latitude"`
	Longitude     float64    `gorm:"not null" json:"longitude"`
	Address       string     `gorm:"size:255" json:"address,omitempty"`
	IsActive      bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
}
