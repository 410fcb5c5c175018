package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an authenticated account. Domain data hangs off Profile,
// UserRole, Incident, SOSAlert and the forum tables.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Profile holds display and emergency-contact details, one row per user,
// created together with the account.
type Profile struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName                  string    `gorm:"size:100" json:"display_name"`
	Phone                        string    `gorm:"size:30" json:"phone"`
	EmergencyContactName         string    `gorm:"size:100" json:"emergency_contact_name"`
	EmergencyContactPhone        string    `gorm:"size:30" json:"emergency_contact_phone"`
	EmergencyContactRelationship string    `gorm:"size:50" json:"emergency_contact_relationship"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
	User                         User      `gorm:"foreignKey:UserID" json:"-"`
}
