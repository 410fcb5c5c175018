package models

import (
	"time"

	"github.com/google/uuid"
)

// LegalResource is a read-only knowledge-base entry, seeded at deployment
// and managed by administrators afterwards.
type LegalResource struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category  string    `gorm:"size:50;not null;index" json:"category"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
