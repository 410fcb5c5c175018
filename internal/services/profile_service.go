package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Get(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update overwrites the caller's own profile fields. There is no
// cross-user path here; the id comes from the verified token.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"display_name":                   req.DisplayName,
		"phone":                          req.Phone,
		"emergency_contact_name":         req.EmergencyContactName,
		"emergency_contact_phone":        req.EmergencyContactPhone,
		"emergency_contact_relationship": req.EmergencyContactRelationship,
	}
	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
