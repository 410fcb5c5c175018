package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/geocode"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"github.com/yaswanth810/safety-beacon/internal/notify"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound      = errors.New("sos alert not found")
	ErrCoordinatesMissing = errors.New("latitude and longitude are required")
)

// Geocoder is satisfied by geocode.Client; tests substitute a stub.
type Geocoder interface {
	ReverseGeocode(lat, lng float64) (string, error)
}

var _ Geocoder = (*geocode.Client)(nil)

type SOSService struct {
	db         *gorm.DB
	geocoder   Geocoder
	dispatcher *notify.Dispatcher
}

func NewSOSService(db *gorm.DB, geocoder Geocoder, dispatcher *notify.Dispatcher) *SOSService {
	return &SOSService{db: db, geocoder: geocoder, dispatcher: dispatcher}
}

// Activate creates an active alert at the given coordinates. Missing
// coordinates abort before any row is written. Reverse geocoding is
// best-effort: on failure the alert is still created with an empty address.
// The responder notification is fire-and-forget. Concurrent activations by
// the same user are not deduplicated.
func (s *SOSService) Activate(actor authz.Actor, lat, lng *float64) (*models.SOSAlert, error) {
	if lat == nil || lng == nil {
		return nil, ErrCoordinatesMissing
	}

	address := ""
	if s.geocoder != nil {
		resolved, err := s.geocoder.ReverseGeocode(*lat, *lng)
		if err != nil {
			slog.Warn("reverse geocoding failed, creating alert without address",
				"user_id", actor.ID.String(), "error", err)
		} else {
			address = resolved
		}
	}

	alert := models.SOSAlert{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Latitude:  *lat,
		Longitude: *lng,
		Address:   address,
		IsActive:  true,
	}
	if err := s.db.Create(&alert).Error; err != nil {
		return nil, err
	}

	s.dispatcher.DispatchSOSAsync(actor, alert.ID)
	return &alert, nil
}

// Deactivate flips the alert inactive and stamps deactivated_at. Owner
// only. Re-invoking on an inactive alert changes nothing.
func (s *SOSService) Deactivate(actor authz.Actor, alertID uuid.UUID) (*models.SOSAlert, error) {
	var alert models.SOSAlert
	if err := s.db.First(&alert, "id = ?", alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	if !authz.CanDeactivateSOS(actor, &alert) {
		return nil, ErrForbidden
	}

	if !alert.IsActive {
		return &alert, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_active":      false,
		"deactivated_at": now,
	}
	if err := s.db.Model(&alert).Updates(updates).Error; err != nil {
		return nil, err
	}
	alert.IsActive = false
	alert.DeactivatedAt = &now
	return &alert, nil
}

// Active returns the caller's most recent active alert, or nil.
func (s *SOSService) Active(actor authz.Actor) (*models.SOSAlert, error) {
	var alert models.SOSAlert
	err := s.db.Where("user_id = ? AND is_active = ?", actor.ID, true).
		Order("created_at DESC").
		First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// History lists the caller's alerts newest-first.
func (s *SOSService) History(actor authz.Actor, limit, offset int) ([]models.SOSAlert, error) {
	var alerts []models.SOSAlert
	err := s.db.Where("user_id = ?", actor.ID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&alerts).Error
	return alerts, err
}

// ActiveForAll lists every active alert; admin only.
func (s *SOSService) ActiveForAll(actor authz.Actor) ([]models.SOSAlert, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var alerts []models.SOSAlert
	err := s.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}
