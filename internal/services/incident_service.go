package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"github.com/yaswanth810/safety-beacon/internal/notify"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrInvalidCategory  = errors.New("invalid incident category")
	ErrInvalidStatus    = errors.New("invalid incident status")
)

type IncidentService struct {
	db         *gorm.DB
	dispatcher *notify.Dispatcher
}

func NewIncidentService(db *gorm.DB, dispatcher *notify.Dispatcher) *IncidentService {
	return &IncidentService{db: db, dispatcher: dispatcher}
}

// Create files a new report. The reporter link is dropped entirely for
// anonymous reports; user_id is null exactly when is_anonymous is true.
func (s *IncidentService) Create(actor authz.Actor, req *dto.CreateIncidentRequest) (*models.Incident, error) {
	if !models.IsValidIncidentCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description is required")
	}

	incident := models.Incident{
		ID:          uuid.New(),
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsAnonymous: req.IsAnonymous,
		Status:      models.IncidentStatusNew,
	}
	if !req.IsAnonymous {
		id := actor.ID
		incident.UserID = &id
	}
	if len(req.Evidence) > 0 {
		if b, err := json.Marshal(req.Evidence); err == nil {
			incident.Evidence = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&incident).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

// List returns the caller's own non-anonymous reports; elevated roles see
// everything.
func (s *IncidentService) List(actor authz.Actor, limit, offset int) ([]models.Incident, int64, error) {
	var incidents []models.Incident
	var total int64

	query := s.db.Model(&models.Incident{})
	if !actor.IsElevated() {
		query = query.Where("user_id = ?", actor.ID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&incidents).Error
	if err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

func (s *IncidentService) Get(actor authz.Actor, incidentID uuid.UUID) (*models.Incident, error) {
	var incident models.Incident
	if err := s.db.First(&incident, "id = ?", incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	if !authz.CanReadIncident(actor, &incident) {
		return nil, ErrForbidden
	}
	return &incident, nil
}

// UpdateNarrative lets the owner amend description, address and evidence.
// Status is untouchable here regardless of role.
func (s *IncidentService) UpdateNarrative(actor authz.Actor, incidentID uuid.UUID, req *dto.UpdateIncidentRequest) (*models.Incident, error) {
	var incident models.Incident
	if err := s.db.First(&incident, "id = ?", incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	if !authz.CanEditIncident(actor, &incident) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(req.Description) != "" {
		updates["description"] = req.Description
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Evidence != nil {
		if b, err := json.Marshal(req.Evidence); err == nil {
			updates["evidence"] = datatypes.JSON(b)
		}
	}
	if len(updates) == 0 {
		return &incident, nil
	}

	if err := s.db.Model(&incident).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

// SetStatus moves a report between new, under_review and resolved.
// Transitions are not forced forward-only; any elevated actor may set any
// of the three values. The reporter notification is fire-and-forget; the
// dispatcher re-verifies authorization on its own.
func (s *IncidentService) SetStatus(actor authz.Actor, incidentID uuid.UUID, status string) (*models.Incident, error) {
	if !models.IsValidIncidentStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !authz.CanSetIncidentStatus(actor) {
		return nil, ErrForbidden
	}

	var incident models.Incident
	if err := s.db.First(&incident, "id = ?", incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&incident).Update("status", status).Error; err != nil {
		return nil, err
	}
	incident.Status = status

	s.dispatcher.DispatchIncidentAsync(actor, incident.ID)
	return &incident, nil
}
