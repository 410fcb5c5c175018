package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"gorm.io/gorm"
)

var ErrResourceNotFound = errors.New("legal resource not found")

type LegalService struct {
	db *gorm.DB
}

func NewLegalService(db *gorm.DB) *LegalService {
	return &LegalService{db: db}
}

// Search lists resources ordered by category then title. The query term is
// a case-insensitive substring match on title or content; the category
// filter is an exact match; both are ANDed when given.
func (s *LegalService) Search(term, category string) ([]models.LegalResource, error) {
	query := s.db.Model(&models.LegalResource{})

	if term != "" {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		query = query.Where("LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(content) LIKE ? ESCAPE '\\'", pattern, pattern)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var resources []models.LegalResource
	err := query.Order("category ASC, title ASC").Find(&resources).Error
	return resources, err
}

// escapeLike neutralizes LIKE metacharacters so the search term matches
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (s *LegalService) Create(actor authz.Actor, req *dto.UpsertLegalResourceRequest) (*models.LegalResource, error) {
	if !authz.CanManageLegalResources(actor) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("category, title and content are required")
	}

	resource := models.LegalResource{
		ID:       uuid.New(),
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (s *LegalService) Update(actor authz.Actor, resourceID uuid.UUID, req *dto.UpsertLegalResourceRequest) (*models.LegalResource, error) {
	if !authz.CanManageLegalResources(actor) {
		return nil, ErrForbidden
	}

	var resource models.LegalResource
	if err := s.db.First(&resource, "id = ?", resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if len(updates) > 0 {
		if err := s.db.Model(&resource).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &resource, nil
}

func (s *LegalService) Delete(actor authz.Actor, resourceID uuid.UUID) error {
	if !authz.CanManageLegalResources(actor) {
		return ErrForbidden
	}

	result := s.db.Delete(&models.LegalResource{}, "id = ?", resourceID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}
