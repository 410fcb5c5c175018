package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"gorm.io/gorm"
)

var (
	ErrForbidden       = errors.New("not allowed")
	ErrInvalidRole     = errors.New("invalid role")
	ErrRoleExists      = errors.New("role already assigned")
	ErrRoleNotAssigned = errors.New("role not assigned")
	ErrBaseRole        = errors.New("the user role cannot be revoked")
)

// RoleService resolves callers into authz.Actors and manages role
// assignments.
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// ActorFor loads the role assignments for a user id. A user with no rows
// still acts with an empty role set rather than failing.
func (s *RoleService) ActorFor(userID uuid.UUID) (authz.Actor, error) {
	var assignments []models.UserRole
	if err := s.db.Where("user_id = ?", userID).Find(&assignments).Error; err != nil {
		return authz.Actor{}, err
	}
	roles := make([]string, len(assignments))
	for i, a := range assignments {
		roles[i] = a.Role
	}
	return authz.Actor{ID: userID, Roles: roles}, nil
}

// RolesFor returns the role list for a user; self or admin only.
func (s *RoleService) RolesFor(actor authz.Actor, userID uuid.UUID) ([]string, error) {
	if !authz.CanReadRoles(actor, userID) {
		return nil, ErrForbidden
	}
	target, err := s.ActorFor(userID)
	if err != nil {
		return nil, err
	}
	return target.Roles, nil
}

// Assign grants a role; admin only, unique per (user, role).
func (s *RoleService) Assign(actor authz.Actor, userID uuid.UUID, role string) error {
	if !authz.CanManageRoles(actor) {
		return ErrForbidden
	}
	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}

	var existing models.UserRole
	if err := s.db.Where("user_id = ? AND role = ?", userID, role).First(&existing).Error; err == nil {
		return ErrRoleExists
	}

	assignment := models.UserRole{
		ID:     uuid.New(),
		UserID: userID,
		Role:   role,
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// Revoke removes a role; admin only. The base user role stays for the life
// of the account.
func (s *RoleService) Revoke(actor authz.Actor, userID uuid.UUID, role string) error {
	if !authz.CanManageRoles(actor) {
		return ErrForbidden
	}
	if role == models.RoleUser {
		return ErrBaseRole
	}

	result := s.db.Where("user_id = ? AND role = ?", userID, role).Delete(&models.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotAssigned
	}
	return nil
}
