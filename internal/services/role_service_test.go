package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/models"
)

func TestAssignAndRevokeRoles(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}
	targetID := uuid.New()

	require.NoError(t, svc.Assign(admin, targetID, models.RoleModerator))
	assert.ErrorIs(t, svc.Assign(admin, targetID, models.RoleModerator), ErrRoleExists)
	assert.ErrorIs(t, svc.Assign(admin, targetID, "superuser"), ErrInvalidRole)

	actor, err := svc.ActorFor(targetID)
	require.NoError(t, err)
	assert.True(t, actor.IsElevated())
	assert.False(t, actor.IsAdmin())

	require.NoError(t, svc.Revoke(admin, targetID, models.RoleModerator))
	assert.ErrorIs(t, svc.Revoke(admin, targetID, models.RoleModerator), ErrRoleNotAssigned)
}

func TestRoleManagementAdminOnly(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	moderator := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}
	targetID := uuid.New()

	assert.ErrorIs(t, svc.Assign(moderator, targetID, models.RoleModerator), ErrForbidden)
	assert.ErrorIs(t, svc.Revoke(moderator, targetID, models.RoleModerator), ErrForbidden)
}

func TestBaseRoleCannotBeRevoked(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}

	assert.ErrorIs(t, svc.Revoke(admin, uuid.New(), models.RoleUser), ErrBaseRole)
}

func TestRolesForReadPolicy(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}
	selfID := uuid.New()
	self := authz.Actor{ID: selfID, Roles: []string{models.RoleUser}}

	require.NoError(t, svc.Assign(admin, selfID, models.RoleModerator))

	roles, err := svc.RolesFor(self, selfID)
	require.NoError(t, err)
	assert.Contains(t, roles, models.RoleModerator)

	_, err = svc.RolesFor(self, admin.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.RolesFor(admin, selfID)
	assert.NoError(t, err)
}
