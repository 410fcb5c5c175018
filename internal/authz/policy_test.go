package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yaswanth810/safety-beacon/internal/models"
)

func TestIncidentReadPolicy(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	owner := Actor{ID: ownerID, Roles: []string{models.RoleUser}}
	stranger := Actor{ID: strangerID, Roles: []string{models.RoleUser}}
	moderator := Actor{ID: uuid.New(), Roles: []string{models.RoleUser, models.RoleModerator}}
	admin := Actor{ID: uuid.New(), Roles: []string{models.RoleUser, models.RoleAdmin}}

	owned := &models.Incident{ID: uuid.New(), UserID: &ownerID}
	anonymous := &models.Incident{ID: uuid.New(), IsAnonymous: true}

	tests := []struct {
		name     string
		actor    Actor
		incident *models.Incident
		want     bool
	}{
		{"owner reads own", owner, owned, true},
		{"stranger denied", stranger, owned, false},
		{"moderator override", moderator, owned, true},
		{"admin override", admin, owned, true},
		{"anonymous open to anyone", stranger, anonymous, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanReadIncident(tt.actor, tt.incident))
		})
	}
}

func TestIncidentStatusPolicy(t *testing.T) {
	ownerID := uuid.New()
	owner := Actor{ID: ownerID, Roles: []string{models.RoleUser}}
	moderator := Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}
	admin := Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}

	// Owners edit narrative fields but never status.
	assert.False(t, CanSetIncidentStatus(owner))
	assert.True(t, CanSetIncidentStatus(moderator))
	assert.True(t, CanSetIncidentStatus(admin))

	owned := &models.Incident{UserID: &ownerID}
	assert.True(t, CanEditIncident(owner, owned))
	assert.False(t, CanEditIncident(moderator, owned))

	anonymous := &models.Incident{IsAnonymous: true}
	assert.False(t, CanEditIncident(owner, anonymous))
}

func TestSOSPolicy(t *testing.T) {
	ownerID := uuid.New()
	owner := Actor{ID: ownerID, Roles: []string{models.RoleUser}}
	stranger := Actor{ID: uuid.New(), Roles: []string{models.RoleUser}}
	moderator := Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}
	admin := Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}

	alert := &models.SOSAlert{ID: uuid.New(), UserID: ownerID}

	assert.True(t, CanReadSOS(owner, alert))
	assert.False(t, CanReadSOS(stranger, alert))
	// Moderators have no SOS override; that's admin-only.
	assert.False(t, CanReadSOS(moderator, alert))
	assert.True(t, CanReadSOS(admin, alert))

	assert.True(t, CanDeactivateSOS(owner, alert))
	assert.False(t, CanDeactivateSOS(admin, alert))

	assert.True(t, CanNotifySOS(owner, alert))
	assert.True(t, CanNotifySOS(admin, alert))
	assert.False(t, CanNotifySOS(stranger, alert))
}

func TestRolePolicy(t *testing.T) {
	selfID := uuid.New()
	self := Actor{ID: selfID, Roles: []string{models.RoleUser}}
	admin := Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}
	moderator := Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}

	assert.True(t, CanReadRoles(self, selfID))
	assert.False(t, CanReadRoles(self, uuid.New()))
	assert.True(t, CanReadRoles(admin, selfID))

	assert.True(t, CanManageRoles(admin))
	assert.False(t, CanManageRoles(moderator))
	assert.False(t, CanManageLegalResources(moderator))
	assert.True(t, CanManageLegalResources(admin))
}

func TestIsElevatedAsymmetry(t *testing.T) {
	moderator := Actor{ID: uuid.New(), Roles: []string{models.RoleUser, models.RoleModerator}}

	// Moderators triage incidents but never see the admin dashboard.
	assert.True(t, moderator.IsElevated())
	assert.False(t, moderator.IsAdmin())
}
