// Package authz holds the access-control predicates for every data
// operation. Each service checks the relevant predicate before touching the
// store; nothing relies on ambient session state.
package authz

import (
	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/models"
)

// Actor is the resolved caller: identity plus role assignments.
type Actor struct {
	ID    uuid.UUID
	Roles []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin gates the admin surface: role management, legal-catalog writes,
// the admin SOS view and the incident notification endpoint.
func (a Actor) IsAdmin() bool {
	return a.HasRole(models.RoleAdmin)
}

// IsElevated is the broader override used by the incident workflow.
// Moderators can read and triage every incident, but the admin surface
// stays admin-only.
func (a Actor) IsElevated() bool {
	return a.HasRole(models.RoleAdmin) || a.HasRole(models.RoleModerator)
}

// CanReadIncident: owner, elevated role, or anonymous record.
func CanReadIncident(a Actor, inc *models.Incident) bool {
	if inc.IsAnonymous {
		return true
	}
	if a.IsElevated() {
		return true
	}
	return inc.UserID != nil && *inc.UserID == a.ID
}

// CanEditIncident covers narrative fields only; status changes go through
// CanSetIncidentStatus. Anonymous incidents have no owner and cannot be
// edited.
func CanEditIncident(a Actor, inc *models.Incident) bool {
	return inc.UserID != nil && *inc.UserID == a.ID
}

// CanSetIncidentStatus: moderators and admins only. Owners never mutate
// status, not even on their own reports.
func CanSetIncidentStatus(a Actor) bool {
	return a.IsElevated()
}

// CanReadSOS: owner, or admin (admin read-all).
func CanReadSOS(a Actor, alert *models.SOSAlert) bool {
	return alert.UserID == a.ID || a.IsAdmin()
}

// CanDeactivateSOS: owner only.
func CanDeactivateSOS(a Actor, alert *models.SOSAlert) bool {
	return alert.UserID == a.ID
}

// CanNotifySOS mirrors the dispatcher contract: owner or admin.
func CanNotifySOS(a Actor, alert *models.SOSAlert) bool {
	return alert.UserID == a.ID || a.IsAdmin()
}

// CanDeleteForumPost: author only.
func CanDeleteForumPost(a Actor, post *models.ForumPost) bool {
	return post.UserID == a.ID
}

// CanEditForumPost: author only.
func CanEditForumPost(a Actor, post *models.ForumPost) bool {
	return post.UserID == a.ID
}

// CanManageLegalResources: admin only.
func CanManageLegalResources(a Actor) bool {
	return a.IsAdmin()
}

// CanManageRoles: admin only.
func CanManageRoles(a Actor) bool {
	return a.IsAdmin()
}

// CanReadRoles: self, or admin.
func CanReadRoles(a Actor, userID uuid.UUID) bool {
	return a.ID == userID || a.IsAdmin()
}
