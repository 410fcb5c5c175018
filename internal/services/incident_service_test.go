package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/models"
)

func userActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Roles: []string{models.RoleUser}}
}

func TestCreateIncidentAnonymityInvariant(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	actor := userActor()

	named, err := svc.Create(actor, &dto.CreateIncidentRequest{
		Category: "harassment", Description: "followed home",
	})
	require.NoError(t, err)
	require.NotNil(t, named.UserID)
	assert.Equal(t, actor.ID, *named.UserID)
	assert.False(t, named.IsAnonymous)
	assert.Equal(t, models.IncidentStatusNew, named.Status)

	anon, err := svc.Create(actor, &dto.CreateIncidentRequest{
		Category: "stalking", Description: "repeated calls", IsAnonymous: true,
	})
	require.NoError(t, err)
	assert.Nil(t, anon.UserID)
	assert.True(t, anon.IsAnonymous)
}

func TestCreateIncidentValidation(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	actor := userActor()

	_, err := svc.Create(actor, &dto.CreateIncidentRequest{Category: "not-a-category", Description: "x"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Create(actor, &dto.CreateIncidentRequest{Category: "theft", Description: "   "})
	assert.Error(t, err)
}

func TestCreateIncidentStoresEvidence(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))

	incident, err := svc.Create(userActor(), &dto.CreateIncidentRequest{
		Category:    "cybercrime",
		Description: "threatening messages",
		Evidence:    []string{"https://files.example.com/shot1.png"},
	})
	require.NoError(t, err)

	var urls []string
	require.NoError(t, json.Unmarshal(incident.Evidence, &urls))
	assert.Equal(t, []string{"https://files.example.com/shot1.png"}, urls)
}

func TestGetIncidentAccess(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	owner := userActor()
	stranger := userActor()
	moderator := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}

	incident, err := svc.Create(owner, &dto.CreateIncidentRequest{
		Category: "assault", Description: "incident at the station",
	})
	require.NoError(t, err)

	_, err = svc.Get(owner, incident.ID)
	assert.NoError(t, err)

	_, err = svc.Get(stranger, incident.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(moderator, incident.ID)
	assert.NoError(t, err)

	anon, err := svc.Create(owner, &dto.CreateIncidentRequest{
		Category: "other", Description: "anonymous tip", IsAnonymous: true,
	})
	require.NoError(t, err)
	_, err = svc.Get(stranger, anon.ID)
	assert.NoError(t, err)
}

func TestListIncidentsScoping(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	alice := userActor()
	bob := userActor()
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}

	_, err := svc.Create(alice, &dto.CreateIncidentRequest{Category: "theft", Description: "a"})
	require.NoError(t, err)
	_, err = svc.Create(bob, &dto.CreateIncidentRequest{Category: "theft", Description: "b"})
	require.NoError(t, err)

	own, total, err := svc.List(alice, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, *own[0].UserID)

	all, total, err := svc.List(admin, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestListIncidentsPropagatesCountError(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	alice := userActor()

	_, err := svc.Create(alice, &dto.CreateIncidentRequest{Category: "theft", Description: "a"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, total, err := svc.List(alice, 20, 0)
	assert.Error(t, err)
	assert.Zero(t, total)
}

func TestUpdateNarrativeNeverTouchesStatus(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	owner := userActor()

	incident, err := svc.Create(owner, &dto.CreateIncidentRequest{
		Category: "harassment", Description: "original",
	})
	require.NoError(t, err)

	moderator := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}
	_, err = svc.SetStatus(moderator, incident.ID, models.IncidentStatusUnderReview)
	require.NoError(t, err)

	updated, err := svc.UpdateNarrative(owner, incident.ID, &dto.UpdateIncidentRequest{
		Description: "amended description",
		Address:     "5th Cross Road",
	})
	require.NoError(t, err)
	assert.Equal(t, "amended description", updated.Description)

	var reloaded models.Incident
	require.NoError(t, db.First(&reloaded, "id = ?", incident.ID).Error)
	assert.Equal(t, models.IncidentStatusUnderReview, reloaded.Status)
}

func TestUpdateNarrativeOwnerOnly(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	owner := userActor()
	moderator := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleModerator}}

	incident, err := svc.Create(owner, &dto.CreateIncidentRequest{
		Category: "theft", Description: "original",
	})
	require.NoError(t, err)

	// Elevated roles triage status; they do not rewrite the report.
	_, err = svc.UpdateNarrative(moderator, incident.ID, &dto.UpdateIncidentRequest{Description: "edited"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetStatusRoleGate(t *testing.T) {
	db := testDB(t)
	svc := NewIncidentService(db, testDispatcher(db))
	owner := userActor()

	incident, err := svc.Create(owner, &dto.CreateIncidentRequest{
		Category: "stalking", Description: "x",
	})
	require.NoError(t, err)

	// Owners cannot set status, not even on their own report.
	_, err = svc.SetStatus(owner, incident.ID, models.IncidentStatusResolved)
	assert.ErrorIs(t, err, ErrForbidden)

	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}
	updated, err := svc.SetStatus(admin, incident.ID, models.IncidentStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, updated.Status)

	// Transitions are permissive: resolved back to new is allowed.
	updated, err = svc.SetStatus(admin, incident.ID, models.IncidentStatusNew)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusNew, updated.Status)

	_, err = svc.SetStatus(admin, incident.ID, "closed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
