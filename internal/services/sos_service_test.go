package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/models"
)

type stubGeocoder struct {
	address string
	err     error
	calls   int
}

func (g *stubGeocoder) ReverseGeocode(lat, lng float64) (string, error) {
	g.calls++
	return g.address, g.err
}

func ptr(f float64) *float64 { return &f }

func TestActivateCreatesActiveAlert(t *testing.T) {
	db := testDB(t)
	geo := &stubGeocoder{address: "12 Harbor Road, Port City"}
	svc := NewSOSService(db, geo, testDispatcher(db))
	actor := userActor()

	alert, err := svc.Activate(actor, ptr(12.34), ptr(56.78))
	require.NoError(t, err)
	assert.True(t, alert.IsActive)
	assert.Nil(t, alert.DeactivatedAt)
	assert.Equal(t, 12.34, alert.Latitude)
	assert.Equal(t, 56.78, alert.Longitude)
	assert.Equal(t, "12 Harbor Road, Port City", alert.Address)
	assert.Equal(t, 1, geo.calls)
}

func TestActivateWithoutCoordinatesWritesNothing(t *testing.T) {
	db := testDB(t)
	svc := NewSOSService(db, &stubGeocoder{}, testDispatcher(db))

	_, err := svc.Activate(userActor(), nil, ptr(56.78))
	assert.ErrorIs(t, err, ErrCoordinatesMissing)

	var count int64
	db.Model(&models.SOSAlert{}).Count(&count)
	assert.Zero(t, count)
}

func TestActivateDegradesOnGeocodeFailure(t *testing.T) {
	db := testDB(t)
	geo := &stubGeocoder{err: errors.New("upstream down")}
	svc := NewSOSService(db, geo, testDispatcher(db))

	alert, err := svc.Activate(userActor(), ptr(1.0), ptr(2.0))
	require.NoError(t, err)
	assert.True(t, alert.IsActive)
	assert.Empty(t, alert.Address)
}

func TestDeactivateInvariant(t *testing.T) {
	db := testDB(t)
	svc := NewSOSService(db, &stubGeocoder{}, testDispatcher(db))
	actor := userActor()

	alert, err := svc.Activate(actor, ptr(1.0), ptr(2.0))
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(actor, alert.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	require.NotNil(t, deactivated.DeactivatedAt)

	// deactivated_at is non-null exactly when is_active is false.
	var rows []models.SOSAlert
	require.NoError(t, db.Find(&rows).Error)
	for _, row := range rows {
		assert.Equal(t, !row.IsActive, row.DeactivatedAt != nil)
	}
}

func TestDeactivateIsNoOpWhenAlreadyInactive(t *testing.T) {
	db := testDB(t)
	svc := NewSOSService(db, &stubGeocoder{}, testDispatcher(db))
	actor := userActor()

	alert, err := svc.Activate(actor, ptr(1.0), ptr(2.0))
	require.NoError(t, err)

	first, err := svc.Deactivate(actor, alert.ID)
	require.NoError(t, err)
	stamp := *first.DeactivatedAt

	time.Sleep(10 * time.Millisecond)
	second, err := svc.Deactivate(actor, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, stamp.Unix(), second.DeactivatedAt.Unix())
}

func TestDeactivateOwnerOnly(t *testing.T) {
	db := testDB(t)
	svc := NewSOSService(db, &stubGeocoder{}, testDispatcher(db))
	owner := userActor()
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}

	alert, err := svc.Activate(owner, ptr(1.0), ptr(2.0))
	require.NoError(t, err)

	// Admins can see every alert but only the owner deactivates it.
	_, err = svc.Deactivate(admin, alert.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Deactivate(owner, uuid.New())
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestActiveReturnsMostRecent(t *testing.T) {
	db := testDB(t)
	svc := NewSOSService(db, &stubGeocoder{}, testDispatcher(db))
	actor := userActor()

	none, err := svc.Active(actor)
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := svc.Activate(actor, ptr(1.0), ptr(2.0))
	require.NoError(t, err)
	// Concurrent activations are not deduplicated; a second active row is
	// legal and the newest one wins.
	db.Model(&models.SOSAlert{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour))
	second, err := svc.Activate(actor, ptr(3.0), ptr(4.0))
	require.NoError(t, err)

	active, err := svc.Active(actor)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	_, err = svc.Deactivate(actor, second.ID)
	require.NoError(t, err)

	active, err = svc.Active(actor)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ID, active.ID)
}

func TestActiveForAllAdminOnly(t *testing.T) {
	db := testDB(t)
	svc := NewSOSService(db, &stubGeocoder{}, testDispatcher(db))
	owner := userActor()
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}

	_, err := svc.Activate(owner, ptr(1.0), ptr(2.0))
	require.NoError(t, err)

	_, err = svc.ActiveForAll(owner)
	assert.ErrorIs(t, err, ErrForbidden)

	alerts, err := svc.ActiveForAll(admin)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}
