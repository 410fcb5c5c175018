package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"gorm.io/gorm"
)

// Sentinel errors map onto the dispatcher HTTP contract in the handler.
var (
	ErrNotFound         = errors.New("record not found")
	ErrForbidden        = errors.New("caller lacks the required role")
	ErrNoRecipient      = errors.New("recipient address could not be resolved")
	ErrNotConfigured    = errors.New("email delivery is not configured")
	ErrProviderRejected = errors.New("email provider rejected the request")
)

// SkipAnonymous is the no-op reason for anonymous incidents.
const SkipAnonymous = "anonymous incident"

// Dispatcher re-derives authorization, loads related records, formats a
// message and hands it to the mailer. Callers on the write path invoke it
// fire-and-forget; the HTTP endpoints surface its errors as status codes.
type Dispatcher struct {
	db             *gorm.DB
	mailer         Mailer
	responderAddrs []string
}

func NewDispatcher(db *gorm.DB, mailer Mailer, responderAddrs []string) *Dispatcher {
	return &Dispatcher{db: db, mailer: mailer, responderAddrs: responderAddrs}
}

// DispatchIncident emails the reporter about a status change. Anonymous
// incidents are skipped and reported as success. Admin only.
func (d *Dispatcher) DispatchIncident(actor authz.Actor, incidentID uuid.UUID) (skipped string, err error) {
	var incident models.Incident
	if err := d.db.First(&incident, "id = ?", incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if !actor.IsAdmin() {
		return "", ErrForbidden
	}

	if incident.IsAnonymous || incident.UserID == nil {
		return SkipAnonymous, nil
	}

	var user models.User
	if err := d.db.First(&user, "id = ?", *incident.UserID).Error; err != nil || user.Email == "" {
		return "", ErrNoRecipient
	}

	var profile models.Profile
	d.db.First(&profile, "user_id = ?", user.ID)
	displayName := profile.DisplayName
	if displayName == "" {
		displayName = user.Email
	}

	if !d.mailer.IsConfigured() {
		return "", ErrNotConfigured
	}

	html, err := renderTemplate(incidentStatusTemplate, IncidentStatusData{
		DisplayName: displayName,
		Category:    incident.Category,
		Status:      incident.Status,
		CreatedAt:   incident.CreatedAt.Format(time.RFC1123),
	})
	if err != nil {
		return "", err
	}

	subject := "Your incident report is now " + incident.Status
	if err := d.mailer.Send([]string{user.Email}, subject, html); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRejected, err)
	}
	return "", nil
}

// DispatchSOS emails the configured responder addresses about an active
// alert, including the owner's emergency contact. Owner or admin only.
func (d *Dispatcher) DispatchSOS(actor authz.Actor, sosID uuid.UUID) (skipped string, err error) {
	var alert models.SOSAlert
	if err := d.db.First(&alert, "id = ?", sosID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if !authz.CanNotifySOS(actor, &alert) {
		return "", ErrForbidden
	}

	if len(d.responderAddrs) == 0 {
		return "", ErrNoRecipient
	}

	var profile models.Profile
	d.db.First(&profile, "user_id = ?", alert.UserID)
	displayName := profile.DisplayName
	if displayName == "" {
		var user models.User
		if err := d.db.First(&user, "id = ?", alert.UserID).Error; err == nil {
			displayName = user.Email
		}
	}

	if !d.mailer.IsConfigured() {
		return "", ErrNotConfigured
	}

	html, err := renderTemplate(sosAlertTemplate, SOSAlertData{
		DisplayName:                  displayName,
		Latitude:                     fmt.Sprintf("%.6f", alert.Latitude),
		Longitude:                    fmt.Sprintf("%.6f", alert.Longitude),
		Address:                      alert.Address,
		CreatedAt:                    alert.CreatedAt.Format(time.RFC1123),
		EmergencyContactName:         profile.EmergencyContactName,
		EmergencyContactPhone:        profile.EmergencyContactPhone,
		EmergencyContactRelationship: profile.EmergencyContactRelationship,
	})
	if err != nil {
		return "", err
	}

	subject := "SOS alert from " + displayName
	if err := d.mailer.Send(d.responderAddrs, subject, html); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRejected, err)
	}
	return "", nil
}

// DispatchIncidentAsync runs DispatchIncident in the background. The
// triggering status update already succeeded, so failures are logged and
// swallowed.
func (d *Dispatcher) DispatchIncidentAsync(actor authz.Actor, incidentID uuid.UUID) {
	go func() {
		if _, err := d.DispatchIncident(actor, incidentID); err != nil {
			slog.Error("incident notification dispatch failed",
				"action", "notify_incident",
				"incident_id", incidentID.String(),
				"error", err)
		}
	}()
}

// DispatchSOSAsync runs DispatchSOS in the background, same semantics.
func (d *Dispatcher) DispatchSOSAsync(actor authz.Actor, sosID uuid.UUID) {
	go func() {
		if _, err := d.DispatchSOS(actor, sosID); err != nil {
			slog.Error("sos notification dispatch failed",
				"action", "notify_sos",
				"sos_id", sosID.String(),
				"error", err)
		}
	}()
}
