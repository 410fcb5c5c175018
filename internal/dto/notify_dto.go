package dto

import "github.com/google/uuid"

type NotifyIncidentRequest struct {
	IncidentID uuid.UUID `json:"incident_id"`
}

type NotifySOSRequest struct {
	SOSID uuid.UUID `json:"sos_id"`
}

// NotifyResponse matches the dispatcher contract: success is always true on
// 200; Skipped carries the no-op reason (e.g. an anonymous incident).
type NotifyResponse struct {
	Success bool   `json:"success"`
	Skipped string `json:"skipped,omitempty"`
}
