package dto

type CreateIncidentRequest struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsAnonymous bool     `json:"is_anonymous"`
	Evidence    []string `json:"evidence,omitempty"`
}

// UpdateIncidentRequest covers narrative fields only. Status has its own
// endpoint and its own authorization.
type UpdateIncidentRequest struct {
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
}

type UpdateIncidentStatusRequest struct {
	Status string `json:"status"`
}
