package notify

import (
	"strings"
	"testing"
)

func TestSMTPMailerIsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		expected bool
	}{
		{"empty config", MailerConfig{}, false},
		{"missing host", MailerConfig{Port: "587", From: "a@b.c"}, false},
		{"missing from", MailerConfig{Host: "smtp.example.com", Port: "587"}, false},
		{"fully configured", MailerConfig{Host: "smtp.example.com", Port: "587", From: "a@b.c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSMTPMailer(tt.config)
			if m.IsConfigured() != tt.expected {
				t.Errorf("IsConfigured() = %v, want %v", m.IsConfigured(), tt.expected)
			}
		})
	}
}

func TestRenderIncidentStatusTemplate(t *testing.T) {
	html, err := renderTemplate(incidentStatusTemplate, IncidentStatusData{
		DisplayName: "Asha",
		Category:    "stalking",
		Status:      "under_review",
		CreatedAt:   "Mon, 02 Jan 2026 15:04:05 UTC",
	})
	if err != nil {
		t.Fatalf("renderTemplate failed: %v", err)
	}
	for _, want := range []string{"Asha", "stalking", "under_review"} {
		if !strings.Contains(html, want) {
			t.Errorf("template missing %q", want)
		}
	}
}

func TestRenderSOSTemplateOmitsEmptyFields(t *testing.T) {
	html, err := renderTemplate(sosAlertTemplate, SOSAlertData{
		DisplayName: "Asha",
		Latitude:    "12.340000",
		Longitude:   "56.780000",
	})
	if err != nil {
		t.Fatalf("renderTemplate failed: %v", err)
	}
	if strings.Contains(html, "Address:") {
		t.Error("empty address should be omitted")
	}
	if strings.Contains(html, "Emergency contact:") {
		t.Error("empty emergency contact should be omitted")
	}
}
