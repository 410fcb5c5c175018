package notify

// IncidentStatusData fills the incident status-change email.
type IncidentStatusData struct {
	DisplayName string
	Category    string
	Status      string
	CreatedAt   string
}

// SOSAlertData fills the SOS alert email sent to responders.
type SOSAlertData struct {
	DisplayName                  string
	Latitude                     string
	Longitude                    string
	Address                      string
	CreatedAt                    string
	EmergencyContactName         string
	EmergencyContactPhone        string
	EmergencyContactRelationship string
}

const incidentStatusTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Incident status update</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #c0392b; padding-bottom: 10px; margin-bottom: 20px; }
        .status { display: inline-block; padding: 4px 12px; background: #c0392b; color: white; border-radius: 4px; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Safety Beacon</h1>
    </div>

    <h2>Hello {{.DisplayName}},</h2>

    <p>The status of your incident report ({{.Category}}, filed {{.CreatedAt}}) has been updated:</p>

    <p><span class="status">{{.Status}}</span></p>

    <p>You can review the full report and any notes from the review team in the app.</p>

    <div class="footer">
        <p>You are receiving this because you filed a report on Safety Beacon. Anonymous reports are never linked to an email address.</p>
    </div>
</body>
</html>`

const sosAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>SOS alert</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #c0392b; padding-bottom: 10px; margin-bottom: 20px; }
        .alert { background: #fdecea; padding: 12px; border-radius: 4px; margin: 20px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Safety Beacon — SOS</h1>
    </div>

    <div class="alert">
        <strong>{{.DisplayName}} triggered an SOS alert at {{.CreatedAt}}.</strong>
    </div>

    <p>Location: {{.Latitude}}, {{.Longitude}}</p>
    {{if .Address}}<p>Address: {{.Address}}</p>{{end}}

    {{if .EmergencyContactName}}
    <p>Emergency contact: {{.EmergencyContactName}} ({{.EmergencyContactRelationship}}), {{.EmergencyContactPhone}}</p>
    {{end}}

    <div class="footer">
        <p>This alert remains active until the owner deactivates it.</p>
    </div>
</body>
</html>`
