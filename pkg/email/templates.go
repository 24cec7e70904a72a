package email

import (
	"bytes"
	"html/template"
	"log"
)

// TemplateManager holds the parsed email templates.
type TemplateManager struct {
	ItineraryTmpl *template.Template
}

// NewTemplateManager parses all email templates at startup.
func NewTemplateManager() (*TemplateManager, error) {
	itineraryTmpl, err := template.New("itinerary").Parse(itineraryShareTemplate)
	if err != nil {
		return nil, err
	}

	log.Println("Email templates parsed successfully.")
	return &TemplateManager{ItineraryTmpl: itineraryTmpl}, nil
}

// ItineraryDay is one day row in the share email.
type ItineraryDay struct {
	Day   int
	Theme string
}

// ItineraryData holds the dynamic data for the itinerary share template.
type ItineraryData struct {
	TripName    string
	Destination string
	Duration    int
	Summary     string
	Total       string
	Days        []ItineraryDay
}

// GenerateItineraryEmailHTML executes the share template with the given trip.
func (tm *TemplateManager) GenerateItineraryEmailHTML(data ItineraryData) (string, error) {
	var body bytes.Buffer
	if err := tm.ItineraryTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// --- HTML Template Definitions ---

const itineraryShareTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>{{.TripName}}</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>{{.TripName}}</h2>
	<p><strong>{{.Destination}}</strong> &middot; {{.Duration}} days &middot; estimated total ${{.Total}}</p>
	<p>{{.Summary}}</p>
	<h3>Day by day</h3>
	<ul>
	{{range .Days}}
		<li><strong>Day {{.Day}}:</strong> {{.Theme}}</li>
	{{end}}
	</ul>
	<p>Prices are estimates produced by a planning engine, not confirmed bookings.</p>
</body>
</html>
`
