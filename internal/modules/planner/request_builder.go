package planner

import (
	"fmt"
	"strings"

	"trip-planner/internal/models"
	"trip-planner/pkg/gemini"

	"google.golang.org/genai"
)

// systemDirective is the fixed behavioral contract sent with every
// generation request. It instructs the backend to optimize for budget,
// time and luxury, to return machine-parseable JSON only, and to avoid
// fabricated prices or locations.
const systemDirective = `{
  "system_name": "AI Trip Planner & Budget Optimisation Engine",
  "system_role": "You are an intelligent AI Trip Planner designed to generate highly accurate, optimized, and real-world travel plans. You must continuously optimize trips based on budget, time, and luxury preferences while ensuring zero logical errors. RETURN JSON ONLY.",
  "core_objectives": [
    "Generate travel itineraries using real-time data logic.",
    "Optimize trips primarily for budget, time efficiency, and luxury preferences.",
    "Ensure maximum accuracy.",
    "Provide booking-ready details."
  ],
  "response_guidelines": {
    "tone": "clear, professional, and user-friendly",
    "constraints": [
      "Use only verified data logic",
      "No hallucinations",
      "No fake pricing or locations"
    ]
  }
}`

// BuildRequest turns validated preferences into a generation request: the
// system directive, a per-trip brief quoting the origin, every destination
// and the budget verbatim, and the response schema the backend must match.
// It fails only when no destination was given; callers are expected to
// reject that case before invoking the builder. No side effects.
func BuildRequest(prefs models.TripPreferences, grounding bool) (*gemini.GenerationRequest, error) {
	if len(prefs.Destinations) == 0 {
		return nil, models.ErrMissingDestination
	}

	budget := prefs.BudgetString()
	brief := fmt.Sprintf(`Plan a trip starting from origin: %q and visiting these destinations: %q.
Total Duration: %d days.
Travelers: %d.
Budget Limit: $%s (total including travel from the origin).
Luxury Level: %s.
Interests: %s.

Generate a detailed day-by-day itinerary with realistic costs, specific locations, and time optimization.
Keep the total cost close to or under the budget limit of $%s.
Include flight/transport costs from %s to the first destination and between destinations in the transport cost breakdown.
IMPORTANT: Provide estimated GPS coordinates (latitude, longitude) for every activity location so it can be plotted on a map.
Use live search to verify current prices and locations if needed, but return the final result in the requested JSON schema.`,
		prefs.Origin,
		strings.Join(prefs.Destinations, ", "),
		prefs.Duration,
		prefs.Travelers,
		budget,
		prefs.LuxuryLevel,
		prefs.Interests,
		budget,
		prefs.Origin,
	)

	return &gemini.GenerationRequest{
		SystemDirective:  systemDirective,
		UserBrief:        brief,
		OutputSchema:     tripPlanSchema(),
		GroundingEnabled: grounding,
	}, nil
}

// tripPlanSchema describes the TripPlan shape as a genai response schema,
// so the backend is constrained to structured output instead of prose.
func tripPlanSchema() *genai.Schema {
	coordinates := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"lat": {Type: genai.TypeNumber},
			"lng": {Type: genai.TypeNumber},
		},
		Required: []string{"lat", "lng"},
	}

	activity := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"time":         {Type: genai.TypeString},
			"activity":     {Type: genai.TypeString},
			"description":  {Type: genai.TypeString},
			"costEstimate": {Type: genai.TypeNumber},
			"type": {
				Type: genai.TypeString,
				Enum: []string{"food", "transport", "accommodation", "activity", "other"},
			},
			"location":    {Type: genai.TypeString},
			"coordinates": coordinates,
		},
		Required: []string{"time", "activity", "description", "costEstimate", "type", "location", "coordinates"},
	}

	day := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":        {Type: genai.TypeInteger},
			"theme":      {Type: genai.TypeString},
			"activities": {Type: genai.TypeArray, Items: activity},
		},
		Required: []string{"day", "theme", "activities"},
	}

	costBreakdown := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"transport":     {Type: genai.TypeNumber},
			"accommodation": {Type: genai.TypeNumber},
			"food":          {Type: genai.TypeNumber},
			"activities":    {Type: genai.TypeNumber},
			"hiddenCosts":   {Type: genai.TypeNumber},
			"total":         {Type: genai.TypeNumber},
		},
		Required: []string{"transport", "accommodation", "food", "activities", "hiddenCosts", "total"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tripName":            {Type: genai.TypeString},
			"destination":         {Type: genai.TypeString},
			"duration":            {Type: genai.TypeInteger},
			"summary":             {Type: genai.TypeString},
			"luxuryScore":         {Type: genai.TypeNumber, Description: "Score from 1 to 10"},
			"timeEfficiencyScore": {Type: genai.TypeNumber, Description: "Score from 1 to 10"},
			"costBreakdown":       costBreakdown,
			"days":                {Type: genai.TypeArray, Items: day},
		},
		Required: []string{"tripName", "destination", "duration", "summary", "days", "costBreakdown", "luxuryScore", "timeEfficiencyScore"},
	}
}
