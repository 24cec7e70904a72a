package planner

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"trip-planner/internal/models"
)

// validPlanJSON is a minimal well-formed two-day plan.
const validPlanJSON = `{
	"tripName": "Kansai Highlights",
	"destination": "Tokyo, Kyoto",
	"duration": 2,
	"summary": "Two packed days across Tokyo and Kyoto.",
	"luxuryScore": 6,
	"timeEfficiencyScore": 8,
	"costBreakdown": {
		"transport": 500,
		"accommodation": 800,
		"food": 300,
		"activities": 200,
		"hiddenCosts": 50,
		"total": 1850
	},
	"days": [
		{
			"day": 1,
			"theme": "Tokyo classics",
			"activities": [
				{
					"time": "09:00 AM",
					"activity": "Senso-ji Temple",
					"description": "Morning visit to Asakusa's oldest temple.",
					"costEstimate": 0,
					"type": "activity",
					"location": "Asakusa, Tokyo",
					"coordinates": {"lat": 35.7148, "lng": 139.7967}
				}
			]
		},
		{
			"day": 2,
			"theme": "Kyoto temples",
			"activities": [
				{
					"time": "10:00 AM",
					"activity": "Fushimi Inari",
					"description": "Walk the torii gates.",
					"costEstimate": 12.5,
					"type": "activity",
					"location": "Fushimi, Kyoto",
					"coordinates": {"lat": 34.9671, "lng": 135.7727}
				}
			]
		}
	]
}`

// mutatePlan decodes the valid plan, applies fn to the tree and re-encodes.
func mutatePlan(t *testing.T, fn func(map[string]interface{})) string {
	t.Helper()
	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(validPlanJSON), &tree); err != nil {
		t.Fatalf("fixture did not parse: %v", err)
	}
	fn(tree)
	out, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	return string(out)
}

func firstActivity(tree map[string]interface{}) map[string]interface{} {
	days := tree["days"].([]interface{})
	day := days[0].(map[string]interface{})
	acts := day["activities"].([]interface{})
	return acts[0].(map[string]interface{})
}

func TestValidatePlanAcceptsWellFormedPlan(t *testing.T) {
	plan, err := ValidatePlan(validPlanJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.TripName != "Kansai Highlights" {
		t.Fatalf("tripName = %q", plan.TripName)
	}
	if len(plan.Days) != plan.Duration {
		t.Fatalf("got %d days for duration %d", len(plan.Days), plan.Duration)
	}
	act := plan.Days[0].Activities[0]
	if act.Type != models.ActivityActivity {
		t.Fatalf("activity type = %q", act.Type)
	}
	if act.Coordinates == nil || act.Coordinates.Lat != 35.7148 {
		t.Fatalf("coordinates not carried through: %+v", act.Coordinates)
	}
	if plan.CostBreakdown.Total != 1850 {
		t.Fatalf("total = %v", plan.CostBreakdown.Total)
	}
}

func TestValidatePlanRejectsNonJSON(t *testing.T) {
	_, err := ValidatePlan("Sorry, I could not plan this trip.")

	var malformed *models.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestValidatePlanSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		path string
	}{
		{
			name: "missing trip name",
			raw:  mutatePlan(t, func(tree map[string]interface{}) { delete(tree, "tripName") }),
			path: "tripName",
		},
		{
			name: "missing coordinates",
			raw: mutatePlan(t, func(tree map[string]interface{}) {
				delete(firstActivity(tree), "coordinates")
			}),
			path: "days[0].activities[0].coordinates",
		},
		{
			name: "half-populated coordinates",
			raw: mutatePlan(t, func(tree map[string]interface{}) {
				coords := firstActivity(tree)["coordinates"].(map[string]interface{})
				delete(coords, "lng")
			}),
			path: "days[0].activities[0].coordinates.lng",
		},
		{
			name: "unknown activity type is rejected not coerced",
			raw: mutatePlan(t, func(tree map[string]interface{}) {
				firstActivity(tree)["type"] = "shopping"
			}),
			path: "days[0].activities[0].type",
		},
		{
			name: "negative cost estimate",
			raw: mutatePlan(t, func(tree map[string]interface{}) {
				firstActivity(tree)["costEstimate"] = -5
			}),
			path: "days[0].activities[0].costEstimate",
		},
		{
			name: "wrong kind for summary",
			raw:  mutatePlan(t, func(tree map[string]interface{}) { tree["summary"] = 42 }),
			path: "summary",
		},
		{
			name: "score out of range",
			raw:  mutatePlan(t, func(tree map[string]interface{}) { tree["luxuryScore"] = 11 }),
			path: "luxuryScore",
		},
		{
			name: "day count does not match duration",
			raw:  mutatePlan(t, func(tree map[string]interface{}) { tree["duration"] = 3 }),
			path: "days",
		},
		{
			name: "duplicate day number",
			raw: mutatePlan(t, func(tree map[string]interface{}) {
				days := tree["days"].([]interface{})
				days[1].(map[string]interface{})["day"] = 1
			}),
			path: "days[1].day",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidatePlan(tc.raw)

			var violation *models.SchemaViolationError
			if !errors.As(err, &violation) {
				t.Fatalf("expected SchemaViolationError, got %v", err)
			}
			if violation.Path != tc.path {
				t.Fatalf("path = %q, want %q (reason: %s)", violation.Path, tc.path, violation.Reason)
			}
		})
	}
}

func TestValidatePlanIsIdempotent(t *testing.T) {
	first, err := ValidatePlan(validPlanJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	serialized, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	second, err := ValidatePlan(string(serialized))
	if err != nil {
		t.Fatalf("re-validation failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-validation drifted:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
