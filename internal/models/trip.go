package models

import "time"

// ActivityType classifies an itinerary entry by the kind of spend it represents.
// The generative backend is constrained to exactly these five tags; anything
// else is rejected during validation rather than coerced to a default.
type ActivityType string

const (
	ActivityFood          ActivityType = "food"
	ActivityTransport     ActivityType = "transport"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityActivity      ActivityType = "activity"
	ActivityOther         ActivityType = "other"
)

// Valid reports whether t is one of the recognized activity tags.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityFood, ActivityTransport, ActivityAccommodation, ActivityActivity, ActivityOther:
		return true
	}
	return false
}

// Coordinates is a geographic point embedded in the plan by the backend.
// Lat and Lng are always populated together, never one without the other.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single itinerary entry within a day.
type Activity struct {
	Time         string       `json:"time"` // display label, e.g. "09:00 AM"; not parsed
	Activity     string       `json:"activity"`
	Description  string       `json:"description"`
	CostEstimate float64      `json:"costEstimate" validate:"gte=0"`
	Type         ActivityType `json:"type"`
	Location     string       `json:"location"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// DayPlan groups the activities of one itinerary day. Activities keep the
// order the backend produced; it reflects chronological intent and is never
// re-sorted.
type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// CostBreakdown is the coarse rollup of trip costs, distinct from the
// itemized per-activity estimates.
type CostBreakdown struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	HiddenCosts   float64 `json:"hiddenCosts"`
	Total         float64 `json:"total"`
}

// ComponentSum returns the sum of the five rollup components, which the
// reconciler cross-checks against Total.
func (cb CostBreakdown) ComponentSum() float64 {
	return cb.Transport + cb.Accommodation + cb.Food + cb.Activities + cb.HiddenCosts
}

// TripPlan is the aggregate root produced by one successful generation.
// Plans are immutable once validated; a later generation replaces the
// current plan wholesale instead of mutating it.
type TripPlan struct {
	TripName            string        `json:"tripName"`
	Destination         string        `json:"destination"`
	Duration            int           `json:"duration"`
	Summary             string        `json:"summary"`
	Days                []DayPlan     `json:"days"`
	CostBreakdown       CostBreakdown `json:"costBreakdown"`
	LuxuryScore         float64       `json:"luxuryScore" validate:"gte=1,lte=10"`
	TimeEfficiencyScore float64       `json:"timeEfficiencyScore" validate:"gte=1,lte=10"`
}

// GenerationResult is what a successful run of the generation pipeline
// returns to the caller: the validated plan plus any non-fatal warnings
// attached by reconciliation.
type GenerationResult struct {
	TripID    string        `json:"tripId,omitempty"`
	Plan      *TripPlan     `json:"plan"`
	Warnings  []PlanWarning `json:"warnings"`
	ActiveDay int           `json:"activeDay"`
}

// TripRecord is an archived generation, as stored by the trips repository.
type TripRecord struct {
	ID          string        `json:"id"`
	TripName    string        `json:"trip_name"`
	Destination string        `json:"destination"`
	Duration    int           `json:"duration"`
	Summary     string        `json:"summary"`
	Plan        *TripPlan     `json:"plan"`
	Warnings    []PlanWarning `json:"warnings,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
