package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// LuxuryLevel is the traveler's comfort tier.
type LuxuryLevel string

const (
	LuxuryBudget   LuxuryLevel = "Budget"
	LuxuryModerate LuxuryLevel = "Moderate"
	LuxuryLuxury   LuxuryLevel = "Luxury"
)

// TripPreferences is the validated user intent behind one generation request.
// Preferences are constructed once per submission and treated as immutable
// input to the request builder.
type TripPreferences struct {
	Origin       string      `json:"origin" validate:"required"`
	Destinations []string    `json:"destinations" validate:"required,min=1,dive,required"`
	Duration     int         `json:"duration" validate:"required,min=1,max=30"`
	Budget       float64     `json:"budget" validate:"required,gte=500"`
	Travelers    int         `json:"travelers" validate:"required,min=1,max=10"`
	LuxuryLevel  LuxuryLevel `json:"luxuryLevel" validate:"required,oneof=Budget Moderate Luxury"`
	Interests    string      `json:"interests,omitempty"`
}

// BudgetString renders the budget exactly as entered, without trailing
// zero padding, so prompts and briefs can quote it verbatim.
func (p TripPreferences) BudgetString() string {
	return strconv.FormatFloat(p.Budget, 'f', -1, 64)
}

// Fingerprint returns a stable digest of the preferences, used to key the
// plan cache. Two submissions with identical fields share a fingerprint.
func (p TripPreferences) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%s|%d|%s|%s",
		p.Origin,
		strings.Join(p.Destinations, ","),
		p.Duration,
		p.BudgetString(),
		p.Travelers,
		p.LuxuryLevel,
		p.Interests,
	)
	return hex.EncodeToString(h.Sum(nil))
}
