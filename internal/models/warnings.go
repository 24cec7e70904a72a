package models

// WarningCode identifies a non-fatal finding attached to a valid plan.
type WarningCode string

const (
	// WarningCostInconsistency flags a cost breakdown whose components do
	// not sum to its total within tolerance.
	WarningCostInconsistency WarningCode = "cost_inconsistency"

	// WarningOverBudget flags an estimated total above the traveler's
	// budget ceiling. The generative source is advisory, so this never
	// fails the plan.
	WarningOverBudget WarningCode = "over_budget"
)

// PlanWarning annotates an otherwise valid plan. Warnings are surfaced
// alongside the plan for the presentation layer; they never block display
// and never cause the underlying numbers to be rewritten.
type PlanWarning struct {
	Code     WarningCode `json:"code"`
	Message  string      `json:"message"`
	Expected float64     `json:"expected,omitempty"`
	Actual   float64     `json:"actual,omitempty"`
}
