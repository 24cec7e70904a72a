package budget

import (
	"fmt"
	"math"

	"trip-planner/internal/models"
)

const (
	// totalTolerancePct is the relative slack allowed between the summed
	// rollup components and the reported total.
	totalTolerancePct = 0.01

	// minToleranceUSD is the absolute floor on that slack, so small trips
	// don't flag on rounding noise.
	minToleranceUSD = 25.0
)

// Reconcile cross-checks a validated plan's cost rollups. A component sum
// that misses the reported total by more than max(1% of total, $25) yields
// a CostInconsistency warning; a total above the traveler's budget yields
// an OverBudget warning. Both are advisory: the plan stays usable and its
// numbers are never rewritten, only annotated.
func Reconcile(plan *models.TripPlan, budget float64) []models.PlanWarning {
	warnings := []models.PlanWarning{}
	cb := plan.CostBreakdown

	sum := cb.ComponentSum()
	tolerance := math.Max(math.Abs(cb.Total)*totalTolerancePct, minToleranceUSD)
	if math.Abs(sum-cb.Total) > tolerance {
		warnings = append(warnings, models.PlanWarning{
			Code:     models.WarningCostInconsistency,
			Message:  fmt.Sprintf("cost breakdown components sum to %.2f but total is %.2f", sum, cb.Total),
			Expected: sum,
			Actual:   cb.Total,
		})
	}

	if budget > 0 && cb.Total > budget {
		warnings = append(warnings, models.PlanWarning{
			Code:     models.WarningOverBudget,
			Message:  fmt.Sprintf("estimated total %.2f exceeds the budget of %.2f", cb.Total, budget),
			Expected: budget,
			Actual:   cb.Total,
		})
	}

	return warnings
}
