package budget

import (
	"testing"

	"trip-planner/internal/models"
)

func planWithBreakdown(cb models.CostBreakdown) *models.TripPlan {
	return &models.TripPlan{
		TripName:      "Test Trip",
		CostBreakdown: cb,
	}
}

func TestReconcileConsistentBreakdown(t *testing.T) {
	plan := planWithBreakdown(models.CostBreakdown{
		Transport:     500,
		Accommodation: 800,
		Food:          300,
		Activities:    200,
		HiddenCosts:   50,
		Total:         1850,
	})

	warnings := Reconcile(plan, 2000)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", warnings)
	}
}

func TestReconcileFlagsInconsistentTotal(t *testing.T) {
	plan := planWithBreakdown(models.CostBreakdown{
		Transport:     500,
		Accommodation: 800,
		Food:          300,
		Activities:    200,
		HiddenCosts:   50,
		Total:         2000,
	})

	warnings := Reconcile(plan, 2500)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", warnings)
	}
	w := warnings[0]
	if w.Code != models.WarningCostInconsistency {
		t.Fatalf("code = %q", w.Code)
	}
	if w.Expected != 1850 || w.Actual != 2000 {
		t.Fatalf("expected/actual = %v/%v", w.Expected, w.Actual)
	}
}

func TestReconcileFlagsOverBudget(t *testing.T) {
	plan := planWithBreakdown(models.CostBreakdown{
		Transport:     500,
		Accommodation: 800,
		Food:          300,
		Activities:    200,
		HiddenCosts:   50,
		Total:         1850,
	})

	warnings := Reconcile(plan, 1000)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", warnings)
	}
	if warnings[0].Code != models.WarningOverBudget {
		t.Fatalf("code = %q", warnings[0].Code)
	}
}

func TestReconcileToleratesSmallRoundingGaps(t *testing.T) {
	// Components sum to 100, total claims 110: within the $25 floor.
	plan := planWithBreakdown(models.CostBreakdown{
		Transport:   40,
		Food:        60,
		HiddenCosts: 0,
		Total:       110,
	})

	warnings := Reconcile(plan, 500)
	if len(warnings) != 0 {
		t.Fatalf("small gaps should not flag, got %+v", warnings)
	}
}

func TestReconcileNeverMutatesTheBreakdown(t *testing.T) {
	cb := models.CostBreakdown{Transport: 500, Total: 2000}
	plan := planWithBreakdown(cb)

	Reconcile(plan, 100)
	if plan.CostBreakdown != cb {
		t.Fatalf("breakdown was mutated: %+v", plan.CostBreakdown)
	}
}
