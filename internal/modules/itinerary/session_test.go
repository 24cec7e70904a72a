package itinerary

import (
	"errors"
	"testing"

	"trip-planner/internal/models"
)

func threeDayPlan() *models.TripPlan {
	return &models.TripPlan{
		TripName: "Test Trip",
		Duration: 3,
		Days: []models.DayPlan{
			{Day: 1, Theme: "Arrival"},
			{Day: 2, Theme: "Exploring"},
			{Day: 3, Theme: "Departure"},
		},
	}
}

func TestSessionInstallInitializesActiveDay(t *testing.T) {
	s := NewSession()
	seq := s.Begin()

	if !s.Install(seq, threeDayPlan(), nil) {
		t.Fatal("install with current sequence number failed")
	}
	if s.ActiveDay() != 1 {
		t.Fatalf("activeDay = %d, want 1", s.ActiveDay())
	}
}

func TestSessionSelectDay(t *testing.T) {
	s := NewSession()
	s.Install(s.Begin(), threeDayPlan(), nil)

	if got := s.SelectDay(5); got != 1 {
		t.Fatalf("selecting an absent day must be a no-op, activeDay = %d", got)
	}
	if got := s.SelectDay(2); got != 2 {
		t.Fatalf("selecting a present day must update, activeDay = %d", got)
	}
}

func TestSessionSelectDayWithoutPlan(t *testing.T) {
	s := NewSession()
	if got := s.SelectDay(1); got != 0 {
		t.Fatalf("activeDay = %d, want 0", got)
	}
}

func TestSessionStaleInstallIsRejected(t *testing.T) {
	s := NewSession()
	stale := s.Begin()
	fresh := s.Begin()

	freshPlan := threeDayPlan()
	if !s.Install(fresh, freshPlan, nil) {
		t.Fatal("fresh install failed")
	}
	if s.Install(stale, &models.TripPlan{TripName: "Stale"}, nil) {
		t.Fatal("stale install must be rejected")
	}

	plan, _, _, err := s.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != freshPlan {
		t.Fatalf("stale result overwrote the fresh plan: %q", plan.TripName)
	}
}

func TestSessionReplacementResetsDaySelection(t *testing.T) {
	s := NewSession()
	s.Install(s.Begin(), threeDayPlan(), nil)
	s.SelectDay(3)

	s.Install(s.Begin(), threeDayPlan(), nil)
	if s.ActiveDay() != 1 {
		t.Fatalf("a new plan must reset the active day, got %d", s.ActiveDay())
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.Install(s.Begin(), threeDayPlan(), []models.PlanWarning{{Code: models.WarningOverBudget}})

	s.Reset()
	if _, _, _, err := s.Current(); !errors.Is(err, models.ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan after reset, got %v", err)
	}
	if s.ActiveDay() != 0 {
		t.Fatalf("activeDay = %d, want 0", s.ActiveDay())
	}
}

func TestSessionCurrentWithoutPlan(t *testing.T) {
	s := NewSession()
	if _, _, _, err := s.Current(); !errors.Is(err, models.ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan, got %v", err)
	}
}
