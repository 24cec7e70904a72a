package planner

import (
	"context"
	"errors"
	"testing"

	"trip-planner/internal/models"
	"trip-planner/internal/modules/itinerary"
	"trip-planner/pkg/gemini"
)

// stubGenerator implements Generator for tests.
type stubGenerator struct {
	calls    int
	response string
	err      error
	onCall   func() // runs before returning, to simulate mid-flight events
}

func (g *stubGenerator) GenerateTrip(_ context.Context, _ *gemini.GenerationRequest) (string, error) {
	g.calls++
	if g.onCall != nil {
		g.onCall()
	}
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestGenerateTripInstallsPlan(t *testing.T) {
	session := itinerary.NewSession()
	gen := &stubGenerator{response: validPlanJSON}
	svc := NewService(gen, nil, session, false)

	result, err := svc.GenerateTrip(context.Background(), testPreferences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Plan == nil || result.Plan.TripName != "Kansai Highlights" {
		t.Fatalf("unexpected plan: %+v", result.Plan)
	}
	if result.ActiveDay != 1 {
		t.Fatalf("activeDay = %d, want 1", result.ActiveDay)
	}

	plan, _, activeDay, err := session.Current()
	if err != nil {
		t.Fatalf("session has no plan: %v", err)
	}
	if plan != result.Plan {
		t.Fatal("session plan is not the generated plan")
	}
	if activeDay != 1 {
		t.Fatalf("session activeDay = %d, want 1", activeDay)
	}
}

func TestGenerateTripWithoutCredential(t *testing.T) {
	svc := NewService(nil, nil, itinerary.NewSession(), false)

	_, err := svc.GenerateTrip(context.Background(), testPreferences())
	if !errors.Is(err, models.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestGenerateTripTransportFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("dial tcp: connection refused")}
	svc := NewService(gen, nil, itinerary.NewSession(), false)

	_, err := svc.GenerateTrip(context.Background(), testPreferences())
	if !errors.Is(err, models.ErrTransportFailure) {
		t.Fatalf("expected ErrTransportFailure, got %v", err)
	}
}

func TestGenerateTripSchemaFailureSurfaces(t *testing.T) {
	gen := &stubGenerator{response: `{"tripName": "incomplete"}`}
	svc := NewService(gen, nil, itinerary.NewSession(), false)

	_, err := svc.GenerateTrip(context.Background(), testPreferences())

	var violation *models.SchemaViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected SchemaViolationError, got %v", err)
	}
}

func TestGenerateTripStaleResultIsDiscarded(t *testing.T) {
	session := itinerary.NewSession()
	gen := &stubGenerator{response: validPlanJSON}
	// A newer submission begins while this generation is in flight.
	gen.onCall = func() { session.Begin() }
	svc := NewService(gen, nil, session, false)

	_, err := svc.GenerateTrip(context.Background(), testPreferences())
	if !errors.Is(err, models.ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	if _, _, _, err := session.Current(); !errors.Is(err, models.ErrNoPlan) {
		t.Fatalf("stale result must not install a plan, got %v", err)
	}
}

func TestGenerateTripReusesCachedPlanForIdenticalPreferences(t *testing.T) {
	gen := &stubGenerator{response: validPlanJSON}
	svc := NewService(gen, nil, itinerary.NewSession(), false)

	if _, err := svc.GenerateTrip(context.Background(), testPreferences()); err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	if _, err := svc.GenerateTrip(context.Background(), testPreferences()); err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("backend called %d times, want 1", gen.calls)
	}

	prefs := testPreferences()
	prefs.Budget = 3000
	if _, err := svc.GenerateTrip(context.Background(), prefs); err != nil {
		t.Fatalf("third generation failed: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("changed preferences must reach the backend, calls = %d", gen.calls)
	}
}

func TestGenerateTripAttachesWarnings(t *testing.T) {
	prefs := testPreferences()
	prefs.Budget = 1000 // plan total is 1850

	gen := &stubGenerator{response: validPlanJSON}
	svc := NewService(gen, nil, itinerary.NewSession(), false)

	result, err := svc.GenerateTrip(context.Background(), prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != models.WarningOverBudget {
		t.Fatalf("expected a single OverBudget warning, got %+v", result.Warnings)
	}
}
