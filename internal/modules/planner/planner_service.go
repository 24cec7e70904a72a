package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"trip-planner/internal/models"
	"trip-planner/internal/modules/budget"
	"trip-planner/internal/modules/itinerary"
	"trip-planner/pkg/gemini"

	"github.com/patrickmn/go-cache"
)

const (
	planCacheTTL     = 30 * time.Minute
	planCacheCleanup = 10 * time.Minute
)

// Generator defines the contract for the generative backend client.
// Implemented by pkg/gemini; mocked in tests.
type Generator interface {
	GenerateTrip(ctx context.Context, req *gemini.GenerationRequest) (string, error)
}

// Archiver persists successfully generated plans for later retrieval.
// Implemented by the trips module. Archiving is best-effort; a failed
// archive never fails the generation it records.
type Archiver interface {
	Archive(ctx context.Context, plan *models.TripPlan, warnings []models.PlanWarning) (string, error)
}

// ServiceInterface defines the contract for the planner service.
type ServiceInterface interface {
	GenerateTrip(ctx context.Context, prefs models.TripPreferences) (*models.GenerationResult, error)
}

// Service runs the generation pipeline: build the request, call the
// backend (or reuse a cached validated plan for identical preferences),
// validate, reconcile costs against the budget, and install the result
// into the session.
type Service struct {
	generator Generator
	archiver  Archiver
	session   *itinerary.Session
	plans     *cache.Cache
	grounding bool
}

// NewService creates a new planner service. A nil generator means the
// backend credential was not configured; generation then fails with
// ErrMissingCredential instead of reaching the network.
func NewService(generator Generator, archiver Archiver, session *itinerary.Session, grounding bool) *Service {
	return &Service{
		generator: generator,
		archiver:  archiver,
		session:   session,
		plans:     cache.New(planCacheTTL, planCacheCleanup),
		grounding: grounding,
	}
}

// GenerateTrip runs one full generation attempt. Each attempt takes a
// sequence number up front; if a newer submission begins before this one
// finishes, the finished result is discarded with ErrSuperseded rather
// than overwriting the fresher plan. No retries are performed.
func (s *Service) GenerateTrip(ctx context.Context, prefs models.TripPreferences) (*models.GenerationResult, error) {
	if s.generator == nil {
		return nil, models.ErrMissingCredential
	}

	req, err := BuildRequest(prefs, s.grounding)
	if err != nil {
		return nil, err
	}

	seq := s.session.Begin()

	plan, err := s.lookupOrGenerate(ctx, prefs, req)
	if err != nil {
		return nil, err
	}

	warnings := budget.Reconcile(plan, prefs.Budget)

	if !s.session.Install(seq, plan, warnings) {
		return nil, models.ErrSuperseded
	}

	result := &models.GenerationResult{
		Plan:      plan,
		Warnings:  warnings,
		ActiveDay: s.session.ActiveDay(),
	}

	if s.archiver != nil {
		id, err := s.archiver.Archive(ctx, plan, warnings)
		if err != nil {
			log.Printf("service.GenerateTrip: archive failed: %v", err)
		} else {
			result.TripID = id
		}
	}

	return result, nil
}

// lookupOrGenerate returns a validated plan for the given preferences,
// reusing a recent identical submission's plan when possible. Validated
// plans are immutable, so sharing the cached pointer is safe.
func (s *Service) lookupOrGenerate(ctx context.Context, prefs models.TripPreferences, req *gemini.GenerationRequest) (*models.TripPlan, error) {
	key := prefs.Fingerprint()
	if cached, ok := s.plans.Get(key); ok {
		if plan, ok := cached.(*models.TripPlan); ok {
			return plan, nil
		}
	}

	raw, err := s.generator.GenerateTrip(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateTrip: %w: %v", models.ErrTransportFailure, err)
	}

	plan, err := ValidatePlan(raw)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateTrip: %w", err)
	}

	s.plans.Set(key, plan, cache.DefaultExpiration)
	return plan, nil
}
