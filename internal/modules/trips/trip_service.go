package trips

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"trip-planner/internal/models"
	"trip-planner/pkg/email"

	"github.com/google/uuid"
)

// ServiceInterface defines the contract for the trip archive service.
type ServiceInterface interface {
	Archive(ctx context.Context, plan *models.TripPlan, warnings []models.PlanWarning) (string, error)
	GetTrip(ctx context.Context, id string) (*models.TripRecord, error)
	ListTrips(ctx context.Context, page, limit int) ([]*models.TripRecord, int, error)
	ShareTrip(ctx context.Context, id, recipient string) error
}

// Service implements the trip archive logic.
type Service struct {
	repo      RepositoryInterface
	emailSvc  email.ServiceInterface // nil when email delivery is not configured
	templates *email.TemplateManager
}

// NewService creates a new trip archive service.
func NewService(repo RepositoryInterface, emailSvc email.ServiceInterface, templates *email.TemplateManager) *Service {
	return &Service{repo: repo, emailSvc: emailSvc, templates: templates}
}

// Archive stores a freshly generated plan and returns the new record ID.
func (s *Service) Archive(ctx context.Context, plan *models.TripPlan, warnings []models.PlanWarning) (string, error) {
	rec := &models.TripRecord{
		ID:          uuid.NewString(),
		TripName:    plan.TripName,
		Destination: plan.Destination,
		Duration:    plan.Duration,
		Summary:     plan.Summary,
		Plan:        plan,
		Warnings:    warnings,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("service.Archive: %w", err)
	}
	return rec.ID, nil
}

// GetTrip retrieves one archived trip.
func (s *Service) GetTrip(ctx context.Context, id string) (*models.TripRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// ListTrips returns archived trips newest first.
func (s *Service) ListTrips(ctx context.Context, page, limit int) ([]*models.TripRecord, int, error) {
	return s.repo.List(ctx, page, limit)
}

// ShareTrip emails an itinerary summary for an archived trip. Fails with
// ErrEmailUnavailable when no sender is configured.
func (s *Service) ShareTrip(ctx context.Context, id, recipient string) error {
	if s.emailSvc == nil {
		return models.ErrEmailUnavailable
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	data := email.ItineraryData{
		TripName:    rec.TripName,
		Destination: rec.Destination,
		Duration:    rec.Duration,
		Summary:     rec.Summary,
		Total:       strconv.FormatFloat(rec.Plan.CostBreakdown.Total, 'f', 2, 64),
	}
	for _, day := range rec.Plan.Days {
		data.Days = append(data.Days, email.ItineraryDay{Day: day.Day, Theme: day.Theme})
	}

	html, err := s.templates.GenerateItineraryEmailHTML(data)
	if err != nil {
		return fmt.Errorf("service.ShareTrip render: %w", err)
	}

	subject := fmt.Sprintf("Your itinerary: %s", rec.TripName)
	text := fmt.Sprintf("%s\n%s, %d days, estimated total $%s\n\n%s\n",
		rec.TripName, rec.Destination, rec.Duration, data.Total, rec.Summary)

	if err := s.emailSvc.SendEmail(ctx, recipient, subject, text, html); err != nil {
		return fmt.Errorf("service.ShareTrip send: %w", err)
	}
	return nil
}
