package itinerary

import (
	"sync"

	"trip-planner/internal/models"
)

// Session is the single piece of mutable core state: the currently loaded
// plan, its reconciliation warnings, and the active day selection. It is
// written only by the generation pipeline and read by everything else, so
// access is guarded by one RWMutex.
//
// Every generation attempt takes a sequence number from Begin. A finished
// attempt may only install its plan while its number is still the newest
// issued; under rapid re-submission the older result is dropped instead of
// clobbering the plan a fresher request produced.
type Session struct {
	mu        sync.RWMutex
	seq       uint64
	plan      *models.TripPlan
	warnings  []models.PlanWarning
	activeDay int
}

// NewSession creates an empty session with no plan loaded.
func NewSession() *Session {
	return &Session{}
}

// Begin reserves a sequence number for a new generation attempt and
// implicitly supersedes every number issued before it.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Install publishes a freshly generated plan, replacing the previous one
// wholesale, and resets the active day to the plan's first day. It returns
// false when seq is stale, in which case nothing changes.
func (s *Session) Install(seq uint64, plan *models.TripPlan, warnings []models.PlanWarning) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}

	s.plan = plan
	s.warnings = warnings
	s.activeDay = 0
	if plan != nil && len(plan.Days) > 0 {
		first := plan.Days[0].Day
		for _, d := range plan.Days[1:] {
			if d.Day < first {
				first = d.Day
			}
		}
		s.activeDay = first
	}
	return true
}

// Current returns the loaded plan, its warnings and the active day, or
// ErrNoPlan when nothing is loaded.
func (s *Session) Current() (*models.TripPlan, []models.PlanWarning, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.plan == nil {
		return nil, nil, 0, models.ErrNoPlan
	}
	return s.plan, s.warnings, s.activeDay, nil
}

// ActiveDay returns the currently selected day, or 0 when no plan is loaded.
func (s *Session) ActiveDay() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeDay
}

// SelectDay moves the active day to the given day number. Selecting a day
// the plan does not contain is ignored. The resulting active day is
// returned either way.
func (s *Session) SelectDay(day int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan == nil {
		return 0
	}
	for _, d := range s.plan.Days {
		if d.Day == day {
			s.activeDay = day
			break
		}
	}
	return s.activeDay
}

// Reset clears the loaded plan and day selection. Sequence numbering is
// untouched so in-flight generations stay correctly ordered.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = nil
	s.warnings = nil
	s.activeDay = 0
}
