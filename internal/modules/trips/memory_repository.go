package trips

import (
	"context"
	"sync"
	"time"

	"trip-planner/internal/models"
)

// MemoryRepository is the in-memory trip archive used when no database is
// configured. Records live only for the life of the process.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.TripRecord
	ordered []*models.TripRecord // newest first
}

// NewMemoryRepository creates an empty in-memory archive.
func NewMemoryRepository() RepositoryInterface {
	return &MemoryRepository{byID: make(map[string]*models.TripRecord)}
}

// Save stores the record. CreatedAt is stamped here when unset, matching
// the database default.
func (r *MemoryRepository) Save(_ context.Context, rec *models.TripRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.byID[rec.ID] = rec
	r.ordered = append([]*models.TripRecord{rec}, r.ordered...)
	return nil
}

// FindByID retrieves one archived trip.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*models.TripRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

// List returns archived trips newest first, plus the total count.
func (r *MemoryRepository) List(_ context.Context, page, limit int) ([]*models.TripRecord, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.ordered)
	start := (page - 1) * limit
	if start >= total {
		return []*models.TripRecord{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]*models.TripRecord, end-start)
	copy(out, r.ordered[start:end])
	return out, total, nil
}
