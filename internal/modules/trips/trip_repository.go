package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"trip-planner/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the trip archive.
type RepositoryInterface interface {
	Save(ctx context.Context, rec *models.TripRecord) error
	FindByID(ctx context.Context, id string) (*models.TripRecord, error)
	List(ctx context.Context, page, limit int) ([]*models.TripRecord, int, error)
}

// Repository is the PostgreSQL implementation of the trip archive.
// Plan and warnings are stored as JSONB alongside a few queryable columns.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new trip repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Save inserts an archived trip.
func (r *Repository) Save(ctx context.Context, rec *models.TripRecord) error {
	planJSON, err := json.Marshal(rec.Plan)
	if err != nil {
		return fmt.Errorf("repository.SaveTrip marshal plan: %w", err)
	}
	warningsJSON, err := json.Marshal(rec.Warnings)
	if err != nil {
		return fmt.Errorf("repository.SaveTrip marshal warnings: %w", err)
	}

	query := `
		INSERT INTO trips (id, trip_name, destination, duration, summary, plan, warnings)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err = r.db.QueryRow(ctx, query,
		rec.ID, rec.TripName, rec.Destination, rec.Duration, rec.Summary, planJSON, warningsJSON,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository.SaveTrip: %w", err)
	}
	return nil
}

// FindByID retrieves one archived trip.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.TripRecord, error) {
	query := `
		SELECT id, trip_name, destination, duration, summary, plan, warnings, created_at
		FROM trips
		WHERE id = $1`

	rec, err := r.scanTrip(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindTripByID: %w", err)
	}
	return rec, nil
}

// List returns archived trips newest first, plus the total count.
func (r *Repository) List(ctx context.Context, page, limit int) ([]*models.TripRecord, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.ListTrips count: %w", err)
	}

	query := `
		SELECT id, trip_name, destination, duration, summary, plan, warnings, created_at
		FROM trips
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.ListTrips: %w", err)
	}
	defer rows.Close()

	records := []*models.TripRecord{}
	for rows.Next() {
		rec, err := r.scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.ListTrips scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository.ListTrips rows: %w", err)
	}
	return records, total, nil
}

func (r *Repository) scanTrip(row pgx.Row) (*models.TripRecord, error) {
	var rec models.TripRecord
	var planJSON, warningsJSON []byte

	err := row.Scan(
		&rec.ID,
		&rec.TripName,
		&rec.Destination,
		&rec.Duration,
		&rec.Summary,
		&planJSON,
		&warningsJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(planJSON, &rec.Plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	if len(warningsJSON) > 0 {
		if err := json.Unmarshal(warningsJSON, &rec.Warnings); err != nil {
			return nil, fmt.Errorf("unmarshal warnings: %w", err)
		}
	}
	return &rec, nil
}
