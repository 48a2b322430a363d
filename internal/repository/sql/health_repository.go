package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lookai-app/backend/internal/repository"
)

// HealthRepository verifies store connectivity with a trivial round trip.
type HealthRepository struct {
	db *sql.DB
}

// NewHealthRepository creates a new HealthRepository instance.
func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Now round-trips a trivial query to the store and returns the store's
// current time.
func (r *HealthRepository) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.db.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return time.Time{}, &repository.StorageError{Err: fmt.Errorf("failed to query store time: %w", err)}
	}
	return now, nil
}
