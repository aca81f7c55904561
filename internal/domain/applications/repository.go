package applications

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a new application and returns it with the
	// store-assigned ID.
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	// List returns all applications ordered by submitted_at descending,
	// ties broken by insertion order.
	List(ctx context.Context) ([]Application, error)
	// UpdateStatus moves an application to a new review state and
	// refreshes updated_at. Moving to APPROVED also marks the referenced
	// dog ADOPTED; both writes happen atomically.
	UpdateStatus(ctx context.Context, id int64, status Status, updatedAt time.Time) (Application, error)
}
