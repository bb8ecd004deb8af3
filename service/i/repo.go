package i

import (
	"context"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for run persistence operations.
type RunRepo interface {
	// Save inserts or updates a run in the repository.
	Save(ctx context.Context, run *dmn.Run) error

	// ByID retrieves a run by its unique ID.
	// Returns dmn.ErrRunNotFound if no run has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// ByWorld retrieves up to limit runs over the given world, newest first.
	ByWorld(ctx context.Context, worldID string, limit int64) ([]*dmn.Run, error)
}
