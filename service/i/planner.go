package i

import (
	"context"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/google/uuid"
)

// Planner runs searches and keeps track of their results.
type Planner interface {
	// Plan searches w with the named strategy and records the run.
	Plan(ctx context.Context, w *world.World, strategy string) (*dmn.Run, error)

	// Compare runs several strategies over the same world side by side.
	Compare(ctx context.Context, w *world.World, strategies ...string) ([]*dmn.Run, error)

	// Run returns a recorded run.
	Run(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// Board returns the best recorded runs for a world, shortest plan first.
	Board(ctx context.Context, worldID string, n int64) ([]*dmn.Run, error)
}
