// Package dmn holds the records shared by the service, storage and API layers.
package dmn

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRunNotFound = errors.New("run not found")
)

// Run is one search over one world with one strategy.
type Run struct {
	ID             uuid.UUID     `bson:"_id" json:"id"`
	WorldID        string        `bson:"worldId" json:"world_id"`
	Strategy       string        `bson:"strategy" json:"strategy"`
	Solved         bool          `bson:"solved" json:"solved"`
	Plan           []string      `bson:"plan" json:"plan"`
	NodesGenerated int           `bson:"nodesGenerated" json:"nodes_generated"`
	NodesExpanded  int           `bson:"nodesExpanded" json:"nodes_expanded"`
	Duration       time.Duration `bson:"durationNs" json:"duration_ns"`
	CreatedAt      time.Time     `bson:"createdAt" json:"created_at"`
}
