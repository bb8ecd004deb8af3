// Package planapi exposes the planning service over HTTP.
package planapi

import (
	dmn "github.com/beka-birhanu/vacuum-planner/domain"
)

// PlanRequest asks for one search over a world given in the text format.
type PlanRequest struct {
	World    string `json:"world" binding:"required"`
	Strategy string `json:"strategy" binding:"required"`
}

// RunResponse is the JSON view of a recorded run.
type RunResponse struct {
	ID             string   `json:"id"`
	WorldID        string   `json:"world_id"`
	Strategy       string   `json:"strategy"`
	Solved         bool     `json:"solved"`
	Plan           []string `json:"plan"`
	NodesGenerated int      `json:"nodes_generated"`
	NodesExpanded  int      `json:"nodes_expanded"`
	DurationMicros int64    `json:"duration_us"`
	CreatedAt      int64    `json:"created_at"`
}

// BoardResponse lists the best runs for a world.
type BoardResponse struct {
	WorldID string         `json:"world_id"`
	Runs    []*RunResponse `json:"runs"`
}

func toRunResponse(run *dmn.Run) *RunResponse {
	plan := run.Plan
	if plan == nil {
		plan = []string{}
	}
	return &RunResponse{
		ID:             run.ID.String(),
		WorldID:        run.WorldID,
		Strategy:       run.Strategy,
		Solved:         run.Solved,
		Plan:           plan,
		NodesGenerated: run.NodesGenerated,
		NodesExpanded:  run.NodesExpanded,
		DurationMicros: run.Duration.Microseconds(),
		CreatedAt:      run.CreatedAt.Unix(),
	}
}
