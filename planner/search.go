/*
Package planner searches the vacuum world for a plan that cleans every dirty
cell.

A State is the agent position plus the set of cells still dirty. Expand
produces the successors of a state, and two strategies walk the resulting
graph: DepthFirst, which follows one branch as deep as it goes, and
UniformCost, which always expands the cheapest frontier entry and therefore
returns a shortest plan. Both report how many nodes they generated and
expanded so they can be compared on the same world.

Searches are synchronous and own all of their bookkeeping; a Grid can be
shared by any number of concurrent searches.
*/
package planner

import (
	"errors"
	"fmt"
	"slices"

	"github.com/beka-birhanu/vacuum-planner/world"
)

// Strategy names accepted by ByName.
const (
	DepthFirstName  = "depth-first"
	UniformCostName = "uniform-cost"
)

var (
	ErrNoStart         = errors.New("no start position")
	ErrBlockedStart    = errors.New("start position is blocked or outside the grid")
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// Result is the outcome of one search. Solved is false when the frontier ran
// dry without reaching a clean state; that is an answer, not a failure.
type Result struct {
	Plan           []Action
	Solved         bool
	NodesGenerated int // Start state plus every successor produced.
	NodesExpanded  int // States popped and processed, skips excluded.
}

// Strategy is the shared signature of every search strategy.
type Strategy func(grid *world.Grid, start State) Result

var strategies = map[string]Strategy{
	DepthFirstName:  DepthFirst,
	UniformCostName: UniformCost,
}

// ByName resolves a strategy name.
func ByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%q (want one of %v): %w", name, Names(), ErrUnknownStrategy)
	}
	return s, nil
}

// Names lists the known strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Initial builds the start state of a world. It is the only input check the
// engine performs; everything else is trusted to the world parser.
func Initial(w *world.World) (State, error) {
	if w.Start == nil {
		return State{}, ErrNoStart
	}
	if !w.Grid.Open(*w.Start) {
		return State{}, fmt.Errorf("%s: %w", *w.Start, ErrBlockedStart)
	}
	return NewState(*w.Start, NewDirtySet(w.Dirty...)), nil
}

// solved copies the path so the result never aliases frontier storage and an
// empty plan is never nil.
func solved(r Result, path []Action) Result {
	r.Plan = append([]Action{}, path...)
	r.Solved = true
	return r
}
