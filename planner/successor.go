package planner

import "github.com/beka-birhanu/vacuum-planner/world"

// Successor is one outgoing edge of a state.
type Successor struct {
	Action Action
	State  State
}

// moves lists the directional actions in emission order.
var moves = [...]struct {
	action     Action
	dRow, dCol int
}{
	{North, -1, 0},
	{South, 1, 0},
	{West, 0, -1},
	{East, 0, 1},
}

// Expand returns every state reachable from s in one action. Moves come
// first in North, South, West, East order, skipping targets that are out of
// the grid or blocked; Vacuum comes last and only when the current cell is
// dirty.
func Expand(s State, grid *world.Grid) []Successor {
	successors := make([]Successor, 0, len(moves)+1)
	for _, m := range moves {
		target := s.pos.Offset(m.dRow, m.dCol)
		if !grid.Open(target) {
			continue
		}
		successors = append(successors, Successor{
			Action: m.action,
			State:  State{pos: target, dirty: s.dirty},
		})
	}

	if s.dirty.Contains(s.pos) {
		successors = append(successors, Successor{
			Action: Vacuum,
			State:  State{pos: s.pos, dirty: s.dirty.Without(s.pos)},
		})
	}
	return successors
}
