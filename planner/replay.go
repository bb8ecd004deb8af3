package planner

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vacuum-planner/world"
)

var (
	ErrIllegalMove = errors.New("move leaves the grid or enters a blocked cell")
	ErrCleanCell   = errors.New("vacuum on a clean cell")
)

// Apply performs a single action on s.
func Apply(s State, grid *world.Grid, a Action) (State, error) {
	if a == Vacuum {
		if !s.dirty.Contains(s.pos) {
			return State{}, fmt.Errorf("%s: %w", s.pos, ErrCleanCell)
		}
		return State{pos: s.pos, dirty: s.dirty.Without(s.pos)}, nil
	}

	for _, m := range moves {
		if m.action != a {
			continue
		}
		target := s.pos.Offset(m.dRow, m.dCol)
		if !grid.Open(target) {
			return State{}, fmt.Errorf("%s from %s: %w", a.Name(), s.pos, ErrIllegalMove)
		}
		return State{pos: target, dirty: s.dirty}, nil
	}
	return State{}, fmt.Errorf("%d: %w", a, ErrUnknownAction)
}

// Replay applies plan from start and returns the final state.
func Replay(grid *world.Grid, start State, plan []Action) (State, error) {
	s := start
	for i, a := range plan {
		next, err := Apply(s, grid, a)
		if err != nil {
			return State{}, fmt.Errorf("step %d: %w", i, err)
		}
		s = next
	}
	return s, nil
}
