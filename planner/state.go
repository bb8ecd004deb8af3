package planner

import (
	"slices"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vacuum-planner/world"
)

// DirtySet is an immutable set of cells that still need cleaning.
// Members are kept sorted row-major, so equal sets share the same key
// regardless of the order they were built in.
type DirtySet struct {
	cells []world.Position
	key   string
}

// NewDirtySet builds a set from positions; duplicates are ignored.
func NewDirtySet(positions ...world.Position) DirtySet {
	cells := slices.Clone(positions)
	slices.SortFunc(cells, func(a, b world.Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	cells = slices.Compact(cells)
	return DirtySet{cells: cells, key: dirtyKey(cells)}
}

func dirtyKey(cells []world.Position) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(strconv.Itoa(c.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(';')
	}
	return b.String()
}

// Len returns the number of dirty cells.
func (d DirtySet) Len() int { return len(d.cells) }

// Empty reports whether every cell is clean.
func (d DirtySet) Empty() bool { return len(d.cells) == 0 }

// Contains reports whether p is dirty.
func (d DirtySet) Contains(p world.Position) bool {
	_, found := d.index(p)
	return found
}

// Without returns a new set lacking p. The receiver is left untouched.
func (d DirtySet) Without(p world.Position) DirtySet {
	i, found := d.index(p)
	if !found {
		return d
	}
	cells := make([]world.Position, 0, len(d.cells)-1)
	cells = append(cells, d.cells[:i]...)
	cells = append(cells, d.cells[i+1:]...)
	return DirtySet{cells: cells, key: dirtyKey(cells)}
}

// Positions returns a copy of the members in row-major order.
func (d DirtySet) Positions() []world.Position {
	return slices.Clone(d.cells)
}

// Equal reports whether both sets hold the same cells.
func (d DirtySet) Equal(o DirtySet) bool {
	return d.key == o.key
}

func (d DirtySet) index(p world.Position) (int, bool) {
	return slices.BinarySearchFunc(d.cells, p, func(c, target world.Position) int {
		if c.Row != target.Row {
			return c.Row - target.Row
		}
		return c.Col - target.Col
	})
}

// State is a snapshot of search progress: where the agent is and what is
// left to clean. States are values; transitions always build new ones.
type State struct {
	pos   world.Position
	dirty DirtySet
}

// StateKey is the comparable identity of a State.
type StateKey struct {
	Pos   world.Position
	Dirty string
}

// NewState returns the state with the agent at pos and the given dirty cells.
func NewState(pos world.Position, dirty DirtySet) State {
	return State{pos: pos, dirty: dirty}
}

// Position returns the agent position.
func (s State) Position() world.Position { return s.pos }

// Dirty returns the cells still to clean.
func (s State) Dirty() DirtySet { return s.dirty }

// Goal reports whether nothing is left to clean.
func (s State) Goal() bool { return s.dirty.Empty() }

// Key returns the structural identity used for de-duplication.
func (s State) Key() StateKey {
	return StateKey{Pos: s.pos, Dirty: s.dirty.key}
}

// Equal reports whether both states have the same position and dirty cells.
func (s State) Equal(o State) bool {
	return s.pos == o.pos && s.dirty.Equal(o.dirty)
}
