package world

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid   = errors.New("grid must have at least one row and one column")
	ErrRaggedGrid  = errors.New("grid rows must all have the same width")
	ErrOutOfBounds = errors.New("position is out of the grid")
)

// Position represents the location of a cell in the grid.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Offset returns the position shifted by the given row and column deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Less orders positions row-major.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a read-only rectangular map of cell kinds.
// It is never modified after construction and can be shared between searches.
type Grid struct {
	rows  int
	cols  int
	cells [][]CellKind
}

// NewGrid copies cells into a new Grid.
func NewGrid(cells [][]CellKind) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(cells[0])
	copied := make([][]CellKind, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", r, len(row), cols, ErrRaggedGrid)
		}
		copied[r] = append([]CellKind(nil), row...)
	}

	return &Grid{rows: len(cells), cols: cols, cells: copied}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBound reports whether the position lies inside the grid.
func (g *Grid) InBound(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Kind returns the kind of the cell at p, or ErrOutOfBounds.
func (g *Grid) Kind(p Position) (CellKind, error) {
	if !g.InBound(p) {
		return Blocked, fmt.Errorf("%s: %w", p, ErrOutOfBounds)
	}
	return g.cells[p.Row][p.Col], nil
}

// Open reports whether p is inside the grid and not blocked.
func (g *Grid) Open(p Position) bool {
	return g.InBound(p) && g.cells[p.Row][p.Col] != Blocked
}

// OpenCells returns every non-blocked position in row-major order.
func (g *Grid) OpenCells() []Position {
	var open []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != Blocked {
				open = append(open, Position{Row: r, Col: c})
			}
		}
	}
	return open
}
