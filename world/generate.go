package world

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

const (
	maxMazeDimension = 50
)

var (
	ErrInvalidDimensions = errors.New("invalid world dimensions")
	ErrInvalidFraction   = errors.New("blocked fraction must be within [0, 1]")
	ErrInvalidDirtyCount = errors.New("dirty cell count must not be negative")
)

// GenerateConfig describes a randomly scattered world.
type GenerateConfig struct {
	Rows            int     // Number of rows
	Cols            int     // Number of columns
	BlockedFraction float64 // Probability that any given cell is blocked
	Dirty           int     // Number of dirty cells to place
}

// MazeConfig describes a maze world. Width and Height count rooms, so the
// resulting grid is (2*Height+1) x (2*Width+1) with walls as blocked cells.
type MazeConfig struct {
	Width  int
	Height int
	Dirty  int
}

// Generate builds a world where every cell is blocked with probability
// BlockedFraction, then places the dirty cells and finally the start on
// distinct open cells. When open cells run out fewer dirty cells are placed,
// and the start may be missing altogether.
func Generate(cfg GenerateConfig, rng *rand.Rand) (*World, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Rows, cfg.Cols, ErrInvalidDimensions)
	}
	if cfg.BlockedFraction < 0 || cfg.BlockedFraction > 1 {
		return nil, fmt.Errorf("%v: %w", cfg.BlockedFraction, ErrInvalidFraction)
	}
	if cfg.Dirty < 0 {
		return nil, ErrInvalidDirtyCount
	}

	cells := make([][]CellKind, cfg.Rows)
	for r := range cells {
		cells[r] = make([]CellKind, cfg.Cols)
		for c := range cells[r] {
			if rng.Float64() < cfg.BlockedFraction {
				cells[r][c] = Blocked
			}
		}
	}

	grid, err := NewGrid(cells)
	if err != nil {
		return nil, err
	}
	return populate(grid, cfg.Dirty, rng), nil
}

// GenerateMaze carves a perfect maze with Wilson's algorithm and places the
// dirty cells and the start on open cells.
func GenerateMaze(cfg MazeConfig, rng *rand.Rand) (*World, error) {
	if min(cfg.Width, cfg.Height) <= 0 || max(cfg.Width, cfg.Height) > maxMazeDimension {
		return nil, fmt.Errorf("%dx%d rooms: %w", cfg.Width, cfg.Height, ErrInvalidDimensions)
	}
	if cfg.Dirty < 0 {
		return nil, ErrInvalidDirtyCount
	}

	m := newMaze(cfg.Width, cfg.Height, rng)
	m.generate()

	grid, err := NewGrid(m.cells)
	if err != nil {
		return nil, err
	}
	return populate(grid, cfg.Dirty, rng), nil
}

// populate shuffles the open cells, marks the first n dirty and picks the
// start among the rest.
func populate(grid *Grid, n int, rng *rand.Rand) *World {
	open := grid.OpenCells()
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	n = min(n, len(open))
	dirty := slices.Clone(open[:n])
	slices.SortFunc(dirty, comparePositions)

	w := &World{Grid: grid, Dirty: dirty}
	if rest := open[n:]; len(rest) > 0 {
		start := rest[rng.Intn(len(rest))]
		w.Start = &start
	}
	return w
}

func comparePositions(a, b Position) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// step is one edge of a random walk between two rooms.
type step struct {
	from Position
	to   Position
}

// roomDirections is ordered so that a seeded rng always carves the same maze.
var roomDirections = []Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// maze carves rooms and passages onto a cell grid. Room (r, c) sits at cell
// (2r+1, 2c+1); the wall between two adjacent rooms is the cell between them.
type maze struct {
	width  int
	height int
	cells  [][]CellKind
	rng    *rand.Rand
}

func newMaze(width, height int, rng *rand.Rand) *maze {
	cells := make([][]CellKind, 2*height+1)
	for i := range cells {
		cells[i] = make([]CellKind, 2*width+1)
		for j := range cells[i] {
			cells[i][j] = Blocked
		}
	}
	return &maze{width: width, height: height, cells: cells, rng: rng}
}

func (m *maze) randomRoom() Position {
	return Position{Row: m.rng.Intn(m.height), Col: m.rng.Intn(m.width)}
}

func (m *maze) randomUnvisitedRoom(visited map[Position]struct{}) Position {
	for {
		pos := m.randomRoom()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists the moves from a room to every adjacent room.
func (m *maze) neighbors(pos Position) []step {
	var result []step
	for _, delta := range roomDirections {
		next := pos.Offset(delta.Row, delta.Col)
		if next.Row >= 0 && next.Row < m.height && next.Col >= 0 && next.Col < m.width {
			result = append(result, step{from: pos, to: next})
		}
	}
	return result
}

// open clears a room and, when from differs from to, the wall between them.
func (m *maze) open(s step) {
	m.cells[2*s.from.Row+1][2*s.from.Col+1] = Empty
	m.cells[2*s.to.Row+1][2*s.to.Col+1] = Empty
	m.cells[s.from.Row+s.to.Row+1][s.from.Col+s.to.Col+1] = Empty
}

// randomWalk wanders from start until it hits a visited room, remembering the
// last exit taken from every room. Following those exits from start yields
// the loop-erased path.
func (m *maze) randomWalk(start Position, visited map[Position]struct{}) map[Position]step {
	exits := make(map[Position]step)
	room := start
	for {
		neighbors := m.neighbors(room)
		next := neighbors[m.rng.Intn(len(neighbors))]
		exits[room] = next
		if _, included := visited[next.to]; included {
			return exits
		}
		room = next.to
	}
}

func (m *maze) generate() {
	visited := make(map[Position]struct{})
	first := m.randomRoom()
	visited[first] = struct{}{}
	m.open(step{from: first, to: first})

	for len(visited) < m.width*m.height {
		start := m.randomUnvisitedRoom(visited)
		exits := m.randomWalk(start, visited)

		for room := start; ; {
			if _, done := visited[room]; done {
				break
			}
			move := exits[room]
			m.open(move)
			visited[room] = struct{}{}
			room = move.to
		}
	}
}
