package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMalformedHeader = errors.New("malformed world header")
	ErrMalformedRow    = errors.New("malformed world row")
	ErrUnknownCell     = errors.New("unknown cell character")
	ErrMultipleStarts  = errors.New("more than one start position")
)

// ParseFile opens and parses a world file.
func ParseFile(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a world in the world file format.
// A world without a start cell parses successfully with a nil Start.
func Parse(r io.Reader) (*World, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("expected column and row counts: %w", ErrMalformedHeader)
	}

	cols, err := parseDimension("columns", lines[0])
	if err != nil {
		return nil, err
	}
	rows, err := parseDimension("rows", lines[1])
	if err != nil {
		return nil, err
	}

	body := lines[2:]
	for len(body) > rows && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	if len(body) != rows {
		return nil, fmt.Errorf("got %d rows, header says %d: %w", len(body), rows, ErrMalformedRow)
	}

	w := &World{}
	cells := make([][]CellKind, rows)
	for r, line := range body {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, header says %d: %w", r, len(line), cols, ErrMalformedRow)
		}

		cells[r] = make([]CellKind, cols)
		for c, ch := range []byte(line) {
			pos := Position{Row: r, Col: c}
			switch ch {
			case emptyChar:
			case blockedChar:
				cells[r][c] = Blocked
			case dirtyChar:
				w.Dirty = append(w.Dirty, pos)
			case startChar:
				if w.Start != nil {
					return nil, fmt.Errorf("%s and %s: %w", *w.Start, pos, ErrMultipleStarts)
				}
				w.Start = &pos
			default:
				return nil, fmt.Errorf("%q at %s: %w", ch, pos, ErrUnknownCell)
			}
		}
	}

	w.Grid, err = NewGrid(cells)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func parseDimension(name, line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, line, ErrMalformedHeader)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d: %w", name, n, ErrMalformedHeader)
	}
	return n, nil
}
