/*
Package world provides the vacuum world: a rectangular grid of empty and
blocked cells, the agent start position and the cells that need cleaning.

Worlds are read from and written to a small text format (columns, rows, then
one line per row using `_` empty, `#` blocked, `*` dirty and `@` start) and
can be generated randomly, either as scattered obstacles or as a maze built
with Wilson's algorithm.
*/
package world

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// World bundles a grid with the agent start and the initially dirty cells.
type World struct {
	Grid  *Grid      // Static cell layout.
	Start *Position  // Agent start; nil when the world has none.
	Dirty []Position // Cells requiring a vacuum action, row-major.
}

// String renders the world in the world file format.
func (w *World) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(w.Grid.Cols()))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(w.Grid.Rows()))
	b.WriteByte('\n')

	dirty := make(map[Position]struct{}, len(w.Dirty))
	for _, p := range w.Dirty {
		dirty[p] = struct{}{}
	}

	for r := 0; r < w.Grid.Rows(); r++ {
		for c := 0; c < w.Grid.Cols(); c++ {
			pos := Position{Row: r, Col: c}
			_, isDirty := dirty[pos]
			switch {
			case w.Start != nil && *w.Start == pos:
				b.WriteByte(startChar)
			case isDirty:
				b.WriteByte(dirtyChar)
			case w.Grid.cells[r][c] == Blocked:
				b.WriteByte(blockedChar)
			default:
				b.WriteByte(emptyChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ID returns a short content hash identifying the world layout.
// Two worlds with the same text rendering share an ID.
func (w *World) ID() string {
	sum := sha256.Sum256([]byte(w.String()))
	return hex.EncodeToString(sum[:8])
}
