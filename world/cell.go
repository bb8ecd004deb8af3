package world

// CellKind is the static kind of a grid cell.
type CellKind uint8

const (
	Empty   CellKind = iota // Empty cells can be entered by the agent.
	Blocked                 // Blocked cells can never be entered.
)

// Characters used by the world file format.
const (
	emptyChar   = '_'
	blockedChar = '#'
	dirtyChar   = '*'
	startChar   = '@'
)

// String returns the world file character for the kind.
func (k CellKind) String() string {
	if k == Blocked {
		return string(blockedChar)
	}
	return string(emptyChar)
}
