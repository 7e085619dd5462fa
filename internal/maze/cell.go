package maze

// CellKind is the semantic type of one maze square.
type CellKind uint8

// Cell kinds.
const (
	Floor CellKind = iota // Walkable, nothing to collect
	Wall                  // Blocks all movement
	Item                  // Walkable, collected by the player
	Spawn                 // Decorative spawn marker, walkable like Floor
)

// Definition symbols.
const (
	SymbolWall  = '#'
	SymbolItem  = '.'
	SymbolFloor = ' '
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Item:
		return "item"
	case Spawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Walkable reports whether entities may stand on the cell.
func (k CellKind) Walkable() bool {
	return k != Wall
}

// kindOf maps a definition symbol to its cell kind.
// Digits are spawn markers; any unknown symbol reads as floor.
func kindOf(r rune) CellKind {
	switch {
	case r == SymbolWall:
		return Wall
	case r == SymbolItem:
		return Item
	case r >= '0' && r <= '9':
		return Spawn
	default:
		return Floor
	}
}
