// Package maze holds the grid the game is played on: cell kinds, the text
// definition format, and the validation that keeps every legal move in bounds.
package maze

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed layouts/classic.txt
var classicLayout string

// Marker is a spawn marker found in the definition.
type Marker struct {
	Pos   Pos
	Digit rune
}

// Maze is a fixed-size rectangular grid of cells enclosed by walls.
// Its shape never changes after Parse; only Item cells mutate, into Floor.
// Cells are stored in row-major order: index = y*width + x.
type Maze struct {
	width   int
	height  int
	cells   []CellKind
	markers []Marker
}

// Parse builds a maze from equal-length text rows.
// It rejects empty, non-rectangular and non-enclosed definitions with an
// error matching ErrInvalidDefinition.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, &DefinitionError{Code: CodeEmpty, Row: -1, Col: -1, Message: "no rows"}
	}

	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}

	width := len(grid[0])
	if width == 0 {
		return nil, &DefinitionError{Code: CodeEmpty, Row: 0, Col: -1, Message: "first row is empty"}
	}
	for y, row := range grid {
		if len(row) != width {
			return nil, &DefinitionError{
				Code:    CodeNotRectangular,
				Row:     y,
				Col:     -1,
				Message: fmt.Sprintf("has %d cells, expected %d", len(row), width),
			}
		}
	}

	m := &Maze{
		width:  width,
		height: len(grid),
		cells:  make([]CellKind, width*len(grid)),
	}

	for y, row := range grid {
		for x, r := range row {
			kind := kindOf(r)
			if m.onBoundary(x, y) && kind != Wall {
				return nil, &DefinitionError{
					Code:    CodeOpenBoundary,
					Row:     y,
					Col:     x,
					Message: fmt.Sprintf("boundary cell is %q, expected %q", r, SymbolWall),
				}
			}
			m.cells[y*width+x] = kind
			if kind == Spawn {
				m.markers = append(m.markers, Marker{Pos: P(x, y), Digit: r})
			}
		}
	}

	return m, nil
}

// ParseText parses a newline-separated definition.
// Carriage returns and trailing blank lines are ignored.
func ParseText(text string) (*Maze, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Parse(lines)
}

// MustParseText is like ParseText but panics on an invalid definition.
// Intended for built-in layouts.
func MustParseText(text string) *Maze {
	m, err := ParseText(text)
	if err != nil {
		panic(err)
	}
	return m
}

// classic is parsed once; callers get clones they may mutate.
var classic = MustParseText(classicLayout)

// Classic returns a fresh copy of the built-in layout.
func Classic() *Maze {
	return classic.Clone()
}

// ClassicDefinition returns the text of the built-in layout.
func ClassicDefinition() string {
	return classicLayout
}

func (m *Maze) onBoundary(x, y int) bool {
	return x == 0 || y == 0 || x == m.width-1 || y == m.height-1
}

// index converts a position to a flat array index.
func (m *Maze) index(p Pos) int {
	return p.Y*m.width + p.X
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBounds returns true if the position is within the grid.
func (m *Maze) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// CellAt returns the kind of the cell at p.
// Out-of-bounds positions report Wall, so a bounds mistake can never
// turn into a legal move.
func (m *Maze) CellAt(p Pos) CellKind {
	if !m.InBounds(p) {
		return Wall
	}
	return m.cells[m.index(p)]
}

// CollectItemAt turns an Item cell into Floor.
// Returns false, changing nothing, if p does not hold an Item.
func (m *Maze) CollectItemAt(p Pos) bool {
	if m.CellAt(p) != Item {
		return false
	}
	m.cells[m.index(p)] = Floor
	return true
}

// HasRemainingItems returns true if at least one Item cell remains.
func (m *Maze) HasRemainingItems() bool {
	for _, c := range m.cells {
		if c == Item {
			return true
		}
	}
	return false
}

// ItemCount returns the number of Item cells left.
func (m *Maze) ItemCount() int {
	count := 0
	for _, c := range m.cells {
		if c == Item {
			count++
		}
	}
	return count
}

// Markers returns the spawn markers in row-major order.
func (m *Maze) Markers() []Marker {
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	cells := make([]CellKind, len(m.cells))
	copy(cells, m.cells)
	return &Maze{
		width:   m.width,
		height:  m.height,
		cells:   cells,
		markers: m.Markers(),
	}
}

// Rows renders the current contents back into the definition format.
func (m *Maze) Rows() []string {
	digits := make(map[Pos]rune, len(m.markers))
	for _, mk := range m.markers {
		digits[mk.Pos] = mk.Digit
	}

	rows := make([]string, m.height)
	for y := range m.height {
		var sb strings.Builder
		for x := range m.width {
			p := P(x, y)
			switch m.CellAt(p) {
			case Wall:
				sb.WriteRune(SymbolWall)
			case Item:
				sb.WriteRune(SymbolItem)
			case Spawn:
				sb.WriteRune(digits[p])
			default:
				sb.WriteRune(SymbolFloor)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the rows joined with newlines.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n")
}
