package field

import (
	"fmt"
	"strings"
)

// Position is a (row, column) coordinate on the grid.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a fixed-size rectangular field of cells stored row-major.
// Rows are always the same length because a Grid is only built by
// NewGrid or Parse.
type Grid struct {
	length, width int
	cells         [][]Cell
}

// NewGrid creates a length×width grid filled with CellEmpty.
// Non-positive dimensions yield an empty grid.
func NewGrid(length, width int) *Grid {
	if length < 0 {
		length = 0
	}
	if width < 0 {
		width = 0
	}
	cells := make([][]Cell, length)
	for row := range cells {
		cells[row] = make([]Cell, width)
	}
	return &Grid{length: length, width: width, cells: cells}
}

// Parse builds a grid from newline-separated rows of cell glyphs.
// Blank leading and trailing lines are ignored.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return NewGrid(0, 0), nil
	}

	width := len([]rune(lines[0]))
	g := NewGrid(len(lines), width)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d", row, len(runes), width)
		}
		for col, r := range runes {
			c, ok := cellFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("parse grid: invalid glyph %q at %v", r, Position{row, col})
			}
			g.cells[row][col] = c
		}
	}
	return g, nil
}

// Length returns the number of rows.
func (g *Grid) Length() int { return g.length }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.length && col >= 0 && col < g.width
}

// At returns the cell at (row, col). Panics if out of bounds.
func (g *Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

// Set replaces the cell at (row, col). Panics if out of bounds.
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[row][col] = c
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Find returns the first position holding c in row-major order.
func (g *Grid) Find(c Cell) (Position, bool) {
	for row := range g.cells {
		for col, cell := range g.cells[row] {
			if cell == c {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// String renders one line per row with no trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	for row, cells := range g.cells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, c := range cells {
			b.WriteRune(c.Glyph())
		}
	}
	return b.String()
}
