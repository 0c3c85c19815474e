// Package field implements the hat-finding field: the grid, the player's
// position on it, move outcomes and the text rendering.
//
// A Field is not safe for concurrent use; each session owns its own.
package field

import "fmt"

// Field owns a grid and the player walking on it.
type Field struct {
	grid     *Grid
	pos      Position
	hatFound bool
	moves    int
}

// New takes ownership of grid and spawns the player on the first empty
// cell in row-major order, turning it into path.
func New(grid *Grid) (*Field, error) {
	if grid == nil {
		return nil, ErrNoSpawnSpace
	}
	spawn, ok := grid.Find(CellEmpty)
	if !ok {
		return nil, ErrNoSpawnSpace
	}
	grid.Set(spawn.Row, spawn.Col, CellPath)
	return &Field{grid: grid, pos: spawn}, nil
}

// MoveUp moves the player one row up.
func (f *Field) MoveUp() error { return f.Move(Up) }

// MoveDown moves the player one row down.
func (f *Field) MoveDown() error { return f.Move(Down) }

// MoveLeft moves the player one column left.
func (f *Field) MoveLeft() error { return f.Move(Left) }

// MoveRight moves the player one column right.
func (f *Field) MoveRight() error { return f.Move(Right) }

// Move steps the player one cell in dir. On error the field is unchanged.
// Stepping on the hat marks it found and still moves the player there.
func (f *Field) Move(dir Direction) error {
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return fmt.Errorf("move: %w: %v", ErrUnknownDirection, dir)
	}
	to := Position{Row: f.pos.Row + dr, Col: f.pos.Col + dc}

	if !f.grid.InBounds(to.Row, to.Col) {
		return fmt.Errorf("move %s from %v: %w", dir, f.pos, ErrOutOfBounds)
	}

	switch f.grid.At(to.Row, to.Col) {
	case CellHole:
		return fmt.Errorf("move %s to %v: %w", dir, to, ErrFellInHole)
	case CellHat:
		f.hatFound = true
	}

	f.pos = to
	f.grid.Set(to.Row, to.Col, CellPath)
	f.moves++
	return nil
}

// IsHatFound reports whether the player has stepped on the hat.
func (f *Field) IsHatFound() bool { return f.hatFound }

// Position returns the player's current cell.
func (f *Field) Position() Position { return f.pos }

// Moves returns the number of successful moves.
func (f *Field) Moves() int { return f.moves }

// Grid exposes the grid for drawing. Callers must not modify it.
func (f *Field) Grid() *Grid { return f.grid }

// Render returns the field as text, one line per row.
func (f *Field) Render() string { return f.grid.String() }

func (f *Field) String() string { return f.Render() }
