package field

import (
	"fmt"
	"strings"
)

// Direction is one of the four single-step moves.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every valid direction in key-help order.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the (row, col) offset of d. Unknown directions return (0, 0).
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Key returns the single-letter command for d.
func (d Direction) Key() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return ""
}

// ParseDirection accepts U/D/L/R or the full word, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
