package field

import "errors"

var (
	// ErrInvalidConfiguration means generation parameters cannot produce a
	// playable field.
	ErrInvalidConfiguration = errors.New("invalid field configuration")

	// ErrNoSpawnSpace means the grid has no empty cell for the player.
	ErrNoSpawnSpace = errors.New("can't find space to place the player")

	// ErrOutOfBounds means a move would leave the field.
	ErrOutOfBounds = errors.New("attempted to move outside the field")

	// ErrFellInHole means a move landed on a hole.
	ErrFellInHole = errors.New("player fell into a hole")

	// ErrUnknownDirection means a key or name does not map to a direction.
	ErrUnknownDirection = errors.New("unknown direction")
)
