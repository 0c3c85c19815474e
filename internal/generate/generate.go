// Package generate builds random fields: holes scattered by rejection
// sampling, then a single hat on a remaining empty cell.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"find-your-hat/internal/field"
)

// MaxSide bounds both dimensions so a typo cannot allocate a huge grid.
const MaxSide = 500

// Config drives generation of one field.
type Config struct {
	Length, Width int
	HolePercent   float64 // 0 ≤ HolePercent < 100
	Rand          *rand.Rand
}

// HoleCount returns floor(Length × Width × HolePercent / 100).
func (c *Config) HoleCount() int {
	return int(math.Floor(float64(c.Length*c.Width) * c.HolePercent / 100))
}

// Validate rejects parameters that cannot produce a playable field: every
// field needs one cell for the hat and one empty cell for the player.
func (c *Config) Validate() error {
	if c.Length < 1 || c.Length > MaxSide {
		return fmt.Errorf("%w: length must be between 1 and %d, got %d", field.ErrInvalidConfiguration, MaxSide, c.Length)
	}
	if c.Width < 1 || c.Width > MaxSide {
		return fmt.Errorf("%w: width must be between 1 and %d, got %d", field.ErrInvalidConfiguration, MaxSide, c.Width)
	}
	cells := c.Length * c.Width
	if cells < 2 {
		return fmt.Errorf("%w: field needs at least 2 cells, got %dx%d", field.ErrInvalidConfiguration, c.Length, c.Width)
	}
	if math.IsNaN(c.HolePercent) || c.HolePercent < 0 || c.HolePercent >= 100 {
		return fmt.Errorf("%w: hole percentage must be in [0, 100), got %g", field.ErrInvalidConfiguration, c.HolePercent)
	}
	if holes := c.HoleCount(); holes > cells-2 {
		return fmt.Errorf("%w: %d holes leave no room for the hat and the player on a %dx%d field",
			field.ErrInvalidConfiguration, holes, c.Length, c.Width)
	}
	return nil
}

// Generate returns a new grid for cfg. A nil cfg.Rand is seeded from the clock.
func Generate(cfg *Config) (*field.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := field.NewGrid(cfg.Length, cfg.Width)

	for remaining := cfg.HoleCount(); remaining > 0; {
		if placeOnEmpty(grid, rng, field.CellHole) {
			remaining--
		}
	}
	for placed := false; !placed; {
		placed = placeOnEmpty(grid, rng, field.CellHat)
	}

	return grid, nil
}

// placeOnEmpty picks one uniformly random cell and sets it to c when it is
// empty. Reports whether the cell was placed.
func placeOnEmpty(grid *field.Grid, rng *rand.Rand, c field.Cell) bool {
	row := rng.Intn(grid.Length())
	col := rng.Intn(grid.Width())
	if grid.At(row, col) != field.CellEmpty {
		return false
	}
	grid.Set(row, col, c)
	return true
}
