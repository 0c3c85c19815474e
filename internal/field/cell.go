package field

// Cell identifies what occupies one square of the field.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellHole
	CellHat
	CellPath // visited by the player, including the current square
)

// Glyphs used by the text renderer and accepted by Parse.
const (
	GlyphEmpty = '░'
	GlyphHole  = 'O'
	GlyphHat   = '^'
	GlyphPath  = '*'
)

// Glyph returns the display rune for c.
func (c Cell) Glyph() rune {
	switch c {
	case CellHole:
		return GlyphHole
	case CellHat:
		return GlyphHat
	case CellPath:
		return GlyphPath
	default:
		return GlyphEmpty
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellHole:
		return "hole"
	case CellHat:
		return "hat"
	case CellPath:
		return "path"
	}
	return "unknown"
}

// cellFromGlyph is the inverse of Glyph.
func cellFromGlyph(r rune) (Cell, bool) {
	switch r {
	case GlyphEmpty:
		return CellEmpty, true
	case GlyphHole:
		return CellHole, true
	case GlyphHat:
		return CellHat, true
	case GlyphPath:
		return CellPath, true
	}
	return CellEmpty, false
}
