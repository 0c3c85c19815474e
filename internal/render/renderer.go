// Package render draws a field and its status panel onto a tcell screen.
package render

import (
	"find-your-hat/internal/field"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of screen rows reserved below the field.
const HUDHeight = 5

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen      tcell.Screen
	camera      *Camera
	playerStyle tcell.Style
}

// NewRenderer creates a Renderer sized to the screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, playerStyle: PlayerStyle}
	r.Resize()
	return r
}

// Resize recomputes the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	viewH := h - HUDHeight
	if viewH < 0 {
		viewH = 0
	}
	r.camera = NewCamera(w, viewH, CellWidth())
}

// SetPlayerColor sets the background used to highlight the player.
func (r *Renderer) SetPlayerColor(c tcell.Color) {
	r.playerStyle = PlayerStyle.Background(c)
}

// CellWidth is the number of terminal columns the widest field glyph takes.
// The empty-cell glyph is ambiguous-width and is two columns in CJK locales.
func CellWidth() int {
	w := 1
	for _, c := range []field.Cell{field.CellEmpty, field.CellHole, field.CellHat, field.CellPath} {
		if rw := runewidth.RuneWidth(c.Glyph()); rw > w {
			w = rw
		}
	}
	return w
}

// DrawField clears the screen and draws every visible cell of f.
// The player's cell is drawn with PlayerStyle unless SetPlayerColor changed it.
func (r *Renderer) DrawField(f *field.Field) {
	r.screen.Clear()
	grid := f.Grid()
	pos := f.Position()
	r.camera.Fit(grid.Length(), grid.Width(), pos.Row, pos.Col)

	for row := 0; row < grid.Length(); row++ {
		for col := 0; col < grid.Width(); col++ {
			sx, sy, onScreen := r.camera.WorldToScreen(row, col)
			if !onScreen {
				continue
			}
			cell := grid.At(row, col)
			style := styleFor(cell)
			if row == pos.Row && col == pos.Col {
				style = r.playerStyle
			}
			r.putGlyph(sx, sy, cell.Glyph(), style)
		}
	}
}

// putGlyph draws r at (x, y), padding to the camera cell width so wide and
// narrow glyphs line up.
func (r *Renderer) putGlyph(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
	for pad := runewidth.RuneWidth(ch); pad < r.camera.CellWidth; pad++ {
		r.screen.SetContent(x+pad, y, ' ', nil, style)
	}
}
