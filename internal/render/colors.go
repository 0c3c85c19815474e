package render

import (
	"find-your-hat/internal/field"

	"github.com/gdamore/tcell/v2"
)

// CellStyles holds the style used for each kind of field cell.
var CellStyles = map[field.Cell]tcell.Style{
	field.CellEmpty: tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 140, 70)),
	field.CellHole:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 90, 40)).Bold(true),
	field.CellHat:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	field.CellPath:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
}

// PlayerStyle highlights the cell the player is standing on.
var PlayerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua).Bold(true)

var (
	separatorStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	messageStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	keysStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// styleFor returns the style for c, falling back to the empty-cell style.
func styleFor(c field.Cell) tcell.Style {
	if s, ok := CellStyles[c]; ok {
		return s
	}
	return CellStyles[field.CellEmpty]
}
