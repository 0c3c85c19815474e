package render

import (
	"strings"

	"find-your-hat/internal/field"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// KeyHelp is the one-line reminder of the move keys.
func KeyHelp() string {
	parts := make([]string, 0, len(field.Directions)+1)
	for _, d := range field.Directions {
		parts = append(parts, "["+d.Key()+"] "+d.String())
	}
	parts = append(parts, "[Q] quit")
	return strings.Join(parts, "  ")
}

// DrawHUD renders the status line, the last messages and the key help in
// the bottom HUDHeight rows, then shows the screen.
func (r *Renderer) DrawHUD(status string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, separatorStyle)
	r.drawText(0, hudY+1, status, statusStyle)

	// Message log (last 2 messages).
	start := len(messages) - 2
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, messageStyle)
	}
	r.drawText(0, hudY+4, KeyHelp(), keysStyle)

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text at (x, y), truncated to the screen width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	DrawText(r.screen, x, y, runewidth.Truncate(text, w-x, "…"), style)
}

// DrawText writes text at (x, y) advancing by each rune's display width.
func DrawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// CenterText writes text horizontally centered on row y.
func CenterText(screen tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	DrawText(screen, x, y, text, style)
}
