package game

import (
	"find-your-hat/internal/render"

	"github.com/gdamore/tcell/v2"
)

// endChoice is what the player picked on the end screen.
type endChoice uint8

const (
	endQuit endChoice = iota
	endRetry
	endSetup
)

// endChoiceForKey maps an end-screen key press to a choice. ok is false for
// keys the end screen ignores.
func endChoiceForKey(ev *tcell.EventKey) (choice endChoice, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return endQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return endRetry, true
		case 's', 'S':
			return endSetup, true
		case 'q', 'Q':
			return endQuit, true
		}
	}
	return endQuit, false
}

// showEndScreen renders the session summary and
// blocks until the player picks what to do next.
func (g *Game) showEndScreen() endChoice {
	sum := g.sess.Summary()
	won := sum.Outcome.Won()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}

		y := 1
		sep(y)
		y += 2

		badge, badgeStyle := "[GAME OVER]", red
		if won {
			badge, badgeStyle = "[FOUND THE HAT]", green
		}
		render.DrawText(g.screen, 2, y, sum.Outcome.Message(), gold)
		render.DrawText(g.screen, sw-len(badge)-1, y, badge, badgeStyle)
		y += 2

		// Labels at column 2, values at column 12.
		for _, row := range sum.Lines() {
			render.DrawText(g.screen, 2, y, row[0], dim)
			render.DrawText(g.screen, 12, y, row[1], white)
			y++
		}
		y++

		sep(y)
		y += 2

		render.DrawText(g.screen, 2, y, "[R] Try Again", green)
		render.DrawText(g.screen, 18, y, "[S] Setup", white)
		render.DrawText(g.screen, 30, y, "[Q] Quit", red)

		g.screen.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return endQuit
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if choice, ok := endChoiceForKey(ev); ok {
				return choice
			}
		}
	}
}
