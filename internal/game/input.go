package game

import (
	"find-your-hat/internal/field"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'u', 'U':
		return ActionMoveUp
	case 'd', 'D':
		return ActionMoveDown
	case 'l', 'L':
		return ActionMoveLeft
	case 'r', 'R':
		return ActionMoveRight
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDirection converts a movement action to a field direction.
// ok is false for actions that do not move the player.
func actionToDirection(a Action) (dir field.Direction, ok bool) {
	switch a {
	case ActionMoveUp:
		return field.Up, true
	case ActionMoveDown:
		return field.Down, true
	case ActionMoveLeft:
		return field.Left, true
	case ActionMoveRight:
		return field.Right, true
	}
	return 0, false
}
