package session

import (
	"errors"

	"find-your-hat/internal/field"
)

// Outcome is how a session ended, or OutcomeNone while it is still running.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeFoundHat
	OutcomeFellInHole
	OutcomeOutOfBounds
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "playing"
	case OutcomeFoundHat:
		return "found_hat"
	case OutcomeFellInHole:
		return "fell_in_hole"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}

// Won reports whether the player found the hat.
func (o Outcome) Won() bool { return o == OutcomeFoundHat }

// Message is the line shown to the player when the session ends.
func (o Outcome) Message() string {
	switch o {
	case OutcomeFoundHat:
		return "Wow! You found the hat!!"
	case OutcomeFellInHole:
		return `Game over : Player falls into the "hole".`
	case OutcomeOutOfBounds:
		return "Game over : Attempts to move “outside” the field."
	case OutcomeQuit:
		return "Player has quit the game!"
	}
	return ""
}

// Classify maps the result of a move to an outcome. Errors that are not
// game-ending (such as an unknown direction) yield OutcomeNone.
func Classify(f *field.Field, err error) Outcome {
	switch {
	case errors.Is(err, field.ErrFellInHole):
		return OutcomeFellInHole
	case errors.Is(err, field.ErrOutOfBounds):
		return OutcomeOutOfBounds
	case err == nil && f.IsHatFound():
		return OutcomeFoundHat
	}
	return OutcomeNone
}
