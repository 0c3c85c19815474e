package session

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Summary records statistics for one session. It is logged, never stored.
type Summary struct {
	ID          string
	Outcome     Outcome
	Moves       int
	Length      int
	Width       int
	HolePercent float64
	Seed        int64
	Duration    time.Duration
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", s.ID).
		Str("outcome", s.Outcome.String()).
		Int("moves", s.Moves).
		Int("length", s.Length).
		Int("width", s.Width).
		Float64("hole_percent", s.HolePercent).
		Int64("seed", s.Seed).
		Dur("duration", s.Duration)
}

// Log writes s as one info-level event.
func (s Summary) Log(logger zerolog.Logger) {
	logger.Info().Object("session", s).Msg("session finished")
}

// Lines returns the summary as label/value rows for end screens.
func (s Summary) Lines() [][2]string {
	return [][2]string{
		{"Field:", fmt.Sprintf("%d × %d", s.Length, s.Width)},
		{"Holes:", fmt.Sprintf("%g%%", s.HolePercent)},
		{"Moves:", fmt.Sprintf("%d", s.Moves)},
		{"Time:", s.Duration.Round(time.Second).String()},
		{"Seed:", fmt.Sprintf("%d", s.Seed)},
	}
}
