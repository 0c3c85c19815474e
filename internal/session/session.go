// Package session runs one hat-finding session: it generates the field,
// applies moves, classifies how the session ended and summarizes it.
// Both the terminal UI and the line-mode console drive a Session.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"find-your-hat/internal/field"
	"find-your-hat/internal/generate"

	"github.com/google/uuid"
)

// Params are the player-chosen generation parameters.
type Params struct {
	Length, Width int
	HolePercent   float64
	Seed          int64 // 0 picks a seed from the clock
}

// Config returns the generator config for p using rng.
func (p Params) Config(rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Length:      p.Length,
		Width:       p.Width,
		HolePercent: p.HolePercent,
		Rand:        rng,
	}
}

// Validate checks p without generating anything.
func (p Params) Validate() error {
	return p.Config(nil).Validate()
}

// Session owns one field from generation to its final outcome.
type Session struct {
	ID      string
	Params  Params
	Seed    int64 // seed actually used, for reproducing the field
	Field   *field.Field
	outcome Outcome
	started time.Time
	ended   time.Time
	now     func() time.Time
}

// Start generates a field for p and places the player on it.
func Start(p Params) (*Session, error) {
	return start(p, time.Now)
}

func start(p Params, now func() time.Time) (*Session, error) {
	seed := p.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	grid, err := generate.Generate(p.Config(rand.New(rand.NewSource(seed))))
	if err != nil {
		return nil, fmt.Errorf("generate field: %w", err)
	}
	f, err := field.New(grid)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	return &Session{
		ID:      uuid.NewString(),
		Params:  p,
		Seed:    seed,
		Field:   f,
		started: now(),
		now:     now,
	}, nil
}

// Move applies one move and returns the resulting outcome. Once the
// session has ended further moves are ignored and the final outcome is
// returned. The error is the field's error, if any.
func (s *Session) Move(dir field.Direction) (Outcome, error) {
	if s.Done() {
		return s.outcome, nil
	}
	err := s.Field.Move(dir)
	if o := Classify(s.Field, err); o != OutcomeNone {
		s.finish(o)
	}
	return s.outcome, err
}

// Quit ends a running session with OutcomeQuit.
func (s *Session) Quit() {
	if !s.Done() {
		s.finish(OutcomeQuit)
	}
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.ended = s.now()
}

// Done reports whether the session has an outcome.
func (s *Session) Done() bool { return s.outcome != OutcomeNone }

// Outcome returns the final outcome, or OutcomeNone while playing.
func (s *Session) Outcome() Outcome { return s.outcome }

// Summary describes the session so far.
func (s *Session) Summary() Summary {
	end := s.ended
	if end.IsZero() {
		end = s.now()
	}
	return Summary{
		ID:          s.ID,
		Outcome:     s.outcome,
		Moves:       s.Field.Moves(),
		Length:      s.Params.Length,
		Width:       s.Params.Width,
		HolePercent: s.Params.HolePercent,
		Seed:        s.Seed,
		Duration:    end.Sub(s.started),
	}
}
