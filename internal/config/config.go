// Package config holds the settings shared by the local game and the SSH
// server, and builds their loggers.
package config

import (
	"fmt"

	"find-your-hat/internal/session"

	"github.com/rs/zerolog"
)

// Settings are the user-facing knobs, filled from flags, environment
// variables and an optional .env file.
type Settings struct {
	Length      int
	Width       int
	HolePercent float64
	Seed        int64 // 0 picks a seed from the clock
	Plain       bool  // line-mode console instead of the full-screen UI
	SkipSetup   bool  // start playing without the setup screen
	LogLevel    string
	LogFile     string
}

// Default returns the settings used when nothing else is given.
func Default() Settings {
	return Settings{
		Length:      10,
		Width:       10,
		HolePercent: 20,
		LogLevel:    "info",
	}
}

// Params converts s to session generation parameters.
func (s Settings) Params() session.Params {
	return session.Params{
		Length:      s.Length,
		Width:       s.Width,
		HolePercent: s.HolePercent,
		Seed:        s.Seed,
	}
}

// Validate checks the field parameters and the log level.
func (s Settings) Validate() error {
	if err := s.Params().Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("config validation: log level %q: %w", s.LogLevel, err)
	}
	return nil
}
