package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped logger writing JSON lines to w at level.
// An empty level means info.
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// OpenLogger is NewLogger writing to path, or to fallback when path is
// empty. The returned closer must be called when logging is done.
func OpenLogger(level, path string, fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		logger, err := NewLogger(level, fallback)
		return logger, noopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), noopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	logger, err := NewLogger(level, f)
	if err != nil {
		f.Close()
		return zerolog.Nop(), noopCloser{}, err
	}
	return logger, f, nil
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
