// Package logging configures the zerolog logger.
//
// The terminal is owned by the game screen, so logs never go to stdout or
// stderr while playing. They are written to a file when one is configured
// and discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Options selects where and how much to log.
type Options struct {
	Level string // zerolog level name; empty means info
	File  string // log file path; empty discards output
}

// New builds a logger from opts. The returned closer releases the log file
// and is safe to call when logging is discarded.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	if opts.File == "" {
		return zerolog.New(io.Discard).Level(level), nopCloser{}, nil
	}

	if dir := filepath.Dir(opts.File); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
