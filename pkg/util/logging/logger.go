// Package logging constructs zerolog loggers for the library.
package logging

// ABOUTME: Zerolog construction helpers with console and JSON output formats
// ABOUTME: Components receive a logger at construction, never via globals

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger based on level and format configuration.
// Format is "console" or "json".
func New(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case "json":
		out = os.Stdout
	case "console":
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}

	return zerolog.New(out).With().Timestamp().Logger().Level(lvl), nil
}

// Nop returns a disabled logger. Components default to this when the
// caller does not supply one.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
