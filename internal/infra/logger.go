package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the structured logger passed to every adcraft component.
type Logger = zerolog.Logger

// LogOptions selects where a logger writes and how much it keeps. The zero
// value logs JSON to stdout at info level.
type LogOptions struct {
	Out io.Writer
	// Level applies outside development, which always logs at debug.
	Level   zerolog.Level
	Console bool
}

// NewLogger builds the API logger: JSON on stdout, human-readable console
// output in development.
func NewLogger(appEnv string) Logger {
	return NewLoggerWith(appEnv, LogOptions{Out: os.Stdout, Level: zerolog.InfoLevel})
}

// NewLoggerWith builds a timestamped logger for appEnv from opts.
func NewLoggerWith(appEnv string, opts LogOptions) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	level := opts.Level
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}
	if opts.Console || appEnv == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
