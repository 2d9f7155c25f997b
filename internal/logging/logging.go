// Package logging configures the process-wide zerolog logger. Log output
// goes to stderr so stdout stays free for command output.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var Logger = zerolog.Nop()

// Init sets up the logger at the given level ("debug", "info", "warn",
// "error"; empty means info). Every event carries a short per-invocation run
// id so overlapping hotkey invocations can be told apart in the log.
func Init(level string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return err
		}
		lvl = parsed
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	Logger = zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Str("run", uuid.NewString()[:8]).
		Logger()
	return nil
}

// Debug returns a debug level event.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event.
func Error() *zerolog.Event {
	return Logger.Error()
}
