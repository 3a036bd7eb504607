// Package logging wires log/slog to a zerolog backend for the dsakit CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = slog.LevelInfo

// ParseLogLevel converts a level name (debug, info, warn, error) to slog.Level.
// Unknown names yield DefaultLogLevel together with an error.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch {
	case strings.EqualFold(levelStr, slog.LevelDebug.String()):
		return slog.LevelDebug, nil
	case strings.EqualFold(levelStr, slog.LevelInfo.String()):
		return slog.LevelInfo, nil
	case strings.EqualFold(levelStr, slog.LevelWarn.String()):
		return slog.LevelWarn, nil
	case strings.EqualFold(levelStr, slog.LevelError.String()):
		return slog.LevelError, nil
	}

	return DefaultLogLevel, fmt.Errorf("unknown level string: '%s', defaulting to %s", levelStr, DefaultLogLevel)
}

// NewLogger builds a slog.Logger writing to out through zerolog.
// JSON output is used when json is true, a console writer otherwise.
func NewLogger(out io.Writer, level slog.Level, json bool) *slog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	//nolint
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var w io.Writer = out
	if !json {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.StampMicro,
		}
	}
	zerologLogger := zerolog.New(w).
		With().
		Timestamp().
		Stack().
		Logger()

	return slog.New(
		slogzerolog.Option{
			Level:  level,
			Logger: &zerologLogger,
		}.NewZerologHandler(),
	)
}

// ConfigureLogger installs NewLogger(out, level, json) as the slog default.
func ConfigureLogger(out io.Writer, level slog.Level, json bool) {
	slog.SetDefault(NewLogger(out, level, json))
}
