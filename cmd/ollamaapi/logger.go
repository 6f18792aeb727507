package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ollamaapi/internal/config"
)

// newLogger builds the process logger. DEBUG switches to human-readable
// console output at debug level; otherwise LOG_LEVEL picks the level and
// output is JSON.
func newLogger(lc *config.LogConfig, out io.Writer) zerolog.Logger {
	level := parseLevel(lc.Level)
	if lc.Debug {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "ollamaapi").Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
