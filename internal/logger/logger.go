// Package logger builds the application's structured logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger options.
type Config struct {
	Env   string // development -> human-readable console; production -> JSON
	Level string // trace, debug, info, warn, error
}

// New creates a structured logger and redirects the zerolog global logger
// so that packages logging through it share the same configuration.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stderr
	if cfg.Env != "production" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
