// Package logger configures the application's structured logging.
//
// It uses zerolog for all log output. In the local environment logs are
// pretty-printed to the console; everywhere else they are emitted as JSON so
// log pipelines can ingest them directly.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the application logger.
//
// level is parsed leniently; unknown values fall back to info. env selects the
// output format: "local" gets a console writer, anything else JSON to stderr.
func New(env, level string) zerolog.Logger {
	logLevel := parseLevel(level)

	if env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(logLevel).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).
		Level(logLevel).
		With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
