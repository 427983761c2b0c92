package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// configureLogging sets up a zerolog.Logger the way the reference undock
// CLI's internal/logging package does: a colorized console writer by
// default, JSON when requested, and NO_COLOR honored per https://no-color.org/.
func configureLogging(level string, jsonOutput, noColor bool) zerolog.Logger {
	_, envNoColor := os.LookupEnv("NO_COLOR")

	var w io.Writer = os.Stdout
	if !jsonOutput {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			NoColor:    envNoColor || noColor,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(w).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, defaulting to info")
		lvl = zerolog.InfoLevel
	}

	return logger.Level(lvl)
}
