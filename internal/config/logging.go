package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger from LogLevel and LogFormat.
func (c Config) SetupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	if c.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	level := zerolog.InfoLevel
	if c.LogLevel != "" {
		if parsed, err := zerolog.ParseLevel(c.LogLevel); err == nil {
			level = parsed
		} else {
			log.Warn().Str("invalid_level", c.LogLevel).Msg("invalid log level, using info")
		}
	}
	zerolog.SetGlobalLevel(level)
}
