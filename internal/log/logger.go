package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Production emits machine-readable JSON
// on stdout; everything else gets the console writer and debug level.
func New(environment string) zerolog.Logger {
	var logger zerolog.Logger
	if environment == "production" {
		logger = zerolog.New(os.Stdout)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(output)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return logger.With().
		Timestamp().
		Str("env", environment).
		Logger()
}
