package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger.
// APP_ENV=dev (or development) uses a human-friendly console writer; the
// level comes from LOG_LEVEL (default info, dev defaults to debug).
func NewLogger(env string) zerolog.Logger {
	dev := env == "dev" || env == "development"

	lvl := zerolog.InfoLevel
	if dev {
		lvl = zerolog.DebugLevel
	}
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			lvl = parsed
		}
	}

	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if dev {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return l.Level(lvl)
}
