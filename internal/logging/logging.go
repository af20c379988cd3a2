package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New monta o logger da aplicação. JSON em stdout; nível via LOG_LEVEL.
func New(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		lvl = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "barber-chain").
		Logger()
}
