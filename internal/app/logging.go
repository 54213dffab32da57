package app

import (
	"fmt"
	"os"
	"time"

	"roulette_tracker/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging Уровень из флага важнее LOG_LEVEL
func setupLogging(cfg config.LogConfig, levelOverride string) error {
	raw := cfg.Level()
	if levelOverride != "" {
		raw = levelOverride
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format() == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return nil
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	return nil
}
