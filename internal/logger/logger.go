// Package logger provides logging functionality.

package logger

import (
	"io"
	"os"
	"outcome-service/internal/config"
	"time"

	"github.com/rs/zerolog"
)

// levels maps LOG_LEVEL values to zerolog levels.
var levels = map[int]zerolog.Level{
	0: zerolog.DebugLevel,
	1: zerolog.InfoLevel,
	2: zerolog.WarnLevel,
	3: zerolog.ErrorLevel,
}

// NewLog initializes a logger.
func NewLog(cfg *config.Config) *zerolog.Logger {
	return newLog(cfg, zerolog.ConsoleWriter{Out: os.Stdout})
}

func newLog(cfg *config.Config, out io.Writer) *zerolog.Logger {
	level, ok := levels[cfg.Logger.Level]
	if !ok {
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(out).With().Timestamp().Logger().Level(level)
	return &logger
}
