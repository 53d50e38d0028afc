package logger

import (
	"bytes"
	"outcome-service/internal/config"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogLevels(t *testing.T) {
	tests := []struct {
		level int
		want  zerolog.Level
	}{
		{level: 0, want: zerolog.DebugLevel},
		{level: 1, want: zerolog.InfoLevel},
		{level: 2, want: zerolog.WarnLevel},
		{level: 3, want: zerolog.ErrorLevel},
		{level: 42, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		cfg := &config.Config{Logger: config.Logger{Level: tt.level}}
		assert.Equal(t, tt.want, newLog(cfg, &bytes.Buffer{}).GetLevel())
	}
}

func TestNewLogFiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newLog(&config.Config{Logger: config.Logger{Level: 2}}, buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
