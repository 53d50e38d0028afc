package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.False(t, cfg.Features.SkipValidation)
	assert.Equal(t, ":8080", cfg.Server.ServerAddress)
	assert.Equal(t, 120*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxSize)
	assert.Equal(t, "file", cfg.Upload.FieldName)
	assert.Equal(t, "OutcomeFile.json", cfg.Upload.OutcomeFileName)
	assert.False(t, cfg.DB.Enabled)
	assert.False(t, cfg.S3Storage.Enabled)
	assert.False(t, cfg.AMQP.Enabled)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("FEATURES_SKIP_VALIDATION", "true")
	t.Setenv("UPLOAD_MAX_SIZE", "1024")
	t.Setenv("LOG_LEVEL", "2")

	cfg := NewConfig()

	assert.True(t, cfg.Features.SkipValidation)
	assert.Equal(t, int64(1024), cfg.Upload.MaxSize)
	assert.Equal(t, 2, cfg.Logger.Level)
}

func TestNewConfigPanicsOnBadValue(t *testing.T) {
	t.Setenv("FEATURES_SKIP_VALIDATION", "maybe")

	assert.Panics(t, func() { NewConfig() })
}
