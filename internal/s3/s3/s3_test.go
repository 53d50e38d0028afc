package s3

import (
	"context"
	"outcome-service/internal/config"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, enabled bool) *Service {
	t.Helper()
	logger := zerolog.Nop()
	cfg := &config.Config{S3Storage: config.S3Storage{
		Enabled:       enabled,
		Region:        "ru-central1",
		Endpoint:      "localhost:9000",
		Bucket:        "outcome-files",
		FolderUpload:  "upload",
		FolderOutcome: "outcome",
	}}
	s, err := NewService(cfg, &logger)
	require.NoError(t, err)
	return s
}

func TestKeys(t *testing.T) {
	s := newService(t, false)

	assert.Equal(t, "upload/entries.txt", s.UploadKey("entries.txt"))
	assert.Equal(t, "outcome/c1/entries.json", s.OutcomeKey("c1", "entries.txt"))
	assert.Equal(t, "outcome/c1/entries.json", s.OutcomeKey("c1", "dir/entries.txt"))
}

func TestDisabledService(t *testing.T) {
	s := newService(t, false)
	ctx := context.Background()

	assert.False(t, s.Enabled())
	assert.Error(t, s.UploadFile(ctx, "k", "text/plain", []byte("x")))
	_, err := s.DownloadFile(ctx, "entries.txt")
	assert.Error(t, err)
	_, err = s.Archive(ctx, "c1", "entries.txt", []byte("x"), []byte("[]"))
	assert.Error(t, err)
}

func TestEnabledServiceCreatesSession(t *testing.T) {
	assert.True(t, newService(t, true).Enabled())
}
