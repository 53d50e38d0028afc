package psql

import (
	"context"
	"outcome-service/internal/config"
	storageErrors "outcome-service/internal/storage/errors"
	"outcome-service/internal/storage/v1/models"
	"outcome-service/internal/syncutils"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newDisabledStorage(t *testing.T) *Storage {
	t.Helper()
	logger := zerolog.Nop()
	syncUtils := syncutils.NewSyncUtils()
	t.Cleanup(syncUtils.Shutdown)
	return NewStorage(&config.Config{}, &logger, syncUtils)
}

// With the ledger disabled every operation reports DisabledError.
func TestStorageDisabled(t *testing.T) {
	st := newDisabledStorage(t)
	ctx := context.Background()

	assert.False(t, st.Enabled())

	var disabled *storageErrors.DisabledError
	assert.ErrorAs(t, st.Migrate(), &disabled)
	assert.ErrorAs(t, st.DropAll(), &disabled)
	assert.ErrorAs(t, st.AddConversion(ctx, &models.Conversion{ID: "x"}), &disabled)

	_, err := st.GetConversion(ctx, "x")
	assert.ErrorAs(t, err, &disabled)

	_, err = st.GetAllConversions(ctx)
	assert.ErrorAs(t, err, &disabled)
}

func TestCheckInSlice(t *testing.T) {
	st := newDisabledStorage(t)

	assert.True(t, st.checkInSlice([]string{"a", "b"}, "b"))
	assert.False(t, st.checkInSlice([]string{"a", "b"}, "c"))
}
