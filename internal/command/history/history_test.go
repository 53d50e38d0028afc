package history

import (
	"bytes"
	"outcome-service/internal/config"
	"outcome-service/internal/storage/v1/models"
	"outcome-service/internal/storage/v1/psql"
	"outcome-service/internal/syncutils"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(cmd *cli.Command, args ...string) error {
	app := &cli.App{Name: "test", Commands: []*cli.Command{cmd}}
	return app.Run(append([]string{"test", cmd.Name}, args...))
}

func disabledStorage() (*zerolog.Logger, *psql.Storage, *syncutils.SyncUtils) {
	logger := zerolog.Nop()
	syncUtils := syncutils.NewSyncUtils()
	return &logger, psql.NewStorage(&config.Config{}, &logger, syncUtils), syncUtils
}

func TestRenderConversions(t *testing.T) {
	out := &bytes.Buffer{}
	renderConversions(out, []*models.Conversion{{
		ID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		FileName:   "EntryFile.txt",
		Status:     "converted",
		EntryCount: 3,
		CreatedAt:  time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC),
	}})

	table := out.String()
	assert.Contains(t, table, "0f8fad5b-d9cb-469f-a165-70867728950e")
	assert.Contains(t, table, "EntryFile.txt")
	assert.Contains(t, table, "2023-07-01T12:00:00Z")
}

func TestListCommandLedgerDisabled(t *testing.T) {
	cmd := NewListCommand(disabledStorage())
	cmd.out = &bytes.Buffer{}
	require.Error(t, run(cmd.Describe()))
}

func TestInfoCommandLedgerDisabled(t *testing.T) {
	cmd := NewInfoCommand(disabledStorage())
	cmd.out = &bytes.Buffer{}
	require.Error(t, run(cmd.Describe(), "--conversion-id", "missing"))
}

func TestInfoCommandRequiresConversionID(t *testing.T) {
	cmd := NewInfoCommand(disabledStorage())
	cmd.out = &bytes.Buffer{}
	assert.Error(t, run(cmd.Describe()))
}
