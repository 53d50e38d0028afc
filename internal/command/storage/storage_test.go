package storage

import (
	"outcome-service/internal/config"
	storageErrors "outcome-service/internal/storage/errors"
	"outcome-service/internal/storage/v1/psql"
	"outcome-service/internal/syncutils"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func run(cmd *cli.Command) error {
	app := &cli.App{Name: "test", Commands: []*cli.Command{cmd}}
	return app.Run([]string{"test", cmd.Name})
}

func TestCommandsLedgerDisabled(t *testing.T) {
	logger := zerolog.Nop()
	syncUtils := syncutils.NewSyncUtils()
	storage := psql.NewStorage(&config.Config{}, &logger, syncUtils)

	var disabled *storageErrors.DisabledError
	assert.ErrorAs(t, run(NewMigrateCommand(&logger, storage, syncUtils).Describe()), &disabled)
	assert.ErrorAs(t, run(NewResetCommand(&logger, storage, syncUtils).Describe()), &disabled)
}
