// Package history provides CLI commands definitions and execution logic.

package history

import (
	"context"
	"fmt"
	"io"
	"os"
	"outcome-service/internal/command/errors"
	"outcome-service/internal/storage/v1/models"
	"outcome-service/internal/storage/v1/psql"
	"outcome-service/internal/syncutils"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// InfoCommand defines a new command struct and sets its attributes.
type InfoCommand struct {
	log       *zerolog.Logger
	storage   *psql.Storage
	syncUtils *syncutils.SyncUtils
	out       io.Writer
}

// NewInfoCommand creates a new command instance.
func NewInfoCommand(
	logger *zerolog.Logger,
	storage *psql.Storage,
	syncUtils *syncutils.SyncUtils,
) *InfoCommand {
	logger.Debug().Msg("calling initializer of history:info command")
	return &InfoCommand{
		log:       logger,
		storage:   storage,
		syncUtils: syncUtils,
		out:       os.Stdout,
	}
}

// Describe handles command description when invoked.
func (t *InfoCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "history",
		Name:     "history:info",
		Usage:    "Show one recorded conversion",
		Action:   t.Execute,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "conversion-id",
				Usage:    "Conversion identifier (conversionID)",
				Aliases:  []string{"c"},
				Required: true,
			},
		},
	}
}

// Execute runs the command-associated execution logic.
func (t *InfoCommand) Execute(ctx *cli.Context) error {
	const (
		handler         = "history:info"
		handlerKey      = "cli_command"
		conversionIDKey = "conversionID"
	)

	conversionID := ctx.String("conversion-id")

	t.log.Info().Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	ctxMain, cancel := context.WithTimeout(t.syncUtils.Ctx, 500*time.Millisecond)
	defer func() {
		cancel()
		t.syncUtils.Shutdown()
	}()

	conversion, err := t.storage.GetConversion(ctxMain, conversionID)
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg(errors.GettingConversionError)
		return err
	}

	renderConversions(t.out, []*models.Conversion{conversion})
	return nil
}
