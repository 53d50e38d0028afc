// Package history provides CLI commands definitions and execution logic.

package history

import (
	"context"
	"fmt"
	"io"
	"os"
	"outcome-service/internal/command/errors"
	"outcome-service/internal/storage/v1/psql"
	"outcome-service/internal/syncutils"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// ListCommand defines a new command struct and sets its attributes.
type ListCommand struct {
	log       *zerolog.Logger
	storage   *psql.Storage
	syncUtils *syncutils.SyncUtils
	out       io.Writer
}

// NewListCommand creates a new command instance.
func NewListCommand(
	logger *zerolog.Logger,
	storage *psql.Storage,
	syncUtils *syncutils.SyncUtils,
) *ListCommand {
	logger.Debug().Msg("calling initializer of history:list command")
	return &ListCommand{
		log:       logger,
		storage:   storage,
		syncUtils: syncUtils,
		out:       os.Stdout,
	}
}

// Describe handles command description when invoked.
func (t *ListCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "history",
		Name:     "history:list",
		Usage:    "List all recorded conversions, newest first",
		Action:   t.Execute,
	}
}

// Execute runs the command-associated execution logic.
func (t *ListCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "history:list"
		handlerKey = "cli_command"
	)

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	ctxMain, cancel := context.WithTimeout(t.syncUtils.Ctx, 2*time.Second)
	defer func() {
		cancel()
		t.syncUtils.Shutdown()
	}()

	conversions, err := t.storage.GetAllConversions(ctxMain)
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.GettingConversionsError)
		return err
	}

	renderConversions(t.out, conversions)
	return nil
}
