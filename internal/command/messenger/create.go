// Package messenger provides CLI commands definitions and execution logic.

package messenger

import (
	"context"
	"fmt"
	busamqp "outcome-service/internal/bus/amqp"
	"outcome-service/internal/bus/modelbus"
	"outcome-service/internal/command/errors"
	"outcome-service/internal/config"
	"outcome-service/internal/syncutils"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// CreateCommand defines a new command struct and sets its attributes.
type CreateCommand struct {
	log       *zerolog.Logger
	cfg       *config.Config
	amqp      *busamqp.AMQP
	syncUtils *syncutils.SyncUtils
}

// NewCreateCommand creates a new command instance.
func NewCreateCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	amqp *busamqp.AMQP,
	syncUtils *syncutils.SyncUtils,
) *CreateCommand {
	logger.Debug().Msg("calling initializer of messenger:create command")
	return &CreateCommand{
		log:       logger,
		cfg:       cfg,
		amqp:      amqp,
		syncUtils: syncUtils,
	}
}

// Describe handles command description when invoked.
func (t *CreateCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "messenger",
		Name:     "messenger:create",
		Usage:    "Create an invoice for conversion of an upload stored in S3",
		Action:   t.Execute,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file-name",
				Usage:    "Input file name (as stored in S3)",
				Aliases:  []string{"f"},
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "skip-validation",
				Usage: "Request lenient parsing, honoured only when the service allows it",
			},
		},
	}
}

// Execute runs the command-associated execution logic.
func (t *CreateCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "messenger:create"
		handlerKey = "cli_command"
	)

	msg := modelbus.MsgConvert{
		FileName:       ctx.String("file-name"),
		SkipValidation: ctx.Bool("skip-validation"),
	}

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	ctxMain, cancel := context.WithTimeout(t.syncUtils.Ctx, 5*time.Second)
	defer func() {
		cancel()
		t.syncUtils.Shutdown()
	}()

	exchange := t.cfg.AMQP.ConversionExchangeInputName
	if err := t.amqp.PublishJSON(ctxMain, exchange, msg); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.PublishingInvoiceError)
		return err
	}

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("AMQP: message was published to %s", exchange))
	return nil
}
