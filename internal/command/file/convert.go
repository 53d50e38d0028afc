// Package file provides CLI commands definitions and execution logic.

package file

import (
	"context"
	"fmt"
	"os"
	"outcome-service/internal/agent/agent"
	"outcome-service/internal/agent/models"
	"outcome-service/internal/command/errors"
	"outcome-service/internal/config"
	"outcome-service/internal/syncutils"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// ConvertCommand defines a new command struct and sets its attributes.
type ConvertCommand struct {
	log       *zerolog.Logger
	cfg       *config.Config
	syncUtils *syncutils.SyncUtils
	agent     *agent.Agent
}

// NewConvertCommand creates a new command instance.
func NewConvertCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	syncUtils *syncutils.SyncUtils,
	agent *agent.Agent,
) *ConvertCommand {
	logger.Debug().Msg("calling initializer of file:convert command")
	return &ConvertCommand{
		log:       logger,
		cfg:       cfg,
		syncUtils: syncUtils,
		agent:     agent,
	}
}

// Describe handles command description when invoked.
func (t *ConvertCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "file",
		Name:     "file:convert",
		Usage:    "Convert a local entry file into an outcome JSON file",
		Action:   t.Execute,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file-path",
				Usage:    "Input file path",
				Aliases:  []string{"f"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "Output file path, `-` for stdout",
				Aliases: []string{"o"},
				Value:   t.cfg.Upload.OutcomeFileName,
			},
			&cli.BoolFlag{
				Name:  "skip-validation",
				Usage: "Skip upload checks and parse lines leniently",
				Value: t.cfg.Features.SkipValidation,
			},
		},
	}
}

// Execute runs the command-associated execution logic.
func (t *ConvertCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "file:convert"
		handlerKey = "cli_command"
	)

	var (
		filePath       = ctx.String("file-path")
		output         = ctx.String("output")
		skipValidation = ctx.Bool("skip-validation")
	)

	t.log.Info().Str(handlerKey, handler).Str("filePath", filePath).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	ctxMain, cancel := context.WithTimeout(t.syncUtils.Ctx, 60*time.Second)
	defer func() {
		cancel()
		t.syncUtils.Shutdown()
	}()

	content, err := os.ReadFile(filePath)
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.FileReadingError)
		return err
	}

	upload := &models.Upload{FileName: filepath.Base(filePath), Content: content}
	outcome, _, errorCode := t.agent.ConvertUpload(ctxMain, upload, skipValidation, handler)
	if outcome == nil {
		t.log.Error().Str(handlerKey, handler).Str("reason", errorCode).Msg(errors.ConversionRunError)
		return fmt.Errorf("%s: %s", errors.ConversionRunError, errorCode)
	}

	if output == "-" {
		_, err = os.Stdout.Write(append(outcome.Body, '\n'))
	} else {
		err = os.WriteFile(output, outcome.Body, 0o644)
	}
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.FileWritingError)
		return err
	}

	t.log.Info().Str(handlerKey, handler).Str("conversionID", outcome.ConversionID).Int("entries", outcome.EntryCount).Str("output", output).Msg("conversion is complete")
	return nil
}
