// Package file provides CLI commands definitions and execution logic.

package file

import (
	"fmt"
	"io"
	"os"
	"outcome-service/internal/command/errors"
	"outcome-service/internal/converter/v1/converter"
	"outcome-service/internal/converter/v1/models"
	"outcome-service/internal/converter/v1/parser"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// ValidateCommand defines a new command struct and sets its attributes.
type ValidateCommand struct {
	log  *zerolog.Logger
	conv *converter.Converter
	out  io.Writer
}

// NewValidateCommand creates a new command instance.
func NewValidateCommand(
	logger *zerolog.Logger,
	conv *converter.Converter,
) *ValidateCommand {
	logger.Debug().Msg("calling initializer of file:validate command")
	return &ValidateCommand{
		log:  logger,
		conv: conv,
		out:  os.Stdout,
	}
}

// Describe handles command description when invoked.
func (t *ValidateCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "file",
		Name:     "file:validate",
		Usage:    "Strictly validate a local entry file and print its entries",
		Action:   t.Execute,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file-path",
				Usage:    "Input file path",
				Aliases:  []string{"f"},
				Required: true,
			},
		},
	}
}

// Execute runs the command-associated execution logic.
func (t *ValidateCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "file:validate"
		handlerKey = "cli_command"
	)

	filePath := ctx.String("file-path")

	t.log.Info().Str(handlerKey, handler).Str("filePath", filePath).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	content, err := os.ReadFile(filePath)
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.FileReadingError)
		return err
	}

	entries, err := t.conv.Validate(content)
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.ValidationRunError)
		return err
	}

	t.render(entries)
	t.log.Info().Str(handlerKey, handler).Int("entries", len(entries)).Msg("validation is complete")
	return nil
}

// render prints entries as a table, one column per schema field.
func (t *ValidateCommand) render(entries []models.Entry) {
	table := tablewriter.NewWriter(t.out)
	table.SetHeader(parser.FieldNames())
	for _, e := range entries {
		table.Append([]string{
			e.UUID,
			e.ID,
			e.Name,
			e.Likes,
			e.Transport,
			strconv.FormatFloat(e.AvgSpeed, 'f', -1, 64),
			strconv.FormatFloat(e.TopSpeed, 'f', -1, 64),
		})
	}
	table.Render()
}
