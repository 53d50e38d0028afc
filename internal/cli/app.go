// Package cli provides a method for new application instantiation.

package cli

import (
	"outcome-service/internal/command"

	"github.com/urfave/cli/v2"
)

const (
	AppName    = "Outcome Service"
	AppVersion = "1.0.0"
)

// NewApp initializes a new cli.App service.
func NewApp(definitions []command.Command) *cli.App {
	commands := make([]*cli.Command, 0, len(definitions))

	for _, definition := range definitions {
		commands = append(commands, definition.Describe())
	}

	return &cli.App{
		Name:     AppName,
		Usage:    "Convert entry files into outcome JSON",
		Version:  AppVersion,
		Commands: commands,
	}
}
