// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"fmt"
	"outcome-service/internal/agent/agent"
	"outcome-service/internal/api/v1/rest/handlers"
	"outcome-service/internal/bus/amqp"
	amqpHandlers "outcome-service/internal/bus/handlers"
	cli2 "outcome-service/internal/cli"
	"outcome-service/internal/command"
	commandFile "outcome-service/internal/command/file"
	commandHistory "outcome-service/internal/command/history"
	commandHTTP "outcome-service/internal/command/http"
	commandMessenger "outcome-service/internal/command/messenger"
	commandStorage "outcome-service/internal/command/storage"
	"outcome-service/internal/config"
	"outcome-service/internal/converter/v1/converter"
	"outcome-service/internal/logger"
	"outcome-service/internal/s3/s3"
	"outcome-service/internal/storage/v1/psql"
	"outcome-service/internal/syncutils"

	"go.uber.org/dig"
)

var definitions = []interface{}{
	handlers.NewEndpointHandlers,
	commandFile.NewConvertCommand,
	commandFile.NewValidateCommand,
	commandHTTP.NewServeCommand,
	commandHistory.NewListCommand,
	commandHistory.NewInfoCommand,
	commandStorage.NewMigrateCommand,
	commandStorage.NewResetCommand,
	commandMessenger.NewConsumeCommand,
	commandMessenger.NewCreateCommand,
	config.NewConfig,
	logger.NewLog,
	converter.NewConverter,
	s3.NewService,
	psql.NewStorage,
	cli2.NewApp,
	syncutils.NewSyncUtils,
	amqp.NewAMQP,
	amqpHandlers.NewAMQPHandler,
	agent.NewAgent,
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	for _, definition := range definitions {
		if err := container.Provide(definition); err != nil {
			return nil, fmt.Errorf("failed to provide service: %w", err)
		}
	}

	if err := commands(container); err != nil {
		return nil, fmt.Errorf("failed to provide commands: %w", err)
	}

	return container, nil
}

func commands(container *dig.Container) error {
	if err := container.Provide(func(
		httpServeCommand *commandHTTP.ServeCommand,
		fileConvertCommand *commandFile.ConvertCommand,
		fileValidateCommand *commandFile.ValidateCommand,
		historyListCommand *commandHistory.ListCommand,
		historyInfoCommand *commandHistory.InfoCommand,
		migrateCommand *commandStorage.MigrateCommand,
		storageResetCommand *commandStorage.ResetCommand,
		consumeCommand *commandMessenger.ConsumeCommand,
		createCommand *commandMessenger.CreateCommand,
	) []command.Command {
		return []command.Command{
			httpServeCommand,
			fileConvertCommand,
			fileValidateCommand,
			historyListCommand,
			historyInfoCommand,
			migrateCommand,
			storageResetCommand,
			consumeCommand,
			createCommand,
		}
	}); err != nil {
		return fmt.Errorf("failed to define application: %w", err)
	}

	return nil
}
