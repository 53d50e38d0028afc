// Package http provides CLI commands definitions and execution logic.

package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	_ "outcome-service/docs"
	"outcome-service/internal/api/v1/rest/handlers"
	"outcome-service/internal/config"
	"outcome-service/internal/syncutils"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const DefaultHTTPPort = 8080

// ServeCommand defines a new command struct and sets its attributes.
type ServeCommand struct {
	log              *zerolog.Logger
	cfg              *config.Config
	endpointHandlers *handlers.EndpointHandlers
	syncUtils        *syncutils.SyncUtils
}

// NewServeCommand creates a new command instance.
func NewServeCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	endpointHandlers *handlers.EndpointHandlers,
	syncUtils *syncutils.SyncUtils,
) *ServeCommand {
	logger.Debug().Msg("calling initializer of http:serve command")
	return &ServeCommand{
		log:              logger,
		cfg:              cfg,
		syncUtils:        syncUtils,
		endpointHandlers: endpointHandlers,
	}
}

// Describe handles command description when invoked.
func (t *ServeCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "http",
		Name:     "http:serve",
		Usage:    "Start HTTP server accepting entry file uploads",
		Action:   t.Execute,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port",
				Aliases: []string{"p"},
				Value:   DefaultHTTPPort,
			},
		},
	}
}

// Execute runs the command-associated execution logic.
func (t *ServeCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "http:serve"
		handlerKey = "cli_command"
	)
	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	addr := net.JoinHostPort("", strconv.Itoa(ctx.Int("port")))
	if addr != t.cfg.Server.ServerAddress {
		t.log.Warn().Str("env address", t.cfg.Server.ServerAddress).Str("kwargs address", addr).Msg("server address override")
	}
	t.log.Info().Bool("skip_validation", t.cfg.Features.SkipValidation).Msg("feature flags")

	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(t.endpointHandlers),
		IdleTimeout:  t.cfg.Server.IdleTimeout,
		ReadTimeout:  t.cfg.Server.ReadTimeout,
		WriteTimeout: t.cfg.Server.WriteTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	shutdownErr := make(chan error, 1)
	go func() {
		<-done
		t.log.Info().Msg("server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelTO()
		shutdownErr <- srv.Shutdown(ctxTO)
	}()

	t.log.Info().Str("address", addr).Msg("server start attempted")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		t.log.Error().Err(err).Msg("server start failed")
		t.syncUtils.Shutdown()
		return err
	}

	err := <-shutdownErr
	t.syncUtils.Shutdown()
	if err != nil {
		t.log.Error().Err(err).Msg("server shutdown failed")
		return err
	}

	t.log.Info().Msg("server shutdown succeeded")
	return nil
}
