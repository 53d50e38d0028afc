// Package handlers implements AMQP handling functions.

package handlers

import (
	"context"
	"encoding/json"
	"outcome-service/internal/agent/agent"
	agentModels "outcome-service/internal/agent/models"
	busamqp "outcome-service/internal/bus/amqp"
	busErrors "outcome-service/internal/bus/errors"
	"outcome-service/internal/bus/modelbus"
	"outcome-service/internal/config"
	"outcome-service/internal/constants"
	convErrors "outcome-service/internal/converter/errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	handler     = "convert"
	handlerKey  = "amqp"
	fileNameKey = "fileName"
)

// AMQPHandler defines an AMQP handler object and sets its attributes.
type AMQPHandler struct {
	log     *zerolog.Logger
	amqp    *busamqp.AMQP
	cfg     *config.Config
	convert func(ctx context.Context, fileName string, skipValidation bool, handler string) (*agentModels.Outcome, error)
}

// NewAMQPHandler initializes a new AMQP handling service.
func NewAMQPHandler(logger *zerolog.Logger, agent *agent.Agent, amqp *busamqp.AMQP, cfg *config.Config) *AMQPHandler {
	logger.Debug().Msg("calling initializer of AMQP handling service")
	return &AMQPHandler{
		log:     logger,
		amqp:    amqp,
		cfg:     cfg,
		convert: agent.ConvertStored,
	}
}

// handleConversionQueue converts the entry file named by a delivery and builds the response.
func (h *AMQPHandler) handleConversionQueue(ctx context.Context, d *amqp.Delivery) interface{} {
	h.log.Debug().Msg("calling `handleConversionQueue` method")

	ctxMain, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	msg := modelbus.MsgConvert{}
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		h.log.Error().Err(err).Msg(busErrors.AMQPUnmarshallingError)
		return modelbus.Rsp{Status: constants.ConversionStatusFailed, Error: busErrors.AMQPUnmarshallingError}
	}

	// a message can only relax validation when the service allows it
	skipValidation := msg.SkipValidation && h.cfg.Features.SkipValidation

	outcome, err := h.convert(ctxMain, msg.FileName, skipValidation, handler)
	if err != nil {
		h.log.Error().Err(err).Str(handlerKey, handler).Str(fileNameKey, msg.FileName).Msg(busErrors.AMQPHandlerConversionError)
		status := constants.ConversionStatusFailed
		if convErrors.KindOf(err) == convErrors.KindFormat {
			status = constants.ConversionStatusRejected
		}
		return modelbus.Rsp{FileName: msg.FileName, Status: status, Error: err.Error()}
	}

	h.log.Info().Str(handlerKey, handler).Str(fileNameKey, msg.FileName).Int("entries", outcome.EntryCount).Msg("conversion is complete")
	return modelbus.Rsp{
		ConversionID: outcome.ConversionID,
		FileName:     outcome.FileName,
		Status:       constants.ConversionStatusConverted,
		EntryCount:   outcome.EntryCount,
		OutcomeKey:   outcome.OutcomeKey,
	}
}

// Handle starts the conversion queue listener and blocks until ctx is done or the channel closes.
func (h *AMQPHandler) Handle(ctx context.Context) error {
	h.log.Debug().Msg("calling `Handle` method")
	err := h.amqp.AddQueueListener(
		ctx,
		h.cfg.AMQP.ConversionQueueName,
		h.cfg.AMQP.ConversionExchangeOutputName,
		h.handleConversionQueue,
	)
	if err != nil {
		h.log.Error().Err(err).Msg(busErrors.AMQPListeningError)
		return err
	}
	return nil
}
