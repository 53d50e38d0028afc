// Package amqp implements AMQP service.

package amqp

import (
	"context"
	"encoding/json"
	"errors"
	busErrors "outcome-service/internal/bus/errors"
	"outcome-service/internal/config"
	"outcome-service/internal/syncutils"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// AMQP defines queue client object and sets its attributes.
type AMQP struct {
	mu        sync.Mutex
	config    *config.Config
	log       *zerolog.Logger
	channel   *amqp.Channel
	syncUtils *syncutils.SyncUtils
}

// NewAMQP initializes a new AMQP service. The connection is opened on first use.
func NewAMQP(config *config.Config, logger *zerolog.Logger, syncUtils *syncutils.SyncUtils) *AMQP {
	logger.Debug().Msg("calling initializer of AMQP service")
	return &AMQP{
		config:    config,
		log:       logger,
		syncUtils: syncUtils,
	}
}

// Enabled reports whether AMQP is configured for use.
func (a *AMQP) Enabled() bool {
	return a.config.AMQP.Enabled
}

// Connect opens the connection and declares the topology once.
func (a *AMQP) Connect() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.Enabled() {
		return errors.New(busErrors.AMQPDisabledError)
	}
	if a.channel != nil {
		return nil
	}
	if err := a.init(); err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPInitiationError)
		return err
	}
	return nil
}

// init performs declaration and bindings of queues and exchanges.
func (a *AMQP) init() error {
	a.log.Debug().Msg("calling `init` method")
	conn, err := amqp.Dial(a.config.AMQP.Addr)
	if err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPConnectionError)
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPChannelOpeningError)
		_ = conn.Close()
		return err
	}

	if err = channel.Qos(1, 0, false); err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPSettingQosError)
		_ = conn.Close()
		return err
	}

	cfg := a.config.AMQP
	var waitGroup errgroup.Group

	{ // exchange declaration
		for _, name := range []string{cfg.ConversionExchangeInputName, cfg.ConversionExchangeOutputName} {
			name := name
			waitGroup.Go(func() error {
				return channel.ExchangeDeclare(name, "fanout", true, false, false, false, nil)
			})
		}
		if err := waitGroup.Wait(); err != nil {
			a.log.Error().Err(err).Msg(busErrors.AMQPExchangeDeclarationError)
			_ = conn.Close()
			return err
		}
	}

	{ // queue declaration
		for _, name := range []string{cfg.ConversionQueueName, cfg.OutcomeQueueName} {
			name := name
			waitGroup.Go(func() error {
				_, err := channel.QueueDeclare(name, false, false, false, false, amqp.Table{})
				return err
			})
		}
		if err := waitGroup.Wait(); err != nil {
			a.log.Error().Err(err).Msg(busErrors.AMQPQueueDeclarationError)
			_ = conn.Close()
			return err
		}
	}

	{ // queue binding
		bindings := map[string]string{
			cfg.ConversionQueueName: cfg.ConversionExchangeInputName,
			cfg.OutcomeQueueName:    cfg.ConversionExchangeOutputName,
		}
		for queue, exchange := range bindings {
			queue, exchange := queue, exchange
			waitGroup.Go(func() error {
				return channel.QueueBind(queue, "", exchange, false, nil)
			})
		}
		if err := waitGroup.Wait(); err != nil {
			a.log.Error().Err(err).Msg(busErrors.AMQPQueueBindingError)
			_ = conn.Close()
			return err
		}
	}

	a.channel = channel
	a.syncUtils.OnShutdown(func() {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			a.log.Error().Err(err).Msg("could not close AMQP connection")
			return
		}
		a.log.Debug().Msg("AMQP connection was closed")
	})
	return nil
}

// PublishToExchange publishes a message to the specified exchange.
func (a *AMQP) PublishToExchange(ctx context.Context, exchange string, msg amqp.Publishing) error {
	a.log.Debug().Msg("calling `PublishToExchange` method")
	if err := a.Connect(); err != nil {
		return err
	}

	if err := a.channel.PublishWithContext(ctx, exchange, "", false, false, msg); err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPPublishingError)
		return err
	}

	a.log.Info().Str("exchange", exchange).Msg("message was successfully published to AMQP")
	return nil
}

// PublishJSON serializes v and publishes it to the specified exchange.
func (a *AMQP) PublishJSON(ctx context.Context, exchange string, v interface{}) error {
	serialized, err := json.Marshal(v)
	if err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPMarshallingError)
		return err
	}
	return a.PublishToExchange(ctx, exchange, amqp.Publishing{
		ContentType: "application/json",
		Headers:     amqp.Table{},
		Body:        serialized,
	})
}

// PublishOutcome publishes a conversion result to the output exchange.
func (a *AMQP) PublishOutcome(ctx context.Context, rsp interface{}) error {
	return a.PublishJSON(ctx, a.config.AMQP.ConversionExchangeOutputName, rsp)
}

// AddQueueListener consumes queueName and calls fn for every delivery until the channel closes.
// Every delivery is acknowledged; the result of fn is published to exchangeNameOut.
func (a *AMQP) AddQueueListener(ctx context.Context, queueName, exchangeNameOut string, fn func(ctx context.Context, d *amqp.Delivery) interface{}) error {
	if err := a.Connect(); err != nil {
		return err
	}
	messages, err := a.channel.Consume(queueName,
		"", false, false, false, false, nil)
	if err != nil {
		a.log.Error().Err(err).Msg(busErrors.AMQPConsumingError)
		return err
	}

	a.log.Info().Str("queue", queueName).Msg("AMQP: consumer started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-messages:
			if !ok {
				return nil
			}
			a.log.Debug().Str("body", string(delivery.Body)).Msg("AMQP: received message")

			rsp := fn(ctx, &delivery)
			if ackErr := delivery.Ack(false); ackErr != nil {
				a.log.Error().Err(ackErr).Msg(busErrors.AMQPAckError)
				return ackErr
			}

			if err := a.PublishJSON(ctx, exchangeNameOut, rsp); err != nil {
				a.log.Error().Err(err).Msg(busErrors.AMQPSendingError)
				return err
			}
		}
	}
}
