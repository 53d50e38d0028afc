package handlers

import (
	"context"
	"errors"
	agentModels "outcome-service/internal/agent/models"
	"outcome-service/internal/bus/modelbus"
	"outcome-service/internal/config"
	"outcome-service/internal/constants"
	convErrors "outcome-service/internal/converter/errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	fileName       string
	skipValidation bool
}

func newTestHandler(skipAllowed bool, calls *[]call, err error) *AMQPHandler {
	logger := zerolog.Nop()
	return &AMQPHandler{
		log: &logger,
		cfg: &config.Config{Features: config.Features{SkipValidation: skipAllowed}},
		convert: func(_ context.Context, fileName string, skipValidation bool, _ string) (*agentModels.Outcome, error) {
			*calls = append(*calls, call{fileName: fileName, skipValidation: skipValidation})
			if err != nil {
				return nil, err
			}
			return &agentModels.Outcome{ConversionID: "c1", FileName: fileName, EntryCount: 2, OutcomeKey: "outcome/c1/entries.json"}, nil
		},
	}
}

func TestHandleConversionQueue(t *testing.T) {
	var calls []call
	h := newTestHandler(false, &calls, nil)

	rsp := h.handleConversionQueue(context.Background(), &amqp.Delivery{Body: []byte(`{"file_name":"entries.txt","skip_validation":true}`)})

	assert.Equal(t, modelbus.Rsp{
		ConversionID: "c1",
		FileName:     "entries.txt",
		Status:       constants.ConversionStatusConverted,
		EntryCount:   2,
		OutcomeKey:   "outcome/c1/entries.json",
	}, rsp)
	require.Len(t, calls, 1)
	assert.False(t, calls[0].skipValidation)
}

func TestHandleConversionQueueSkipAllowed(t *testing.T) {
	var calls []call
	h := newTestHandler(true, &calls, nil)

	h.handleConversionQueue(context.Background(), &amqp.Delivery{Body: []byte(`{"file_name":"entries.txt","skip_validation":true}`)})

	require.Len(t, calls, 1)
	assert.True(t, calls[0].skipValidation)
}

func TestHandleConversionQueueFailures(t *testing.T) {
	var calls []call

	h := newTestHandler(false, &calls, &convErrors.FormatError{Reason: convErrors.WrongFieldCount, Line: "a|b"})
	rsp := h.handleConversionQueue(context.Background(), &amqp.Delivery{Body: []byte(`{"file_name":"entries.txt"}`)}).(modelbus.Rsp)
	assert.Equal(t, constants.ConversionStatusRejected, rsp.Status)
	assert.Contains(t, rsp.Error, "a|b")

	h = newTestHandler(false, &calls, errors.New("s3 down"))
	rsp = h.handleConversionQueue(context.Background(), &amqp.Delivery{Body: []byte(`{"file_name":"entries.txt"}`)}).(modelbus.Rsp)
	assert.Equal(t, constants.ConversionStatusFailed, rsp.Status)

	rsp = h.handleConversionQueue(context.Background(), &amqp.Delivery{Body: []byte(`not json`)}).(modelbus.Rsp)
	assert.Equal(t, constants.ConversionStatusFailed, rsp.Status)
	assert.Len(t, calls, 2)
}
