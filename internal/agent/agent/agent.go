// Package agent provides intermediary functionality for HTTP, AMQP and CLI handlers.

package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	agentErrors "outcome-service/internal/agent/errors"
	"outcome-service/internal/agent/models"
	"outcome-service/internal/bus/amqp"
	"outcome-service/internal/bus/modelbus"
	"outcome-service/internal/config"
	"outcome-service/internal/constants"
	convErrors "outcome-service/internal/converter/errors"
	"outcome-service/internal/converter/v1/converter"
	convModels "outcome-service/internal/converter/v1/models"
	"outcome-service/internal/s3/s3"
	storageErrors "outcome-service/internal/storage/errors"
	storageModels "outcome-service/internal/storage/v1/models"
	"outcome-service/internal/storage/v1/psql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	handlerKey      = "handler"
	conversionIDKey = "conversionID"
	fileNameKey     = "fileName"
)

type (
	entryConverter interface {
		Convert(content []byte, skipValidation bool) (*convModels.Result, error)
	}
	ledger interface {
		Enabled() bool
		AddConversion(ctx context.Context, conversion *storageModels.Conversion) error
		GetConversion(ctx context.Context, conversionID string) (*storageModels.Conversion, error)
	}
	archive interface {
		Enabled() bool
		DownloadFile(ctx context.Context, fileName string) ([]byte, error)
		Archive(ctx context.Context, conversionID, fileName string, content, outcome []byte) (string, error)
	}
	publisher interface {
		Enabled() bool
		PublishOutcome(ctx context.Context, rsp interface{}) error
	}
)

// Agent defines an Agent object and sets its attributes.
type Agent struct {
	log     *zerolog.Logger
	cfg     *config.Config
	conv    entryConverter
	ledger  ledger
	archive archive
	bus     publisher
	now     func() time.Time
}

// NewAgent initializes an Agent object.
func NewAgent(
	logger *zerolog.Logger,
	cfg *config.Config,
	conv *converter.Converter,
	storage *psql.Storage,
	s3 *s3.Service,
	bus *amqp.AMQP) *Agent {
	logger.Debug().Msg("calling initializer of agent service")
	return &Agent{
		log:     logger,
		cfg:     cfg,
		conv:    conv,
		ledger:  storage,
		archive: s3,
		bus:     bus,
		now:     time.Now,
	}
}

// CheckUpload applies the upload-level checks performed when validation is enabled.
func (a *Agent) CheckUpload(upload *models.Upload, skipValidation bool, handler string) (int, string) {
	a.log.Debug().Msg("calling `CheckUpload` method")
	if skipValidation {
		a.log.Info().Str(handlerKey, handler).Str(fileNameKey, upload.FileName).Msg("validation skipped for file")
		return http.StatusOK, ""
	}
	if len(upload.Content) == 0 {
		a.log.Warn().Str(handlerKey, handler).Msg("rejected empty file upload")
		return http.StatusBadRequest, agentErrors.EmptyFileError
	}
	if !strings.HasSuffix(upload.FileName, constants.EntryFileExtension) {
		a.log.Warn().Str(handlerKey, handler).Str(fileNameKey, upload.FileName).Msg("rejected file with unsupported type")
		return http.StatusUnsupportedMediaType, agentErrors.UnsupportedFileTypeError
	}
	return http.StatusOK, ""
}

// ConvertUpload checks and converts an uploaded entry file and maps failures to an HTTP status and code.
func (a *Agent) ConvertUpload(ctx context.Context, upload *models.Upload, skipValidation bool, handler string) (*models.Outcome, int, string) {
	a.log.Debug().Msg("calling `ConvertUpload` method")
	if status, code := a.CheckUpload(upload, skipValidation, handler); status != http.StatusOK {
		return nil, status, code
	}

	outcome, err := a.convert(ctx, upload, skipValidation, handler, convertOptions{publish: true})
	if err != nil {
		if convErrors.KindOf(err) == convErrors.KindFormat {
			return nil, http.StatusBadRequest, err.Error()
		}
		return nil, http.StatusInternalServerError, agentErrors.UnexpectedError
	}
	return outcome, http.StatusOK, ""
}

// ConvertStored converts an entry file previously uploaded to S3 and archives its outcome.
func (a *Agent) ConvertStored(ctx context.Context, fileName string, skipValidation bool, handler string) (*models.Outcome, error) {
	a.log.Debug().Msg("calling `ConvertStored` method")
	content, err := a.archive.DownloadFile(ctx, fileName)
	if err != nil {
		a.log.Error().Err(err).Str(handlerKey, handler).Str(fileNameKey, fileName).Msg(agentErrors.DownloadingError)
		return nil, err
	}

	upload := &models.Upload{FileName: fileName, Content: content}
	if status, code := a.CheckUpload(upload, skipValidation, handler); status != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", code, fileName)
	}
	return a.convert(ctx, upload, skipValidation, handler, convertOptions{requireArchive: true})
}

// GetConversion queries a conversion record of the ledger.
func (a *Agent) GetConversion(ctx context.Context, conversionID, handler string) (*storageModels.Conversion, int, string) {
	a.log.Debug().Msg("calling `GetConversion` method")
	if !a.ledger.Enabled() {
		return nil, http.StatusNotFound, agentErrors.LedgerDisabledError
	}
	conversion, err := a.ledger.GetConversion(ctx, conversionID)
	if err != nil {
		a.log.Error().Err(err).Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg(agentErrors.ConversionNotFoundError)
		var notFound *storageErrors.NotFoundError
		if errors.As(err, &notFound) {
			return nil, http.StatusNotFound, agentErrors.ConversionNotFoundError
		}
		return nil, http.StatusInternalServerError, agentErrors.UnexpectedError
	}
	return conversion, http.StatusOK, ""
}

// convertOptions tunes the side effects of convert for its caller.
type convertOptions struct {
	// requireArchive fails the conversion when the outcome cannot be archived.
	requireArchive bool
	// publish emits the conversion event; queue consumers publish their own response.
	publish bool
}

// convert runs the core and the best-effort side effects around it.
func (a *Agent) convert(ctx context.Context, upload *models.Upload, skipValidation bool, handler string, opts convertOptions) (*models.Outcome, error) {
	conversionID := uuid.New().String()
	a.log.Info().Str(handlerKey, handler).Str(conversionIDKey, conversionID).Str(fileNameKey, upload.FileName).Msg("processing file")

	record := &storageModels.Conversion{
		ID:             conversionID,
		FileName:       upload.FileName,
		SkipValidation: skipValidation,
		CreatedAt:      a.now().UTC(),
	}

	result, err := a.conv.Convert(upload.Content, skipValidation)
	if err != nil {
		a.log.Error().Err(err).Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg(agentErrors.ConversionRunError)
		record.Status = constants.ConversionStatusFailed
		if convErrors.KindOf(err) == convErrors.KindFormat {
			record.Status = constants.ConversionStatusRejected
		}
		a.finish(ctx, record, err, "", handler, opts)
		return nil, err
	}

	outcome := &models.Outcome{
		ConversionID: conversionID,
		FileName:     upload.FileName,
		Body:         result.Body,
		EntryCount:   result.EntryCount,
	}
	if opts.requireArchive || a.archive.Enabled() {
		outcome.OutcomeKey, err = a.archive.Archive(ctx, conversionID, upload.FileName, upload.Content, result.Body)
		if err != nil {
			a.log.Error().Err(err).Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg(agentErrors.ArchivingError)
			if opts.requireArchive {
				err = fmt.Errorf("%s: %w", agentErrors.ArchivingError, err)
				record.Status = constants.ConversionStatusFailed
				a.finish(ctx, record, err, "", handler, opts)
				return nil, err
			}
		}
	}

	record.Status = constants.ConversionStatusConverted
	record.EntryCount = result.EntryCount
	a.finish(ctx, record, nil, outcome.OutcomeKey, handler, opts)

	a.log.Info().Str(handlerKey, handler).Str(conversionIDKey, conversionID).Int("entries", result.EntryCount).Msg("successfully processed file")
	return outcome, nil
}

// finish records the conversion in the ledger and publishes its event.
func (a *Agent) finish(ctx context.Context, record *storageModels.Conversion, err error, outcomeKey, handler string, opts convertOptions) {
	if err != nil {
		record.Error = err.Error()
	}
	a.record(ctx, record, handler)
	if opts.publish {
		a.publish(ctx, record, outcomeKey, handler)
	}
}

func (a *Agent) record(ctx context.Context, record *storageModels.Conversion, handler string) {
	if !a.ledger.Enabled() {
		return
	}
	if err := a.ledger.AddConversion(ctx, record); err != nil {
		a.log.Warn().Err(err).Str(handlerKey, handler).Str(conversionIDKey, record.ID).Msg(agentErrors.RecordingConversionError)
	}
}

func (a *Agent) publish(ctx context.Context, record *storageModels.Conversion, outcomeKey, handler string) {
	if !a.bus.Enabled() {
		return
	}
	rsp := modelbus.Rsp{
		ConversionID: record.ID,
		FileName:     record.FileName,
		Status:       record.Status,
		EntryCount:   record.EntryCount,
		OutcomeKey:   outcomeKey,
		Error:        record.Error,
	}
	if err := a.bus.PublishOutcome(ctx, rsp); err != nil {
		a.log.Warn().Err(err).Str(handlerKey, handler).Str(conversionIDKey, record.ID).Msg(agentErrors.PublishingEventError)
	}
}
