// Package handlers implements handling functions for HTTP endpoints.

// @title Outcome Service REST API
// @desc REST API converting pipe-delimited entry files into JSON outcome files.
//
// @ver 1.0.0

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"outcome-service/internal/agent/agent"
	"outcome-service/internal/agent/models"
	apiErrors "outcome-service/internal/api/v1/errors"
	"outcome-service/internal/api/v1/modeldto"
	"outcome-service/internal/config"
	"outcome-service/internal/constants"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

const (
	handlerKey      = "handler"
	conversionIDKey = "conversionID"
)

// EndpointHandlers defines URLHandler object structure.
type EndpointHandlers struct {
	log   *zerolog.Logger
	cfg   *config.Config
	agent *agent.Agent
}

// NewEndpointHandlers initializes EndpointHandlers object setting its attributes.
func NewEndpointHandlers(
	cfg *config.Config,
	logger *zerolog.Logger,
	agent *agent.Agent,
) *EndpointHandlers {
	logger.Debug().Msg("calling initializer of HTTP handling service")
	return &EndpointHandlers{cfg: cfg, log: logger, agent: agent}
}

// UploadFileHandle handles entry file uploads and responds with the outcome file.
// @summary Convert an entry file
// @desc Convert a pipe-delimited entry file into a JSON outcome file attachment
// @id uploadFile
// @accept multipart/form-data
// @produce json
// @param file formData file true "Entry file (.txt)"
// @success 200 {array} modeldto.ResponseOutcomeEntry
// @failure 400 {string} Bad request
// @failure 413 {string} Request entity too large
// @failure 415 {string} Unsupported media type
// @failure 500 {string} Internal Server Error
// @router /file/upload [post]
func (h *EndpointHandlers) UploadFileHandle(w http.ResponseWriter, r *http.Request) {
	const handler = "upload-file"

	h.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("HTTP: %s endpoint hit", handler))

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxSize)
	file, header, err := r.FormFile(h.cfg.Upload.FieldName)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.log.Warn().Err(err).Str(handlerKey, handler).Msg(apiErrors.FileTooLarge)
			http.Error(w, apiErrors.FileTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		h.log.Error().Err(err).Str(handlerKey, handler).Msg(apiErrors.InvalidFileUploaded)
		http.Error(w, apiErrors.InvalidFileUploaded, http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Str(handlerKey, handler).Msg(apiErrors.RequestBodyReadingError)
		http.Error(w, apiErrors.RequestBodyReadingError, http.StatusInternalServerError)
		return
	}

	skipValidation := h.cfg.Features.SkipValidation
	upload := &models.Upload{FileName: header.Filename, Content: content}
	outcome, httpStatus, errorCode := h.agent.ConvertUpload(ctx, upload, skipValidation, handler)
	if outcome == nil {
		http.Error(w, errorCode, httpStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.cfg.Upload.OutcomeFileName))
	w.Header().Set(constants.ConversionIDHeader, outcome.ConversionID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(outcome.Body)
	h.log.Info().Str(handlerKey, handler).Str(conversionIDKey, outcome.ConversionID).Msg("returning outcome JSON file")
}

// GetConversionHandle handles requests to get a conversion record.
// @summary Get conversion request
// @desc Get the ledger record of a conversion
// @id getConversion
// @accept x-www-form-urlencoded
// @produce json
// @param conversionID path string true "Conversion ID to get the record for"
// @success 200 {object} modeldto.ResponseConversion
// @failure 404 {string} Not found
// @failure 500 {string} Internal Server Error
// @router /api/v1/conversions/{conversionID} [get]
func (h *EndpointHandlers) GetConversionHandle(w http.ResponseWriter, r *http.Request) {
	const handler = "get-conversion"

	h.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("HTTP: %s endpoint hit", handler))

	ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
	defer cancel()

	conversionID := chi.URLParam(r, "conversionID")

	conversion, httpStatus, errorCode := h.agent.GetConversion(ctx, conversionID, handler)
	if conversion == nil {
		http.Error(w, errorCode, httpStatus)
		return
	}

	responseConversion := modeldto.ResponseConversion{
		ConversionID:   conversion.ID,
		FileName:       conversion.FileName,
		Status:         conversion.Status,
		EntryCount:     conversion.EntryCount,
		SkipValidation: conversion.SkipValidation,
		Error:          conversion.Error,
		CreatedAt:      conversion.CreatedAt,
	}
	resBody, err := json.Marshal(responseConversion)
	if err != nil {
		h.log.Error().Err(err).Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg(apiErrors.MarshallingError)
		http.Error(w, apiErrors.MarshallingError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resBody)
	h.log.Info().Str(handlerKey, handler).Str(conversionIDKey, conversionID).Msg("response sent")
}
