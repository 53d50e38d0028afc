// Package psql provides PSQL storage service for the conversion ledger.

package psql

import (
	"context"
	"database/sql"
	"errors"
	"outcome-service/internal/config"
	"outcome-service/internal/constants"
	storageErrors "outcome-service/internal/storage/errors"
	"outcome-service/internal/storage/v1/models"
	"outcome-service/internal/syncutils"
	"sync"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/rs/zerolog"
)

const conversionIDKey = "conversionID"

// Storage defines a new object and sets its attributes.
type Storage struct {
	mu        sync.Mutex
	cfg       *config.Config
	DB        *sql.DB
	log       *zerolog.Logger
	syncUtils *syncutils.SyncUtils
}

// NewStorage initializes a new Storage instance. With the ledger disabled no connection is opened.
func NewStorage(cfg *config.Config, logger *zerolog.Logger, syncUtils *syncutils.SyncUtils) *Storage {
	logger.Debug().Msg("calling initializer of storage service")
	st := Storage{
		cfg:       cfg,
		log:       logger,
		syncUtils: syncUtils,
	}
	if !cfg.DB.Enabled {
		logger.Debug().Msg("conversion ledger is disabled")
		return &st
	}

	db, err := sql.Open("pgx", cfg.DB.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not open a DB connection")
	}
	st.DB = db
	logger.Debug().Msg("DB connection was established")

	syncUtils.OnShutdown(func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("could not close DB connection")
			return
		}
		logger.Debug().Msg("PSQL DB connection was closed")
	})

	return &st
}

// Enabled reports whether the ledger is backed by a DB.
func (s *Storage) Enabled() bool {
	return s.DB != nil
}

// checkInSlice checks that a string is contained within a slice.
func (s *Storage) checkInSlice(slice []string, value string) bool {
	for _, x := range slice {
		if x == value {
			return true
		}
	}
	return false
}

// exec runs queries one by one under the storage lock.
func (s *Storage) exec(queries []string) error {
	if !s.Enabled() {
		return &storageErrors.DisabledError{}
	}
	ctx, cancel := context.WithTimeout(s.syncUtils.Ctx, 1000*time.Millisecond)
	defer cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, query := range queries {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return &storageErrors.ExecutionPSQLError{Err: err}
		}
	}
	return nil
}

// Migrate creates the DB tables.
func (s *Storage) Migrate() error {
	s.log.Debug().Msg("calling `Migrate` method")
	return s.exec([]string{
		`CREATE TABLE IF NOT EXISTS conversions (
		id              BIGSERIAL   NOT NULL UNIQUE,
		conversion_id   TEXT        NOT NULL UNIQUE,
		file_name       TEXT        NOT NULL,
		status          TEXT        NOT NULL,
		entry_count     INTEGER     NOT NULL DEFAULT 0,
		skip_validation BOOLEAN     NOT NULL DEFAULT FALSE,
		error           TEXT        NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL
	);`,
	})
}

// DropAll drops the DB tables.
func (s *Storage) DropAll() error {
	s.log.Debug().Msg("calling `DropAll` method")
	return s.exec([]string{`DROP TABLE IF EXISTS conversions;`})
}

// AddConversion stores a new conversion record.
func (s *Storage) AddConversion(ctx context.Context, conversion *models.Conversion) error {
	s.log.Debug().Msg("calling `AddConversion` method")
	if !s.Enabled() {
		return &storageErrors.DisabledError{}
	}
	if !s.checkInSlice(constants.ValidConversionStatuses, conversion.Status) {
		err := &storageErrors.InvalidStatusError{Status: conversion.Status}
		s.log.Error().Err(err).Str(conversionIDKey, conversion.ID).Msg("adding conversion failed")
		return err
	}

	newConversionStmt, err := s.DB.PrepareContext(ctx, "INSERT INTO conversions (conversion_id, file_name, status, entry_count, skip_validation, error, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)")
	if err != nil {
		s.log.Error().Err(err).Str(conversionIDKey, conversion.ID).Msg("could not prepare statement")
		return &storageErrors.StatementPSQLError{Err: err}
	}
	defer newConversionStmt.Close()
	chanOk := make(chan bool, 1)
	chanEr := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, err := newConversionStmt.ExecContext(ctx,
			conversion.ID,
			conversion.FileName,
			conversion.Status,
			conversion.EntryCount,
			conversion.SkipValidation,
			conversion.Error,
			conversion.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				chanEr <- &storageErrors.AlreadyExistsError{Err: err, ID: conversion.ID}
				return
			}
			chanEr <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		chanOk <- true
	}()

	select {
	case <-ctx.Done():
		s.log.Error().Err(ctx.Err()).Str(conversionIDKey, conversion.ID).Msg("adding conversion failed")
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case methodErr := <-chanEr:
		s.log.Error().Err(methodErr).Str(conversionIDKey, conversion.ID).Msg("adding conversion failed")
		return methodErr
	case <-chanOk:
		s.log.Info().Str(conversionIDKey, conversion.ID).Msg("adding conversion done")
		return nil
	}
}

// GetConversion retrieves a conversion record by its identifier.
func (s *Storage) GetConversion(ctx context.Context, conversionID string) (*models.Conversion, error) {
	s.log.Debug().Msg("calling `GetConversion` method")
	if !s.Enabled() {
		return nil, &storageErrors.DisabledError{}
	}
	getConversionStmt, err := s.DB.PrepareContext(ctx, "SELECT conversion_id, file_name, status, entry_count, skip_validation, error, created_at FROM conversions WHERE conversion_id = $1")
	if err != nil {
		s.log.Error().Err(err).Str(conversionIDKey, conversionID).Msg("could not prepare statement")
		return nil, &storageErrors.StatementPSQLError{Err: err}
	}
	defer getConversionStmt.Close()
	chanOk := make(chan *models.Conversion, 1)
	chanEr := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var c models.Conversion
		err := getConversionStmt.QueryRowContext(ctx, conversionID).Scan(
			&c.ID, &c.FileName, &c.Status, &c.EntryCount, &c.SkipValidation, &c.Error, &c.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				chanEr <- &storageErrors.NotFoundError{Err: err}
				return
			}
			chanEr <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		chanOk <- &c
	}()

	select {
	case <-ctx.Done():
		s.log.Error().Err(ctx.Err()).Str(conversionIDKey, conversionID).Msg("getting conversion failed")
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case methodErr := <-chanEr:
		s.log.Error().Err(methodErr).Str(conversionIDKey, conversionID).Msg("getting conversion failed")
		return nil, methodErr
	case result := <-chanOk:
		s.log.Info().Str(conversionIDKey, conversionID).Msg("getting conversion done")
		return result, nil
	}
}

// GetAllConversions retrieves all conversion records, newest first.
func (s *Storage) GetAllConversions(ctx context.Context) ([]*models.Conversion, error) {
	s.log.Debug().Msg("calling `GetAllConversions` method")
	if !s.Enabled() {
		return nil, &storageErrors.DisabledError{}
	}
	getConversionsStmt, err := s.DB.PrepareContext(ctx, "SELECT conversion_id, file_name, status, entry_count, skip_validation, error, created_at FROM conversions ORDER BY created_at DESC")
	if err != nil {
		s.log.Error().Err(err).Msg("could not prepare statement")
		return nil, &storageErrors.StatementPSQLError{Err: err}
	}
	defer getConversionsStmt.Close()

	chanOk := make(chan []*models.Conversion, 1)
	chanEr := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		rows, err := getConversionsStmt.QueryContext(ctx)
		if err != nil {
			chanEr <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		defer rows.Close()

		var queryOutput []*models.Conversion
		for rows.Next() {
			var c models.Conversion
			err = rows.Scan(&c.ID, &c.FileName, &c.Status, &c.EntryCount, &c.SkipValidation, &c.Error, &c.CreatedAt)
			if err != nil {
				chanEr <- &storageErrors.ScanningPSQLError{Err: err}
				return
			}
			queryOutput = append(queryOutput, &c)
		}
		if err = rows.Err(); err != nil {
			chanEr <- &storageErrors.ScanningPSQLError{Err: err}
			return
		}
		chanOk <- queryOutput
	}()
	select {
	case <-ctx.Done():
		s.log.Error().Err(ctx.Err()).Msg("getting all conversions failed")
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case methodErr := <-chanEr:
		s.log.Error().Err(methodErr).Msg("getting all conversions failed")
		return nil, methodErr
	case result := <-chanOk:
		s.log.Info().Int("count", len(result)).Msg("getting all conversions done")
		return result, nil
	}
}
