// Package s3 provides data operation service for S3 storage.

package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"outcome-service/internal/config"
	s3Errors "outcome-service/internal/s3/errors"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Service defines a new S3 service and sets its attributes.
type Service struct {
	s3up   *s3manager.Uploader
	s3down *s3.S3
	cfg    *config.Config
	log    *zerolog.Logger
}

// NewService initializes a new S3 service. With S3 disabled no session is created.
func NewService(config *config.Config, logger *zerolog.Logger) (*Service, error) {
	logger.Debug().Msg("calling initializer of S3 service")
	service := &Service{cfg: config, log: logger}
	if !config.S3Storage.Enabled {
		logger.Debug().Msg("S3 storage is disabled")
		return service, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.S3Storage.AccessKeyID,
			config.S3Storage.SecretAccessKey,
			"",
		),
		Region:   &config.S3Storage.Region,
		Endpoint: &config.S3Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	service.s3up = s3manager.NewUploader(sess)
	service.s3down = s3.New(sess)
	return service, nil
}

// Enabled reports whether the service talks to S3.
func (s *Service) Enabled() bool {
	return s.s3up != nil
}

// UploadKey derives the in-bucket key of an uploaded entry file.
func (s *Service) UploadKey(fileName string) string {
	return path.Join(s.cfg.S3Storage.FolderUpload, fileName)
}

// OutcomeKey derives the in-bucket key of the outcome file of a conversion.
func (s *Service) OutcomeKey(conversionID, fileName string) string {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	return path.Join(s.cfg.S3Storage.FolderOutcome, conversionID, base+".json")
}

// UploadFile performs data upload to S3.
func (s *Service) UploadFile(ctx context.Context, key, contentType string, body []byte) error {
	s.log.Debug().Msg("calling `UploadFile` method")
	if !s.Enabled() {
		return errors.New(s3Errors.DisabledError)
	}
	s.log.Info().Str("key", key).Int("size", len(body)).Msg("uploading file")

	result, err := s.s3up.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.cfg.S3Storage.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(body),
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg(s3Errors.FileUploadError)
		return err
	}
	s.log.Info().Str("location", result.Location).Msg("file uploaded")
	return nil
}

// DownloadFile reads an uploaded entry file from S3 into memory.
func (s *Service) DownloadFile(ctx context.Context, fileName string) ([]byte, error) {
	s.log.Debug().Msg("calling `DownloadFile` method")
	if !s.Enabled() {
		return nil, errors.New(s3Errors.DisabledError)
	}
	res, err := s.s3down.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.S3Storage.Bucket),
		Key:    aws.String(s.UploadKey(fileName)),
	})
	if err != nil {
		s.log.Error().Err(err).Str("fileName", fileName).Msg(s3Errors.FileDownloadError)
		return nil, err
	}
	defer res.Body.Close()

	content, err := io.ReadAll(res.Body)
	if err != nil {
		s.log.Error().Err(err).Str("fileName", fileName).Msg(s3Errors.FileReadingError)
		return nil, err
	}
	return content, nil
}

// Archive uploads the original entry file and its outcome concurrently and returns the outcome key.
func (s *Service) Archive(ctx context.Context, conversionID, fileName string, content, outcome []byte) (string, error) {
	s.log.Debug().Msg("calling `Archive` method")
	outcomeKey := s.OutcomeKey(conversionID, fileName)
	files := map[string][]byte{
		path.Join(s.cfg.S3Storage.FolderUpload, conversionID, path.Base(fileName)): content,
		outcomeKey: outcome,
	}

	g, gctx := errgroup.WithContext(ctx)
	for key, body := range files {
		key, body := key, body
		contentType := "text/plain"
		if key == outcomeKey {
			contentType = "application/json"
		}
		g.Go(func() error {
			return s.UploadFile(gctx, key, contentType, body)
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg(s3Errors.ArchiveError)
		return "", err
	}
	return outcomeKey, nil
}
