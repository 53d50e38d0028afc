// Package converter provides the entry file to outcome file conversion.

package converter

import (
	convErrors "outcome-service/internal/converter/errors"
	"outcome-service/internal/converter/v1/models"
	"outcome-service/internal/converter/v1/parser"
	"outcome-service/internal/converter/v1/transformer"

	"github.com/rs/zerolog"
)

// Process converts the content of an entry file into an outcome JSON array.
func Process(content []byte, skipValidation bool) ([]byte, error) {
	result, err := process(content, skipValidation)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

func process(content []byte, skipValidation bool) (*models.Result, error) {
	entries, err := parser.Parse(content, skipValidation)
	if err != nil {
		return nil, err
	}
	body, err := transformer.Transform(entries)
	if err != nil {
		return nil, err
	}
	return &models.Result{Body: body, EntryCount: len(entries)}, nil
}

// Converter defines an object and sets its attributes.
type Converter struct {
	log *zerolog.Logger
}

// NewConverter initializes a new Converter instance.
func NewConverter(logger *zerolog.Logger) *Converter {
	logger.Debug().Msg("calling initializer of converter service")
	return &Converter{log: logger}
}

// Convert runs parsing and transformation over one entry file.
func (c *Converter) Convert(content []byte, skipValidation bool) (*models.Result, error) {
	c.log.Debug().Msg("calling `Convert` method")
	c.log.Debug().Bool("skip_validation", skipValidation).Msg("skip validation flag")

	result, err := process(content, skipValidation)
	if err != nil {
		switch convErrors.KindOf(err) {
		case convErrors.KindFormat:
			c.log.Warn().Err(err).Msg(convErrors.ParsingRunError)
		default:
			c.log.Error().Err(err).Msg(convErrors.TransformRunError)
		}
		return nil, err
	}

	c.log.Info().Int("entries", result.EntryCount).Msg("entry file converted")
	return result, nil
}

// Validate parses content strictly and returns its entries.
func (c *Converter) Validate(content []byte) ([]models.Entry, error) {
	c.log.Debug().Msg("calling `Validate` method")
	entries, err := parser.Parse(content, false)
	if err != nil {
		c.log.Warn().Err(err).Msg(convErrors.ParsingRunError)
		return nil, err
	}
	return entries, nil
}
