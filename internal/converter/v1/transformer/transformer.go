// Package transformer maps entries to outcome entries and serializes them.

package transformer

import (
	"bytes"
	"encoding/json"
	convErrors "outcome-service/internal/converter/errors"
	"outcome-service/internal/converter/v1/models"
)

// Reduce maps every entry to its outcome shape, keeping order.
func Reduce(entries []models.Entry) []models.OutcomeEntry {
	outcome := make([]models.OutcomeEntry, 0, len(entries))
	for _, e := range entries {
		outcome = append(outcome, models.NewOutcomeEntry(e))
	}
	return outcome
}

// Transform returns the outcome entries of entries as a JSON array.
// Strings are written without HTML escaping.
func Transform(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Reduce(entries)); err != nil {
		return nil, &convErrors.SerializationError{Err: err}
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
