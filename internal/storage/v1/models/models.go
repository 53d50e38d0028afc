// Package models provides data types stored in the conversion ledger.

package models

import "time"

// Conversion is one ledger record describing a processed upload.
type Conversion struct {
	ID             string    `json:"conversion_id"`
	FileName       string    `json:"file_name"`
	Status         string    `json:"status"`
	EntryCount     int       `json:"entry_count"`
	SkipValidation bool      `json:"skip_validation"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
