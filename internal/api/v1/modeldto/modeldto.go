// Package modeldto provides models for data transfer objects.

package modeldto

import "time"

type (
	// ResponseOutcomeEntry documents one element of the outcome file.
	ResponseOutcomeEntry struct {
		Name      string  `json:"name" example:"Alice"`
		Transport string  `json:"transport" example:"bike"`
		TopSpeed  float64 `json:"topSpeed" example:"20.0"`
	}

	ResponseConversion struct {
		ConversionID   string    `json:"conversion_id" example:"3f1c2a5e-8a8e-4bb2-9a53-1c1f0d0e7b11"`
		FileName       string    `json:"file_name" example:"EntryFile.txt"`
		Status         string    `json:"status" example:"converted"`
		EntryCount     int       `json:"entry_count" example:"2"`
		SkipValidation bool      `json:"skip_validation" example:"false"`
		Error          string    `json:"error,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
