// Package modelbus provides models for AMQP transfer objects.

package modelbus

// MsgConvert asks for the conversion of an entry file stored in S3.
type MsgConvert struct {
	FileName       string `json:"file_name"`
	SkipValidation bool   `json:"skip_validation"`
}

// Rsp reports the result of a conversion.
type Rsp struct {
	ConversionID string `json:"conversion_id"`
	FileName     string `json:"file_name"`
	Status       string `json:"status"`
	EntryCount   int    `json:"entry_count"`
	OutcomeKey   string `json:"outcome_key,omitempty"`
	Error        string `json:"error,omitempty"`
}
