// Package models provides data types used in package agent.

package models

// Upload is an entry file received for conversion.
type Upload struct {
	FileName string
	Content  []byte
}

// Outcome is the result of a successful conversion.
type Outcome struct {
	ConversionID string
	FileName     string
	Body         []byte
	EntryCount   int
	OutcomeKey   string
}
