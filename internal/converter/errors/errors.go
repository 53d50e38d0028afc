// Package errors provides error kinds and string codes for the conversion core.

package errors

import (
	"errors"
	"fmt"
)

const (
	WrongFieldCount     = "wrong field count"
	InvalidNumber       = "invalid number"
	SerializationFailed = "could not serialize outcome entries"
	ParsingRunError     = "could not parse entry file"
	TransformRunError   = "could not transform entries"
)

// Kind is a coarse classification of conversion failures used by the boundary layer.
type Kind string

const (
	KindFormat        Kind = "format"
	KindSerialization Kind = "serialization"
	KindUnknown       Kind = "unknown"
)

type (
	// FormatError reports a line that does not follow the entry format.
	FormatError struct {
		Reason     string
		LineNumber int
		Line       string
		Err        error
	}
	// SerializationError reports a failure to encode outcome entries.
	SerializationError struct {
		Err error
	}
)

func (e *FormatError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s in line %d: %s", e.Reason, e.LineNumber, e.Line)
	}
	return fmt.Sprintf("%s in line: %s", e.Reason, e.Line)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %s", SerializationFailed, e.Err.Error())
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// KindOf classifies err; wrapped errors are unwrapped.
func KindOf(err error) Kind {
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		return KindFormat
	}
	var serializationErr *SerializationError
	if errors.As(err, &serializationErr) {
		return KindSerialization
	}
	return KindUnknown
}
