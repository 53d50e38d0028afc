// Package models provides data types and models used in package converter.

package models

import (
	"math"
	"strconv"
	"strings"
)

// Entry is one parsed record of an entry file.
type Entry struct {
	UUID      string
	ID        string
	Name      string
	Likes     string
	Transport string
	AvgSpeed  float64
	TopSpeed  float64
}

// OutcomeEntry is the reduced record exposed in the outcome file.
type OutcomeEntry struct {
	Name      string `json:"name" example:"Alice"`
	Transport string `json:"transport" example:"bike"`
	TopSpeed  Speed  `json:"topSpeed" swaggertype:"number" example:"20.0"`
}

// NewOutcomeEntry reduces an Entry to its outcome shape.
func NewOutcomeEntry(e Entry) OutcomeEntry {
	return OutcomeEntry{
		Name:      e.Name,
		Transport: e.Transport,
		TopSpeed:  Speed(e.TopSpeed),
	}
}

// Speed is a float that always encodes with a fractional part, e.g. 20.0 rather than 20.
type Speed float64

// MarshalJSON implements json.Marshaler.
func (s Speed) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &UnsupportedSpeedError{Value: f}
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return []byte(out), nil
}

// UnsupportedSpeedError is returned when a speed has no JSON representation.
type UnsupportedSpeedError struct {
	Value float64
}

func (e *UnsupportedSpeedError) Error() string {
	return "unsupported speed value: " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// Result holds the serialized outcome of one conversion.
type Result struct {
	Body       []byte
	EntryCount int
}
