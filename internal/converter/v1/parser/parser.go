// Package parser converts pipe-delimited entry lines into entries.

package parser

import (
	"math"
	convErrors "outcome-service/internal/converter/errors"
	"outcome-service/internal/converter/v1/models"
	"strconv"
	"strings"
)

// ParseLine parses one line according to Schema.
//
// With validation enabled the line must carry exactly len(Schema) fields and every numeric
// field must parse. With validation skipped ParseLine never fails and each field falls back
// to its OnParseFailure value.
func ParseLine(line string, lineNumber int, skipValidation bool) (models.Entry, error) {
	fields := splitFields(line)

	var entry models.Entry
	if !skipValidation && len(fields) != len(Schema) {
		return entry, &convErrors.FormatError{Reason: convErrors.WrongFieldCount, LineNumber: lineNumber, Line: line}
	}

	for i, field := range Schema {
		raw, present := "", i < len(fields)
		if present {
			raw = fields[i]
		}

		switch field.Kind {
		case KindText:
			if !present {
				raw = field.OnParseFailure.(string)
			}
			field.setText(&entry, raw)
		case KindNumber:
			v, err := parseNumber(raw)
			if err != nil {
				if !skipValidation {
					return models.Entry{}, &convErrors.FormatError{
						Reason:     convErrors.InvalidNumber,
						LineNumber: lineNumber,
						Line:       line,
						Err:        err,
					}
				}
				v = field.OnParseFailure.(float64)
			}
			field.setNumber(&entry, v)
		}
	}

	return entry, nil
}

// Parse splits content into lines, drops blank ones and parses the rest.
// The first failing line aborts parsing and no entries are returned.
func Parse(content []byte, skipValidation bool) ([]models.Entry, error) {
	lines := splitLines(content)
	entries := make([]models.Entry, 0, len(lines))
	for i, line := range lines {
		if IsBlank(line) {
			continue
		}
		entry, err := ParseLine(line, i+1, skipValidation)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// IsBlank reports whether line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// CountNonBlankLines returns the number of lines Parse would consider.
func CountNonBlankLines(content []byte) int {
	var n int
	for _, line := range splitLines(content) {
		if !IsBlank(line) {
			n++
		}
	}
	return n
}

// lineBreaks maps every accepted line terminator onto "\n".
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines splits content on "\n", "\r\n" and a bare "\r".
func splitLines(content []byte) []string {
	return strings.Split(lineBreaks.Replace(string(content)), "\n")
}

// splitFields splits line on Delimiter and drops trailing empty fields,
// so "a|b|" holds two fields.
func splitFields(line string) []string {
	fields := strings.Split(line, Delimiter)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: raw, Err: strconv.ErrRange}
	}
	return v, nil
}
