package parser

import (
	convErrors "outcome-service/internal/converter/errors"
	"outcome-service/internal/converter/v1/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineValid(t *testing.T) {
	entry, err := ParseLine("550e8400|1|Alice|reading|bike|12.5|20.0", 1, false)

	require.NoError(t, err)
	assert.Equal(t, models.Entry{
		UUID:      "550e8400",
		ID:        "1",
		Name:      "Alice",
		Likes:     "reading",
		Transport: "bike",
		AvgSpeed:  12.5,
		TopSpeed:  20.0,
	}, entry)
}

func TestParseLineStrictRejects(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{name: "six fields", line: "a|b|c|d|e|5.0", reason: convErrors.WrongFieldCount},
		{name: "eight fields", line: "a|b|c|d|e|5.0|6.0|x", reason: convErrors.WrongFieldCount},
		{name: "trailing field after delimiter", line: "a|b|c|d|e|5.0|6.0|x|", reason: convErrors.WrongFieldCount},
		{name: "non numeric avg speed", line: "u|i|n|l|t|fast|10.0", reason: convErrors.InvalidNumber},
		{name: "non numeric top speed", line: "u|i|n|l|t|10.0|slow", reason: convErrors.InvalidNumber},
		{name: "empty top speed", line: "u|i|n|l|t|10.0|", reason: convErrors.WrongFieldCount},
		{name: "blank top speed", line: "u|i|n|l|t|10.0| ", reason: convErrors.InvalidNumber},
		{name: "empty avg speed", line: "u|i|n|l|t||10.0", reason: convErrors.InvalidNumber},
		{name: "not a number", line: "u|i|n|l|t|NaN|1", reason: convErrors.InvalidNumber},
		{name: "infinite", line: "u|i|n|l|t|1|Inf", reason: convErrors.InvalidNumber},
		{name: "out of range", line: "u|i|n|l|t|1|1e400", reason: convErrors.InvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, 3, false)

			var formatErr *convErrors.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.reason, formatErr.Reason)
			assert.Equal(t, 3, formatErr.LineNumber)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

// Trailing empty fields are dropped before the field count is checked.
func TestParseLineTrailingDelimiters(t *testing.T) {
	for _, line := range []string{"u|i|n|l|t|1.0|2.0|", "u|i|n|l|t|1.0|2.0|||"} {
		entry, err := ParseLine(line, 1, false)

		require.NoError(t, err, line)
		assert.Equal(t, models.Entry{UUID: "u", ID: "i", Name: "n", Likes: "l", Transport: "t", AvgSpeed: 1.0, TopSpeed: 2.0}, entry)
	}
}

func TestParseLineLenientShortLine(t *testing.T) {
	entry, err := ParseLine("u|i|n", 1, true)

	require.NoError(t, err)
	assert.Equal(t, models.Entry{UUID: "u", ID: "i", Name: "n"}, entry)
}

func TestParseLineLenientBadNumbers(t *testing.T) {
	entry, err := ParseLine("u|i|n|l|t|x|y", 1, true)

	require.NoError(t, err)
	assert.Equal(t, "t", entry.Transport)
	assert.Zero(t, entry.AvgSpeed)
	assert.Zero(t, entry.TopSpeed)
}

func TestParseLineLenientExtraFieldsIgnored(t *testing.T) {
	entry, err := ParseLine("u|i|n|l|t|1.5|2.5|extra", 1, true)

	require.NoError(t, err)
	assert.Equal(t, 1.5, entry.AvgSpeed)
	assert.Equal(t, 2.5, entry.TopSpeed)
}

// Surrounding whitespace in numeric fields is tolerated, text fields are kept verbatim.
func TestParseLineTrimsNumbers(t *testing.T) {
	entry, err := ParseLine("u|i| n |l|t| 1.5 |2.5 ", 1, false)

	require.NoError(t, err)
	assert.Equal(t, " n ", entry.Name)
	assert.Equal(t, 1.5, entry.AvgSpeed)
	assert.Equal(t, 2.5, entry.TopSpeed)
}

func TestParseSkipsBlankLines(t *testing.T) {
	content := []byte("u1|1|a|l|bike|1|2\n   \n\t\nu2|2|b|l|car|3|4\n")

	entries, err := Parse(content, false)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, "b", entries[1].Name)
	assert.Equal(t, CountNonBlankLines(content), len(entries))
}

func TestParseCRLF(t *testing.T) {
	lf, err := Parse([]byte("u1|1|a|l|bike|1|2\nu2|2|b|l|car|3|4"), false)
	require.NoError(t, err)

	crlf, err := Parse([]byte("u1|1|a|l|bike|1|2\r\nu2|2|b|l|car|3|4\r\n"), false)
	require.NoError(t, err)

	assert.Equal(t, lf, crlf)
}

func TestParseBareCarriageReturn(t *testing.T) {
	content := []byte("u1|1|a|l|bike|1|2\ru2|2|b|l|car|3|4\r\n\ru3|3|c|l|bus|5|6")

	entries, err := Parse(content, false)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[2].Name)
	assert.Equal(t, 3, CountNonBlankLines(content))
}

func TestParseEmpty(t *testing.T) {
	entries, err := Parse(nil, false)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

// The failing line number counts blank lines too.
func TestParseAbortsOnFirstBadLine(t *testing.T) {
	content := []byte("u1|1|a|l|bike|1|2\n\nbroken\nu2|2|b|l|car|3|4")

	entries, err := Parse(content, false)

	assert.Nil(t, entries)
	var formatErr *convErrors.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.LineNumber)
	assert.Equal(t, "broken", formatErr.Line)
}

func TestParseLenientNeverFails(t *testing.T) {
	entries, err := Parse([]byte("broken\nu|i|n|l|t|x|y\n|||"), true)

	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "broken", entries[0].UUID)
}

func TestSchemaOrder(t *testing.T) {
	assert.Equal(t, []string{"uuid", "id", "name", "likes", "transport", "avgSpeed", "topSpeed"}, FieldNames())
	for _, f := range Schema {
		switch f.Kind {
		case KindText:
			assert.Equal(t, "", f.OnParseFailure, f.Name)
		case KindNumber:
			assert.Equal(t, 0.0, f.OnParseFailure, f.Name)
		}
	}
}
