package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	format := &FormatError{Reason: WrongFieldCount, LineNumber: 2, Line: "a|b"}
	serialization := &SerializationError{Err: errors.New("boom")}

	assert.Equal(t, KindFormat, KindOf(format))
	assert.Equal(t, KindFormat, KindOf(fmt.Errorf("wrapped: %w", format)))
	assert.Equal(t, KindSerialization, KindOf(serialization))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Reason: InvalidNumber, LineNumber: 4, Line: "u|i|n|l|t|fast|10.0"}

	assert.Equal(t, "invalid number in line 4: u|i|n|l|t|fast|10.0", err.Error())
	assert.Equal(t, "wrong field count in line: x", (&FormatError{Reason: WrongFieldCount, Line: "x"}).Error())
}

func TestErrorsUnwrap(t *testing.T) {
	root := errors.New("root")

	assert.ErrorIs(t, &FormatError{Reason: InvalidNumber, Err: root}, root)
	assert.ErrorIs(t, &SerializationError{Err: root}, root)
}
