package parser

import "outcome-service/internal/converter/v1/models"

// Delimiter separates fields within a line.
const Delimiter = "|"

// Kind is the value type of a field.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Field describes one positional field of a line.
//
// OnParseFailure is the value assigned when the field is absent, or, for numbers,
// when the raw value does not parse and validation is skipped.
type Field struct {
	Name           string
	Kind           Kind
	OnParseFailure interface{}

	setText   func(e *models.Entry, v string)
	setNumber func(e *models.Entry, v float64)
}

func textField(name string, set func(e *models.Entry, v string)) Field {
	return Field{Name: name, Kind: KindText, OnParseFailure: "", setText: set}
}

func numberField(name string, set func(e *models.Entry, v float64)) Field {
	return Field{Name: name, Kind: KindNumber, OnParseFailure: 0.0, setNumber: set}
}

// Schema lists the fields of an entry line in their positional order.
var Schema = []Field{
	textField("uuid", func(e *models.Entry, v string) { e.UUID = v }),
	textField("id", func(e *models.Entry, v string) { e.ID = v }),
	textField("name", func(e *models.Entry, v string) { e.Name = v }),
	textField("likes", func(e *models.Entry, v string) { e.Likes = v }),
	textField("transport", func(e *models.Entry, v string) { e.Transport = v }),
	numberField("avgSpeed", func(e *models.Entry, v float64) { e.AvgSpeed = v }),
	numberField("topSpeed", func(e *models.Entry, v float64) { e.TopSpeed = v }),
}

// FieldNames returns the schema field names in order.
func FieldNames() []string {
	names := make([]string, 0, len(Schema))
	for _, f := range Schema {
		names = append(names, f.Name)
	}
	return names
}
