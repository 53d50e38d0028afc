// Package errors provides string codes for error instantiation.

package errors

const (
	FileReadingError        = "could not read data from file"
	FileWritingError        = "could not write outcome file"
	ConversionRunError      = "could not run conversion"
	ValidationRunError      = "could not run validation"
	GettingConversionError  = "could not find conversion in DB"
	GettingConversionsError = "could not list conversions in DB"
	MigrationError          = "could not perform migration"
	DropError               = "could not perform DB drop"
	PublishingInvoiceError  = "could not publish conversion invoice"
)
