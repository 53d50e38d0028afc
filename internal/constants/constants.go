// Package constants provides constants.

package constants

const (
	ConversionStatusConverted = "converted"
	ConversionStatusRejected  = "rejected"
	ConversionStatusFailed    = "failed"

	EntryFileExtension = ".txt"
	ConversionIDHeader = "X-Conversion-ID"

	NA = "NA"
)

var ValidConversionStatuses = []string{
	ConversionStatusConverted,
	ConversionStatusRejected,
	ConversionStatusFailed}
