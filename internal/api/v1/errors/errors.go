// Package errors provides string codes for error instantiation.

package errors

const (
	InvalidFileUploaded     = "invalid file uploaded"
	FileTooLarge            = "uploaded file is too large"
	RequestBodyReadingError = "failed to process file"
	MarshallingError        = "failed to marshall response body"
)
