// Package errors provides string codes for error instantiation.

package errors

const (
	EmptyFileError           = "file is empty"
	UnsupportedFileTypeError = "unsupported file type"
	ConversionRunError       = "could not run conversion"
	UnexpectedError          = "an unexpected error occurred"
	RecordingConversionError = "could not record conversion in ledger"
	ArchivingError           = "could not archive conversion files"
	PublishingEventError     = "could not publish conversion event"
	DownloadingError         = "could not download entry file"
	ConversionNotFoundError  = "could not find conversion"
	LedgerDisabledError      = "conversion history is disabled"
)
