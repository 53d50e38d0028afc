// Package errors provides string codes for error instantiation.

package errors

const (
	FileUploadError   = "failed to upload file"
	FileDownloadError = "failed to download file"
	FileReadingError  = "failed to read downloaded file"
	ArchiveError      = "failed to archive conversion files"
	DisabledError     = "S3 storage is disabled"
)
