package report

import "errors"

var (
	// ErrDocumentUnreadable is returned when the report cannot be read at all:
	// the file is missing, reading fails or the text is not valid UTF-8.
	ErrDocumentUnreadable = errors.New("battery report unreadable")
)
