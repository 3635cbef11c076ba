package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrDocumentNotFound indicates that document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentExists indicates that document with this name already exists
	ErrDocumentExists = errors.New("document already exists")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStorageLocked indicates that another client process holds the database
	ErrStorageLocked = errors.New("storage is locked by another process")
)
