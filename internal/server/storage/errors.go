package storage

import "errors"

// Common storage errors
var (
	// ErrSiteNotFound indicates that site was not found in storage
	ErrSiteNotFound = errors.New("site not found")

	// ErrSiteAlreadyExists indicates that site with this id is already registered
	ErrSiteAlreadyExists = errors.New("site already exists")

	// ErrDocumentNotFound indicates that document has no operations on server
	ErrDocumentNotFound = errors.New("document not found")
)
