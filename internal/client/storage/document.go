package storage

import (
	"context"

	"github.com/iudanet/gophtext/internal/crdt"
)

//go:generate moq -out document_mock.go . DocumentStorage

// DocumentStorage defines interface for persisting replicated documents on client.
// A document is stored as its site id, the log of locally generated operations
// and the remote operations merged into it; the text is rebuilt with crdt.Restore.
type DocumentStorage interface {
	// CreateDocument registers a new empty document owned by site
	// Returns ErrDocumentExists if document with this name exists
	CreateDocument(ctx context.Context, name string, site crdt.SiteID) error

	// GetDocumentSite returns the site id the document was created with
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocumentSite(ctx context.Context, name string) (crdt.SiteID, error)

	// ListDocuments returns names of all documents in lexicographic order
	ListDocuments(ctx context.Context) ([]string, error)

	// AppendLocalOperations appends locally generated operations to the document log.
	// Operations are keyed by counter, so log order is preserved on load.
	AppendLocalOperations(ctx context.Context, name string, ops []crdt.Operation) error

	// SaveRemoteOperations stores operations received from other sites.
	// Operations are keyed by id; saving the same operation twice is a no-op.
	SaveRemoteOperations(ctx context.Context, name string, ops []crdt.Operation) error

	// LoadOperations returns local operations in log order and all remote operations
	// Returns ErrDocumentNotFound if document doesn't exist
	LoadOperations(ctx context.Context, name string) (local, remote []crdt.Operation, err error)

	// DeleteDocument removes the document with all its operations and metadata
	// Returns ErrDocumentNotFound if document doesn't exist
	DeleteDocument(ctx context.Context, name string) error
}
