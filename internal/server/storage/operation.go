package storage

import (
	"context"

	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/models"
)

//go:generate moq -out operation_mock.go . OperationStorage

// OperationStorage defines interface for the relay log of document operations.
// The server never interprets operations beyond their ids: it stores every
// site's stream and hands out the part a peer has not seen yet.
type OperationStorage interface {
	// SaveOperations stores operations of a document in a single transaction.
	// Operations already stored (same document and id) are skipped.
	// Returns number of newly stored operations
	SaveOperations(ctx context.Context, documentID string, ops []crdt.Operation) (int, error)

	// GetOperations returns all operations of a document in arrival order
	// Returns empty slice if document has no operations
	GetOperations(ctx context.Context, documentID string) ([]crdt.Operation, error)

	// GetOperationsNotCovered returns operations in arrival order whose counter
	// is greater than the vector entry of their site
	GetOperationsNotCovered(ctx context.Context, documentID string, vector crdt.VersionVector) ([]crdt.Operation, error)

	// GetVector returns the highest stored counter of every site in the document
	GetVector(ctx context.Context, documentID string) (crdt.VersionVector, error)

	// ListDocuments returns summaries of all documents ordered by id
	ListDocuments(ctx context.Context) ([]models.DocumentInfo, error)
}
