package storage

import (
	"context"

	"github.com/iudanet/gophtext/internal/crdt"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing per-document sync metadata
type MetadataStorage interface {
	// SaveServerVector saves the server version vector after a successful sync
	SaveServerVector(ctx context.Context, name string, vector crdt.VersionVector) error

	// GetServerVector retrieves the server version vector of the last successful sync
	// Returns an empty vector if no sync has been performed yet
	GetServerVector(ctx context.Context, name string) (crdt.VersionVector, error)
}
