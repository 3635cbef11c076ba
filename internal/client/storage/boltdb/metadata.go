package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/crdt"
)

// SaveServerVector saves the server version vector after a successful sync
func (s *Storage) SaveServerVector(ctx context.Context, name string, vector crdt.VersionVector) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("failed to marshal server vector: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		doc, err := documentBucket(tx, name)
		if err != nil {
			return err
		}

		if err := doc.Put(keyServerVector, data); err != nil {
			return fmt.Errorf("failed to save server vector: %w", err)
		}

		return nil
	})
}

// GetServerVector retrieves the server version vector of the last successful sync
// Returns an empty vector if no sync has been performed yet
func (s *Storage) GetServerVector(ctx context.Context, name string) (crdt.VersionVector, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	vector := crdt.VersionVector{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		doc, err := documentBucket(tx, name)
		if err != nil {
			return err
		}

		data := doc.Get(keyServerVector)
		if data == nil {
			// Первая синхронизация
			return nil
		}

		return json.Unmarshal(data, &vector)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get server vector: %w", err)
	}

	return vector, nil
}
