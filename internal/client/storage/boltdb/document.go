package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/codec"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/pkg/api"
)

// CreateDocument registers a new empty document owned by site
func (s *Storage) CreateDocument(ctx context.Context, name string, site crdt.SiteID) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		documents := tx.Bucket(bucketDocuments)
		if documents == nil {
			return fmt.Errorf("documents bucket not found")
		}

		if documents.Bucket([]byte(name)) != nil {
			return storage.ErrDocumentExists
		}

		doc, err := documents.CreateBucket([]byte(name))
		if err != nil {
			return fmt.Errorf("failed to create document bucket: %w", err)
		}
		if _, err := doc.CreateBucket(bucketLocal); err != nil {
			return fmt.Errorf("failed to create local bucket: %w", err)
		}
		if _, err := doc.CreateBucket(bucketRemote); err != nil {
			return fmt.Errorf("failed to create remote bucket: %w", err)
		}

		if err := doc.Put(keySite, []byte(site)); err != nil {
			return fmt.Errorf("failed to save document site: %w", err)
		}

		return nil
	})
}

// GetDocumentSite returns the site id the document was created with
func (s *Storage) GetDocumentSite(ctx context.Context, name string) (crdt.SiteID, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var site crdt.SiteID

	err := s.db.View(func(tx *bbolt.Tx) error {
		doc, err := documentBucket(tx, name)
		if err != nil {
			return err
		}

		site = crdt.SiteID(doc.Get(keySite))
		return nil
	})

	if err != nil {
		return "", err
	}

	return site, nil
}

// ListDocuments returns names of all documents
func (s *Storage) ListDocuments(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	names := []string{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		documents := tx.Bucket(bucketDocuments)
		if documents == nil {
			return nil
		}

		// Ключи BoltDB отсортированы, значение nil у вложенных buckets
		return documents.ForEach(func(k, v []byte) error {
			if v == nil {
				names = append(names, string(k))
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return names, nil
}

// AppendLocalOperations appends locally generated operations to the document log
func (s *Storage) AppendLocalOperations(ctx context.Context, name string, ops []crdt.Operation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		doc, err := documentBucket(tx, name)
		if err != nil {
			return err
		}
		local := doc.Bucket(bucketLocal)

		for _, op := range ops {
			data, err := json.Marshal(codec.OperationToAPI(op))
			if err != nil {
				return fmt.Errorf("failed to marshal operation %s: %w", op.ID, err)
			}

			// Счетчик в big-endian сохраняет порядок журнала при обходе курсором
			if err := local.Put(counterKey(op.ID.Counter), data); err != nil {
				return fmt.Errorf("failed to save operation %s: %w", op.ID, err)
			}
		}

		return nil
	})
}

// SaveRemoteOperations stores operations received from other sites
func (s *Storage) SaveRemoteOperations(ctx context.Context, name string, ops []crdt.Operation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		doc, err := documentBucket(tx, name)
		if err != nil {
			return err
		}
		remote := doc.Bucket(bucketRemote)

		for _, op := range ops {
			data, err := json.Marshal(codec.OperationToAPI(op))
			if err != nil {
				return fmt.Errorf("failed to marshal operation %s: %w", op.ID, err)
			}

			if err := remote.Put([]byte(op.ID.String()), data); err != nil {
				return fmt.Errorf("failed to save operation %s: %w", op.ID, err)
			}
		}

		return nil
	})
}

// LoadOperations returns local operations in log order and all remote operations
func (s *Storage) LoadOperations(ctx context.Context, name string) ([]crdt.Operation, []crdt.Operation, error) {
	if s.db == nil {
		return nil, nil, storage.ErrStorageClosed
	}

	var local, remote []crdt.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		doc, err := documentBucket(tx, name)
		if err != nil {
			return err
		}

		if local, err = decodeOperations(doc.Bucket(bucketLocal)); err != nil {
			return fmt.Errorf("local operations: %w", err)
		}
		if remote, err = decodeOperations(doc.Bucket(bucketRemote)); err != nil {
			return fmt.Errorf("remote operations: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	return local, remote, nil
}

// DeleteDocument removes the document with all its operations and metadata
func (s *Storage) DeleteDocument(ctx context.Context, name string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		documents := tx.Bucket(bucketDocuments)
		if documents == nil || documents.Bucket([]byte(name)) == nil {
			return storage.ErrDocumentNotFound
		}

		if err := documents.DeleteBucket([]byte(name)); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		return nil
	})
}

// documentBucket возвращает bucket документа или ErrDocumentNotFound
func documentBucket(tx *bbolt.Tx, name string) (*bbolt.Bucket, error) {
	documents := tx.Bucket(bucketDocuments)
	if documents == nil {
		return nil, storage.ErrDocumentNotFound
	}

	doc := documents.Bucket([]byte(name))
	if doc == nil {
		return nil, storage.ErrDocumentNotFound
	}

	return doc, nil
}

func decodeOperations(bucket *bbolt.Bucket) ([]crdt.Operation, error) {
	var ops []crdt.Operation
	if bucket == nil {
		return ops, nil
	}

	err := bucket.ForEach(func(k, v []byte) error {
		var wire api.Operation
		if err := json.Unmarshal(v, &wire); err != nil {
			return fmt.Errorf("failed to unmarshal operation %q: %w", k, err)
		}

		op, err := codec.OperationFromAPI(wire)
		if err != nil {
			return err
		}

		ops = append(ops, op)
		return nil
	})

	return ops, err
}

func counterKey(counter uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, counter)
	return key
}
