package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	bolterrors "go.etcd.io/bbolt/errors"

	"github.com/iudanet/gophtext/internal/client/storage"
)

var (
	bucketAuth      = []byte("auth")
	bucketDocuments = []byte("documents")

	// Вложенные buckets и ключи документа
	bucketLocal     = []byte("local")
	bucketRemote    = []byte("remote")
	keySite         = []byte("site")
	keyServerVector = []byte("server_vector")
)

// lockTimeout сколько ждать файловую блокировку, пока другой процесс клиента
// (например, watch) держит реплику открытой
const lockTimeout = time.Second

// Storage is the client replica store: site session plus per-document operation logs
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the replica database at dbPath
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: lockTimeout})
	if err != nil {
		if errors.Is(err, bolterrors.ErrTimeout) {
			return nil, fmt.Errorf("%w: %s", storage.ErrStorageLocked, dbPath)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	if err := db.Update(createTopLevelBuckets); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database; repeated calls are no-ops
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func createTopLevelBuckets(tx *bbolt.Tx) error {
	for _, name := range [][]byte{bucketAuth, bucketDocuments} {
		if _, err := tx.CreateBucketIfNotExists(name); err != nil {
			return fmt.Errorf("failed to create bucket %q: %w", name, err)
		}
	}
	return nil
}
