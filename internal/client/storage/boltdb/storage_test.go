package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophtext/internal/client/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketAuth, bucketDocuments} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Каталог не существует
	invalidPath := filepath.Join(t.TempDir(), "missing", "dir", "test.db")
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())
}

func TestCreateTopLevelBuckets_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Update(createTopLevelBuckets))
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocuments).Put([]byte("marker"), []byte("1"))
	}))

	// Повторное создание не трогает существующие данные
	require.NoError(t, db.Update(createTopLevelBuckets))
	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		assert.Equal(t, []byte("1"), tx.Bucket(bucketDocuments).Get([]byte("marker")))
		return nil
	}))
}

func TestNew_LockedByAnotherProcess(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "replica.db")

	first, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer first.Close()

	// Вторая попытка открыть файл ждет блокировку и сдается
	second, err := New(context.Background(), dbPath)
	assert.ErrorIs(t, err, storage.ErrStorageLocked)
	assert.Nil(t, second)
}
