package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/crdt"
)

func TestStorage_CreateDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.CreateDocument(ctx, "notes", "0a0b0c0d"))

	site, err := store.GetDocumentSite(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, crdt.SiteID("0a0b0c0d"), site)

	// Повторное создание запрещено
	err = store.CreateDocument(ctx, "notes", "1a1b1c1d")
	assert.ErrorIs(t, err, storage.ErrDocumentExists)

	_, err = store.GetDocumentSite(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_ListDocuments(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	names, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"todo", "draft", "notes"} {
		require.NoError(t, store.CreateDocument(ctx, name, "0a0b0c0d"))
	}

	names, err = store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"draft", "notes", "todo"}, names)
}

func TestStorage_Operations_RestoreDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	a := crdt.New("0a0b0c0d")
	b := crdt.New("1a1b1c1d")
	require.NoError(t, store.CreateDocument(ctx, "notes", a.Site()))

	// Локальные правки сохраняются по мере создания
	require.NoError(t, store.AppendLocalOperations(ctx, "notes", a.Insert(0, "Hello")))

	// Удаленные операции приходят от другого сайта
	b.Merge(a.DiffSlice(b.Vector()))
	remote := b.Insert(5, " world")
	a.Merge(remote)
	require.NoError(t, store.SaveRemoteOperations(ctx, "notes", remote))

	require.NoError(t, store.AppendLocalOperations(ctx, "notes", a.Delete(0, 1)))

	local, loadedRemote, err := store.LoadOperations(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, a.Log(), local, "local log order must be preserved")
	assert.ElementsMatch(t, remote, loadedRemote)

	restored := crdt.Restore(a.Site(), local, loadedRemote)
	assert.Equal(t, "ello world", restored.String())
	assert.Equal(t, a.Vector(), restored.Vector())
}

func TestStorage_Operations_ReplacementCharacter(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	doc := crdt.New("0a1b2c3d")
	require.NoError(t, store.CreateDocument(ctx, "notes", doc.Site()))
	require.NoError(t, store.AppendLocalOperations(ctx, "notes", doc.Insert(0, "a\uFFFDb")))
	require.NoError(t, store.AppendLocalOperations(ctx, "notes", doc.Insert(3, "x\xffy")))

	remote := crdt.New("1a1b1c1d").Insert(0, "\uFFFD")
	doc.Merge(remote)
	require.NoError(t, store.SaveRemoteOperations(ctx, "notes", remote))

	local, loadedRemote, err := store.LoadOperations(ctx, "notes")
	require.NoError(t, err)

	restored := crdt.Restore(doc.Site(), local, loadedRemote)
	assert.Equal(t, doc.String(), restored.String())
	assert.Contains(t, restored.String(), "a\uFFFDbx\uFFFDy")
}

func TestStorage_SaveRemoteOperations_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	require.NoError(t, store.CreateDocument(ctx, "notes", "0a0b0c0d"))

	remote := crdt.New("1a1b1c1d")
	ops := remote.Insert(0, "abc")

	require.NoError(t, store.SaveRemoteOperations(ctx, "notes", ops))
	require.NoError(t, store.SaveRemoteOperations(ctx, "notes", ops))

	_, loaded, err := store.LoadOperations(ctx, "notes")
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestStorage_Operations_UnknownDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	ops := crdt.New("0a0b0c0d").Insert(0, "x")

	assert.ErrorIs(t, store.AppendLocalOperations(ctx, "missing", ops), storage.ErrDocumentNotFound)
	assert.ErrorIs(t, store.SaveRemoteOperations(ctx, "missing", ops), storage.ErrDocumentNotFound)

	_, _, err := store.LoadOperations(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	assert.ErrorIs(t, store.DeleteDocument(ctx, "missing"), storage.ErrDocumentNotFound)
}

func TestStorage_DeleteDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.CreateDocument(ctx, "notes", "0a0b0c0d"))
	require.NoError(t, store.AppendLocalOperations(ctx, "notes", crdt.New("0a0b0c0d").Insert(0, "x")))

	require.NoError(t, store.DeleteDocument(ctx, "notes"))

	_, err := store.GetDocumentSite(ctx, "notes")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	names, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	doc := crdt.New("0a0b0c0d")
	require.NoError(t, store.CreateDocument(ctx, "notes", doc.Site()))
	require.NoError(t, store.AppendLocalOperations(ctx, "notes", doc.Insert(0, "persisted")))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	local, remote, err := store.LoadOperations(ctx, "notes")
	require.NoError(t, err)
	assert.Empty(t, remote)
	assert.Equal(t, "persisted", crdt.Restore(doc.Site(), local, remote).String())
}

func TestStorage_Documents_Closed(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.CreateDocument(ctx, "notes", "0a0b0c0d"), storage.ErrStorageClosed)

	_, err := store.ListDocuments(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, _, err = store.LoadOperations(ctx, "notes")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
