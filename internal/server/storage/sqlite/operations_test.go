package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophtext/internal/crdt"
)

const (
	siteA crdt.SiteID = "0a0b0c0d"
	siteB crdt.SiteID = "1a1b1c1d"
)

// opsFrom возвращает операции документа "Hello" с удаленным символом
func opsFrom(t *testing.T) []crdt.Operation {
	t.Helper()
	doc := crdt.New(siteA)
	doc.Insert(0, "Helloo")
	doc.Delete(5, 1)
	return doc.DiffSlice(crdt.VersionVector{})
}

func TestOperationStorage_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ops := opsFrom(t)

	saved, err := s.SaveOperations(ctx, "notes", ops)
	require.NoError(t, err)
	assert.Equal(t, len(ops), saved)

	// Повторная отправка того же пакета ничего не добавляет
	saved, err = s.SaveOperations(ctx, "notes", ops)
	require.NoError(t, err)
	assert.Equal(t, 0, saved)

	// Частичное пересечение: сохраняются только новые
	doc := crdt.New(siteA)
	doc.Merge(ops)
	more := doc.Insert(doc.Len(), "!")
	saved, err = s.SaveOperations(ctx, "notes", append(ops[:2:2], more...))
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	saved, err = s.SaveOperations(ctx, "notes", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, saved)
}

func TestOperationStorage_GetOperations_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ops := opsFrom(t)
	_, err := s.SaveOperations(ctx, "notes", ops)
	require.NoError(t, err)

	got, err := s.GetOperations(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, ops, got, "operations must come back unchanged in arrival order")

	doc := crdt.New(siteB)
	doc.Merge(got)
	assert.Equal(t, "Hello", doc.String())

	empty, err := s.GetOperations(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOperationStorage_DocumentsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ops := opsFrom(t)
	_, err := s.SaveOperations(ctx, "a", ops)
	require.NoError(t, err)

	// Тот же id операции в другом документе - другая строка
	saved, err := s.SaveOperations(ctx, "b", ops[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	got, err := s.GetOperations(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOperationStorage_GetOperationsNotCovered(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := crdt.New(siteA)
	b := crdt.New(siteB)
	opsA := a.Insert(0, "abc")
	opsB := b.Insert(0, "xy")

	_, err := s.SaveOperations(ctx, "notes", opsA)
	require.NoError(t, err)
	_, err = s.SaveOperations(ctx, "notes", opsB)
	require.NoError(t, err)

	tests := []struct {
		vector crdt.VersionVector
		name   string
		want   []crdt.Operation
	}{
		{name: "empty vector gets everything", vector: crdt.VersionVector{}, want: append(append([]crdt.Operation{}, opsA...), opsB...)},
		{name: "partial site A", vector: crdt.VersionVector{siteA: 2}, want: append([]crdt.Operation{opsA[2]}, opsB...)},
		{name: "site B covered", vector: crdt.VersionVector{siteB: 2}, want: opsA},
		{name: "everything covered", vector: crdt.VersionVector{siteA: 3, siteB: 2}, want: []crdt.Operation{}},
		{name: "vector ahead of server", vector: crdt.VersionVector{siteA: 10, siteB: 10}, want: []crdt.Operation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetOperationsNotCovered(ctx, "notes", tt.vector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationStorage_GetVector(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := crdt.New(siteA)
	_, err := s.SaveOperations(ctx, "notes", a.Insert(0, "abc"))
	require.NoError(t, err)

	b := crdt.New(siteB)
	b.Merge(a.Log())
	// Часы B продвинулись до 3 после слияния, его вставка получает счетчик 4
	_, err = s.SaveOperations(ctx, "notes", b.Insert(0, "x"))
	require.NoError(t, err)

	vector, err := s.GetVector(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, crdt.VersionVector{siteA: 3, siteB: 4}, vector)

	empty, err := s.GetVector(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOperationStorage_ListDocuments(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	docs, err := s.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	ops := opsFrom(t)
	_, err = s.SaveOperations(ctx, "zeta", ops[:2])
	require.NoError(t, err)
	_, err = s.SaveOperations(ctx, "alpha", ops)
	require.NoError(t, err)

	docs, err = s.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "alpha", docs[0].ID)
	assert.Equal(t, len(ops), docs[0].Operations)
	assert.Equal(t, "zeta", docs[1].ID)
	assert.Equal(t, 2, docs[1].Operations)
	assert.False(t, docs[0].UpdatedAt.IsZero())
}
