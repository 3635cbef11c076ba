package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophtext/pkg/api"
)

func TestMemory_PublishToSubscribers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	defer func() { _ = m.Close() }()

	first, cancelFirst, err := m.Subscribe(ctx, "notes")
	require.NoError(t, err)
	defer cancelFirst()
	second, cancelSecond, err := m.Subscribe(ctx, "notes")
	require.NoError(t, err)
	defer cancelSecond()
	other, cancelOther, err := m.Subscribe(ctx, "other")
	require.NoError(t, err)
	defer cancelOther()

	msg := api.WatchMessage{
		DocumentID: "notes",
		Site:       "0a0b0c0d",
		Operations: 2,
		Vector:     api.VersionVector{"0a0b0c0d": 2},
	}
	require.NoError(t, m.Publish(ctx, msg))

	assert.Equal(t, msg, <-first)
	assert.Equal(t, msg, <-second)
	assert.Empty(t, other)
}

func TestMemory_FullBufferDropsNotification(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	defer func() { _ = m.Close() }()

	ch, cancel, err := m.Subscribe(ctx, "notes")
	require.NoError(t, err)
	defer cancel()

	for i := 0; i < SubscriberBuffer+5; i++ {
		require.NoError(t, m.Publish(ctx, api.WatchMessage{DocumentID: "notes", Operations: i}))
	}

	assert.Len(t, ch, SubscriberBuffer)
	assert.Equal(t, 0, (<-ch).Operations)
}

func TestMemory_Cancel(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	defer func() { _ = m.Close() }()

	ch, cancel, err := m.Subscribe(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Subscribers("notes"))

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "channel must be closed after cancel")
	assert.Equal(t, 0, m.Subscribers("notes"))

	// Публикация без подписчиков не является ошибкой
	assert.NoError(t, m.Publish(ctx, api.WatchMessage{DocumentID: "notes"}))
}

func TestMemory_Close(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ch, cancel, err := m.Subscribe(ctx, "notes")
	require.NoError(t, err)

	require.NoError(t, m.Close())
	_, ok := <-ch
	assert.False(t, ok)

	// cancel после Close не паникует на повторном закрытии канала
	assert.NotPanics(t, cancel)
	assert.NoError(t, m.Close())

	assert.ErrorIs(t, m.Publish(ctx, api.WatchMessage{DocumentID: "notes"}), ErrClosed)
	_, _, err = m.Subscribe(ctx, "notes")
	assert.ErrorIs(t, err, ErrClosed)
}
