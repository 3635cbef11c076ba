package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophtext/internal/client/api"
	"github.com/iudanet/gophtext/internal/client/editor"
	"github.com/iudanet/gophtext/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/gophtext/internal/client/sync"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/crypto"
	"github.com/iudanet/gophtext/internal/server/handlers"
	"github.com/iudanet/gophtext/internal/server/metrics"
	"github.com/iudanet/gophtext/internal/server/notify"
	"github.com/iudanet/gophtext/internal/server/storage/sqlite"
	"github.com/iudanet/gophtext/pkg/api"
)

const accessKey = "correct horse battery staple"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startServer(t *testing.T, authRate int) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	n := notify.NewMemory()
	t.Cleanup(func() { _ = n.Close() })

	srv := New(Config{
		Version: "test",
		JWT: handlers.JWTConfig{
			Secret:         []byte("0123456789abcdef0123456789abcdef"),
			AccessTokenTTL: time.Minute,
		},
		HashParams:     crypto.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32},
		AuthRateLimit:  authRate,
		AuthRateWindow: time.Minute,
	}, store, n, metrics.New(), testLogger())
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// replica клиентская реплика со своим локальным хранилищем
type replica struct {
	editor editor.Service
	sync   clientsync.Service
	site   crdt.SiteID
	token  string
}

func newReplica(t *testing.T, serverURL string, site crdt.SiteID) *replica {
	t.Helper()
	ctx := context.Background()

	db, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	client := clientapi.NewClient(serverURL)
	_, err = client.Register(ctx, api.RegisterRequest{SiteID: string(site), AccessKey: accessKey})
	require.NoError(t, err)
	token, err := client.Token(ctx, api.TokenRequest{SiteID: string(site), AccessKey: accessKey})
	require.NoError(t, err)

	editorService := editor.NewService(db, testLogger())
	return &replica{
		editor: editorService,
		sync:   clientsync.NewService(client, editorService, db, clientsync.DefaultRetryPolicy, testLogger()),
		site:   site,
		token:  token.AccessToken,
	}
}

func (r *replica) text(t *testing.T, name string) string {
	t.Helper()
	text, err := r.editor.Text(context.Background(), name)
	require.NoError(t, err)
	return text
}

func TestServer_ReplicasConverge(t *testing.T) {
	ctx := context.Background()
	ts := startServer(t, 100)

	a := newReplica(t, ts.URL, "0a0b0c0d")
	b := newReplica(t, ts.URL, "1a1b1c1d")

	require.NoError(t, a.editor.Create(ctx, "notes", a.site))
	require.NoError(t, b.editor.Create(ctx, "notes", b.site))

	_, err := a.editor.Insert(ctx, "notes", 0, "Hello")
	require.NoError(t, err)
	_, err = a.sync.Sync(ctx, "notes", a.token)
	require.NoError(t, err)

	_, err = b.sync.Sync(ctx, "notes", b.token)
	require.NoError(t, err)
	assert.Equal(t, "Hello", b.text(t, "notes"))

	// Одновременные правки в одной позиции
	_, err = a.editor.Insert(ctx, "notes", 5, " world")
	require.NoError(t, err)
	_, err = b.editor.Insert(ctx, "notes", 5, "!")
	require.NoError(t, err)
	_, err = b.editor.Delete(ctx, "notes", 0, 1)
	require.NoError(t, err)

	for _, r := range []*replica{a, b, a} {
		_, err := r.sync.Sync(ctx, "notes", r.token)
		require.NoError(t, err)
	}

	assert.Equal(t, a.text(t, "notes"), b.text(t, "notes"))
	assert.NotContains(t, a.text(t, "notes"), "H")

	client := clientapi.NewClient(ts.URL)
	doc, err := client.GetDocument(ctx, a.token, "notes")
	require.NoError(t, err)
	assert.Equal(t, a.text(t, "notes"), doc.Text)

	list, err := client.ListDocuments(ctx, b.token)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, list.Documents)
}

func TestServer_WatchNotifiesOtherReplica(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ts := startServer(t, 100)

	a := newReplica(t, ts.URL, "0a0b0c0d")
	b := newReplica(t, ts.URL, "1a1b1c1d")
	require.NoError(t, a.editor.Create(ctx, "notes", a.site))

	received := make(chan api.WatchMessage, 1)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- clientapi.NewClient(ts.URL).Watch(ctx, b.token, "notes", func(msg api.WatchMessage) error {
			received <- msg
			return errStop
		})
	}()

	// Повторяем правку, пока наблюдатель не подключится
	require.Eventually(t, func() bool {
		if _, err := a.editor.Insert(ctx, "notes", 0, "x"); err != nil {
			return false
		}
		if _, err := a.sync.Sync(ctx, "notes", a.token); err != nil {
			return false
		}
		return len(received) > 0
	}, 3*time.Second, 50*time.Millisecond)

	msg := <-received
	assert.Equal(t, "notes", msg.DocumentID)
	assert.Equal(t, string(a.site), msg.Site)
	assert.Positive(t, msg.Vector[string(a.site)])
	assert.ErrorIs(t, <-watchErr, errStop)
}

var errStop = errors.New("stop watching")

func TestServer_Routes(t *testing.T) {
	ts := startServer(t, 100)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/v1/health", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"documents require token", http.MethodGet, "/api/v1/documents", http.StatusUnauthorized},
		{"sync requires token", http.MethodPost, "/api/v1/documents/notes/sync", http.StatusUnauthorized},
		{"watch requires token", http.MethodGet, "/api/v1/documents/notes/watch", http.StatusUnauthorized},
		{"wrong method", http.MethodGet, "/api/v1/auth/token", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/api/v2/anything", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestServer_MetricsExposeSyncCounters(t *testing.T) {
	ctx := context.Background()
	ts := startServer(t, 100)

	a := newReplica(t, ts.URL, "0a0b0c0d")
	require.NoError(t, a.editor.Create(ctx, "notes", a.site))
	_, err := a.editor.Insert(ctx, "notes", 0, "abc")
	require.NoError(t, err)
	_, err = a.sync.Sync(ctx, "notes", a.token)
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "gophtext_sync_operations_stored_total 3")
	assert.Contains(t, string(body), `route="/api/v1/documents/{id}/sync"`)
}

func TestServer_AuthRateLimited(t *testing.T) {
	ts := startServer(t, 2)
	client := clientapi.NewClient(ts.URL)
	ctx := context.Background()

	var lastErr error
	for i := 0; i < 3; i++ {
		_, lastErr = client.Token(ctx, api.TokenRequest{SiteID: "0a0b0c0d", AccessKey: accessKey})
	}

	var statusErr *clientapi.StatusError
	require.ErrorAs(t, lastErr, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.True(t, strings.Contains(statusErr.Message, "rate limit"))
}
