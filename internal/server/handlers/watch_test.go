package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophtext/internal/server/metrics"
	"github.com/iudanet/gophtext/internal/server/notify"
	"github.com/iudanet/gophtext/pkg/api"
)

func newWatchServer(t *testing.T, n notify.Notifier, m *metrics.Metrics) *httptest.Server {
	t.Helper()

	handler := NewWatchHandler(setupTestLogger(), n, m)
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/documents/{id}/watch", func(w http.ResponseWriter, r *http.Request) {
		handler.Watch(w, r.WithContext(WithSiteID(r.Context(), siteA)))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dialWatch(t *testing.T, srv *httptest.Server, docID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/documents/" + docID + "/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWatchHandler_DeliversNotifications(t *testing.T) {
	n := notify.NewMemory()
	defer func() { _ = n.Close() }()
	m := metrics.New()
	srv := newWatchServer(t, n, m)

	conn := dialWatch(t, srv, "notes")

	// Подписка создается до upgrade, поэтому после Dial она уже существует
	require.Equal(t, 1, n.Subscribers("notes"))
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.Watchers) == 1
	}, time.Second, 10*time.Millisecond)

	msg := api.WatchMessage{DocumentID: "notes", Site: siteB, Operations: 3, Vector: api.VersionVector{siteB: 3}}
	require.NoError(t, n.Publish(context.Background(), msg))
	require.NoError(t, n.Publish(context.Background(), api.WatchMessage{DocumentID: "other"}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got api.WatchMessage
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, msg, got)
}

func TestWatchHandler_ClientDisconnectUnsubscribes(t *testing.T) {
	n := notify.NewMemory()
	defer func() { _ = n.Close() }()
	m := metrics.New()
	srv := newWatchServer(t, n, m)

	conn := dialWatch(t, srv, "notes")
	require.Equal(t, 1, n.Subscribers("notes"))

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	assert.Eventually(t, func() bool {
		return n.Subscribers("notes") == 0 && testutil.ToFloat64(m.Watchers) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchHandler_NotifierClosed(t *testing.T) {
	n := notify.NewMemory()
	require.NoError(t, n.Close())
	srv := newWatchServer(t, n, metrics.New())

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/documents/notes/watch"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestWatchHandler_InvalidDocument(t *testing.T) {
	handler := NewWatchHandler(setupTestLogger(), notify.NewMemory(), metrics.New())

	r := request(t, http.MethodGet, "/", nil, siteA)
	r = mux.SetURLVars(r, map[string]string{"id": "bad/name"})
	rec := httptest.NewRecorder()
	handler.Watch(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
