package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.OperationsReceived.WithLabelValues("insert").Add(3)
	m.OperationsReceived.WithLabelValues("delete").Inc()
	m.OperationsStored.Add(2)
	m.Watchers.Inc()
	m.Watchers.Inc()
	m.Watchers.Dec()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.OperationsReceived.WithLabelValues("insert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsReceived.WithLabelValues("delete")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsStored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Watchers))
}

func TestMetrics_ObserveSync(t *testing.T) {
	m := New()

	m.ObserveSync(time.Now(), nil)
	m.ObserveSync(time.Now(), nil)
	m.ObserveSync(time.Now(), errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.SyncDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.OperationsStored.Add(5)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gophtext_sync_operations_stored_total 5")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.OperationsSent.Add(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(a.OperationsSent))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.OperationsSent))
}
