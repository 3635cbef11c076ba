package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestLimiter создает limiter с управляемыми часами
func newTestLimiter(t *testing.T, rate int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(rate, window, setupTestLogger())
	t.Cleanup(rl.Stop)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, now := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "fourth request should be limited")

	// Другой ключ имеет свой лимит
	assert.True(t, rl.Allow("10.0.0.2"))

	// После окончания окна лимит восстанавливается
	*now = now.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	rl.Allow("10.0.0.1")
	*now = now.Add(90 * time.Second)
	rl.Allow("10.0.0.2")

	*now = now.Add(60 * time.Second)
	rl.cleanupOldBuckets()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "10.0.0.1")
	assert.Contains(t, rl.buckets, "10.0.0.2")
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// Разные порты одного адреса делят лимит
	assert.Equal(t, http.StatusOK, send("192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusOK, send("192.0.2.1:1001").Code)

	rec := send("192.0.2.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.True(t, strings.Contains(rec.Body.String(), "rate limit exceeded"))

	assert.Equal(t, http.StatusOK, send("192.0.2.2:1000").Code)
}

func TestRateLimiter_ClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		want       string
		trustProxy bool
	}{
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.1:5555",
			want:       "192.0.2.1",
		},
		{
			name:       "unparseable remote addr",
			remoteAddr: "pipe",
			want:       "pipe",
		},
		{
			name:       "forwarded header ignored without proxy",
			remoteAddr: "192.0.2.1:5555",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			want:       "192.0.2.1",
		},
		{
			name:       "first forwarded address behind proxy",
			remoteAddr: "10.0.0.1:5555",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"},
			trustProxy: true,
			want:       "203.0.113.9",
		},
		{
			name:       "real ip behind proxy",
			remoteAddr: "10.0.0.1:5555",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			trustProxy: true,
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, _ := newTestLimiter(t, 1, time.Minute)
			rl.TrustProxy = tt.trustProxy

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, setupTestLogger())
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
