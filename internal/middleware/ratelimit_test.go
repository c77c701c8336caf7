package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_Middleware_NilRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, 10, time.Hour, "test:", func(r *http.Request) string {
		return "test-key"
	}, true)

	rr := httptest.NewRecorder()
	limiter.Middleware(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	_, client := newTestRedis(t)
	metrics := NewMetrics()
	limiter := NewAPIRateLimiter(client, 2, time.Hour).WithMetrics(metrics)
	handler := limiter.Middleware(okHandler())

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/roadmap", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	require.Equal(t, http.StatusOK, send().Code)

	third := send()
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.Contains(t, third.Body.String(), "Rate limit exceeded")
}

func TestRateLimiter_CountsClientsSeparately(t *testing.T) {
	_, client := newTestRedis(t)
	handler := NewAPIRateLimiter(client, 1, time.Minute).Middleware(okHandler())

	for _, ip := range []string{"198.51.100.1", "198.51.100.2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, ip)
	}
}

func TestRateLimiter_ExemptsNonAPIPaths(t *testing.T) {
	mr, client := newTestRedis(t)
	handler := NewAPIRateLimiter(client, 1, time.Minute).Middleware(okHandler())

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
	}
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_HashesClientAddress(t *testing.T) {
	mr, client := newTestRedis(t)
	handler := NewAPIRateLimiter(client, 5, time.Minute).Middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.RemoteAddr = "192.0.2.44:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "ratelimit:api:"))
	assert.NotContains(t, keys[0], "192.0.2.44")
}

func TestRateLimiter_RedisDown(t *testing.T) {
	tests := []struct {
		name     string
		failOpen bool
		status   int
	}{
		{"fail open", true, http.StatusOK},
		{"fail closed", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := newTestRedis(t)
			mr.Close()

			limiter := NewRateLimiter(client, 1, time.Minute, "test:", APIClientKey, tt.failOpen)
			rr := httptest.NewRecorder()
			limiter.Middleware(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{
			name:     "X-Forwarded-For Single",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "X-Forwarded-For Multiple",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "X-Forwarded-For With Port",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1:443"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "X-Real-IP",
			headers:  map[string]string{"X-Real-IP": "10.0.0.2"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.2",
		},
		{
			name:     "XFF Preference over X-Real-IP",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1", "X-Real-IP": "10.0.0.2"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "No Headers",
			headers:  map[string]string{},
			remote:   "192.168.1.1:1234",
			expected: "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remote

			assert.Equal(t, tt.expected, GetClientIP(req))
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTooManyRequests, "Rate limit exceeded")

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, rr.Body.String())
}
