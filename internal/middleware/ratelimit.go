package middleware

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"github.com/HammerMeetNail/syncin/internal/logging"
)

// KeyFunc picks the identity a request is counted against. An empty key
// exempts the request from limiting.
type KeyFunc func(r *http.Request) string

// RateLimiter is a fixed-window counter kept in Redis. A nil client
// disables it.
type RateLimiter struct {
	redis    *redis.Client
	limit    int64
	window   time.Duration
	prefix   string
	keyFunc  KeyFunc
	failOpen bool
	metrics  *Metrics
}

func NewRateLimiter(redisClient *redis.Client, limit int64, window time.Duration, prefix string, keyFunc KeyFunc, failOpen bool) *RateLimiter {
	if keyFunc == nil {
		keyFunc = GetClientIP
	}
	return &RateLimiter{
		redis:    redisClient,
		limit:    limit,
		window:   window,
		prefix:   prefix,
		keyFunc:  keyFunc,
		failOpen: failOpen,
	}
}

// NewAPIRateLimiter limits /api/ routes per client IP and lets everything
// through when Redis misbehaves.
func NewAPIRateLimiter(redisClient *redis.Client, limit int64, window time.Duration) *RateLimiter {
	return NewRateLimiter(redisClient, limit, window, "ratelimit:api:", APIClientKey, true)
}

// WithMetrics counts rejections on m.
func (rl *RateLimiter) WithMetrics(m *Metrics) *RateLimiter {
	rl.metrics = m
	return rl
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.redis == nil {
			next.ServeHTTP(w, r)
			return
		}

		id := rl.keyFunc(r)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed, remaining, reset, err := rl.isAllowed(r.Context(), rl.prefix+hashKey(id))
		if err != nil {
			logging.FromContext(r.Context()).Warn("Rate limiter unavailable", map[string]interface{}{
				"error":     err.Error(),
				"fail_open": rl.failOpen,
			})
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(rl.limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			retry := int64(time.Until(reset).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.FormatInt(retry, 10))
			rl.metrics.RateLimited()
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Apply lets the limiter sit in the same chain as the other middleware.
func (rl *RateLimiter) Apply(next http.Handler) http.Handler {
	return rl.Middleware(next)
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (allowed bool, remaining int64, reset time.Time, err error) {
	windowStart := time.Now().Truncate(rl.window)
	reset = windowStart.Add(rl.window)
	key = fmt.Sprintf("%s:%d", key, windowStart.Unix())

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireAt(ctx, key, reset.Add(time.Second))
	if _, err = pipe.Exec(ctx); err != nil {
		return false, 0, reset, fmt.Errorf("incrementing rate counter: %w", err)
	}

	count := incr.Val()
	remaining = rl.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= rl.limit, remaining, reset, nil
}

// hashKey keeps raw client addresses out of Redis.
func hashKey(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:16])
}

// APIClientKey counts /api/ requests per client IP and exempts the rest.
func APIClientKey(r *http.Request) string {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		return ""
	}
	return GetClientIP(r)
}

// GetClientIP returns the originating client address, preferring proxy
// headers over the socket peer.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		first = strings.TrimSpace(first)
		if host, _, err := net.SplitHostPort(first); err == nil {
			return host
		}
		if first != "" {
			return first
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
