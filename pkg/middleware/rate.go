// Package middleware provides the HTTP middleware chain for the API.
package middleware

import (
	"net/http"
	"sync"
	"time"
)

// bucket tracks a fixed-window request count for one client IP.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

type limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

func newLimiter() *limiter {
	l := &limiter{buckets: map[string]*bucket{}}

	// Evict buckets whose window has expired, once a minute, so memory stays
	// bounded on long-running servers.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			l.mu.Lock()
			for ip, b := range l.buckets {
				b.mu.Lock()
				expired := now.After(b.resetAt)
				b.mu.Unlock()
				if expired {
					delete(l.buckets, ip)
				}
			}
			l.mu.Unlock()
		}
	}()

	return l
}

func (l *limiter) bucketFor(ip string, window time.Duration) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[ip]; ok {
		return b
	}

	b := &bucket{resetAt: time.Now().Add(window)}
	l.buckets[ip] = b
	return b
}

// RateLimit returns a middleware that limits each IP to max requests per
// window. Example: middleware.RateLimit(300, time.Minute)
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	l := newLimiter()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			if !l.bucketFor(ip, window).allow(max, window) {
				http.Error(w, `{"status":429,"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
