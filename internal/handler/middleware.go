package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers. The API only serves JSON,
// so the CSP forbids everything.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter limits requests per client IP over a sliding one-minute window.
type RateLimiter struct {
	maxPerMinute   int
	trustedProxies int
	now            func() time.Time

	mu      sync.Mutex
	clients map[string][]time.Time
}

// NewRateLimiter creates a limiter allowing maxPerMinute requests per client.
// A non-positive limit disables limiting. Stale clients are swept until ctx is done.
func NewRateLimiter(ctx context.Context, maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute:   maxPerMinute,
		trustedProxies: 1,
		now:            time.Now,
		clients:        make(map[string][]time.Time),
	}
	go rl.sweepLoop(ctx)
	return rl
}

func (rl *RateLimiter) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	windowStart := rl.now().Add(-time.Minute)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, hits := range rl.clients {
		if hits = prune(hits, windowStart); len(hits) == 0 {
			delete(rl.clients, ip)
		} else {
			rl.clients[ip] = hits
		}
	}
}

func prune(hits []time.Time, windowStart time.Time) []time.Time {
	valid := hits[:0]
	for _, ts := range hits {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	return valid
}

// allow records a hit for ip and reports whether it is within the limit.
// When it is not, the returned duration is how long until a slot frees up.
func (rl *RateLimiter) allow(ip string) (bool, time.Duration) {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	hits := prune(rl.clients[ip], now.Add(-time.Minute))
	if len(hits) >= rl.maxPerMinute {
		rl.clients[ip] = hits
		return false, hits[0].Add(time.Minute).Sub(now)
	}
	rl.clients[ip] = append(hits, now)
	return true, 0
}

// Middleware returns an http.Handler that enforces the limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if rl.maxPerMinute <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		ok, wait := rl.allow(ip)
		if !ok {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", retryAfterSeconds(wait))
			writeError(w, http.StatusTooManyRequests, "rate_limit_exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP reads the entry appended by the trusted proxy from X-Forwarded-For,
// falling back to the connection address.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxies > 0 {
		parts := strings.Split(xff, ",")
		if idx := len(parts) - rl.trustedProxies; idx >= 0 {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
