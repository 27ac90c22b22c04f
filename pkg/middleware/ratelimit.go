package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"marrakech-tours/pkg/utils"
)

// RateLimiter is a fixed-window per-IP request counter. It is deliberately
// simple: a tour operator's site sees tens of requests per minute, not
// thousands, and the limiter exists to slow down credential stuffing and
// scraping rather than to shape load.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	skip    bool
	windows map[string]*rateWindow
}

type rateWindow struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing max requests per window per IP.
// When skip is true (development) the limiter passes everything through.
func NewRateLimiter(max int, window time.Duration, skip bool) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		skip:    skip,
		windows: make(map[string]*rateWindow),
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.start) >= rl.window {
		// Stale entries are swept once the map grows large.
		if len(rl.windows) > 10000 {
			for k, v := range rl.windows {
				if now.Sub(v.start) >= rl.window {
					delete(rl.windows, k)
				}
			}
		}
		rl.windows[ip] = &rateWindow{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= rl.max
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Handler wraps the limiter as chi middleware, returning 429 when the
// window is exhausted.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.skip {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.allow(clientIP(r)) {
			utils.ResponseJSON(w, http.StatusTooManyRequests, false, "Too many requests", nil, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
