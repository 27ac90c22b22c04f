package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute, false)
	handler := limiter.Handler(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234"), "request %d", i+1)
	}

	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:1234"))
}

func TestRateLimiterIsPerIP(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, false)
	handler := limiter.Handler(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:5678"))

	// Different client, fresh window.
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2:1234"))
}

func TestRateLimiterWindowResets(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond, false)
	handler := limiter.Handler(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:1234"))

	time.Sleep(15 * time.Millisecond)

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234"))
}

func TestRateLimiterSkipMode(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, true)
	handler := limiter.Handler(okHandler())

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234"))
	}
}
