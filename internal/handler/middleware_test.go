package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// newTestLimiter builds a limiter with a controllable clock and no cleanup
// goroutine side effects worth worrying about in tests.
func newTestLimiter(window time.Duration, max int) (*RateLimiter, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := &RateLimiter{
		window:            window,
		max:               max,
		trustedProxyCount: 1,
		now:               func() time.Time { return now },
		clients:           make(map[string]*clientWindow),
	}
	return rl, &now
}

func limitedRequest(rl *RateLimiter, ip string) *httptest.ResponseRecorder {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest("GET", "/api/test", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	rl.Middleware(inner).ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AdmitsUnderLimit(t *testing.T) {
	rl, _ := newTestLimiter(time.Minute, 5)
	for i := 0; i < 5; i++ {
		if rec := limitedRequest(rl, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

// The request past the limit gets a 429 with Retry-After and a JSON body.
func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(time.Hour, 20)
	for i := 0; i < 20; i++ {
		if rec := limitedRequest(rl, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := limitedRequest(rl, "10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("21st request: expected 429, got %d", rec.Code)
	}

	retryAfter := rec.Header().Get("Retry-After")
	secs, err := strconv.Atoi(retryAfter)
	if err != nil || secs < 1 {
		t.Errorf("expected positive Retry-After header, got %q", retryAfter)
	}

	var body rateLimitedResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.RetryAfter < 1 {
		t.Errorf("expected advisory retryAfter, got %d", body.RetryAfter)
	}
}

// Advancing the clock past the window frees the IP again.
func TestRateLimiter_WindowSlides(t *testing.T) {
	rl, now := newTestLimiter(time.Minute, 2)

	limitedRequest(rl, "10.0.0.1")
	limitedRequest(rl, "10.0.0.1")
	if rec := limitedRequest(rl, "10.0.0.1"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 at limit, got %d", rec.Code)
	}

	*now = now.Add(61 * time.Second)
	if rec := limitedRequest(rl, "10.0.0.1"); rec.Code != http.StatusOK {
		t.Errorf("expected 200 after window passed, got %d", rec.Code)
	}
}

// retryAfter derives from when the oldest retained request ages out of the
// window, not a flat window length.
func TestRateLimiter_RetryAfterFromOldest(t *testing.T) {
	rl, now := newTestLimiter(time.Minute, 2)

	limitedRequest(rl, "10.0.0.1")
	*now = now.Add(40 * time.Second)
	limitedRequest(rl, "10.0.0.1")

	rec := limitedRequest(rl, "10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	var body rateLimitedResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Oldest request ages out in 20s; +1 rounding gives 21.
	if body.RetryAfter != 21 {
		t.Errorf("expected retryAfter=21, got %d", body.RetryAfter)
	}
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	rl, _ := newTestLimiter(time.Minute, 1)

	if rec := limitedRequest(rl, "10.0.0.1"); rec.Code != http.StatusOK {
		t.Fatalf("first IP: expected 200, got %d", rec.Code)
	}
	if rec := limitedRequest(rl, "10.0.0.2"); rec.Code != http.StatusOK {
		t.Errorf("second IP should not be affected, got %d", rec.Code)
	}
	if rec := limitedRequest(rl, "10.0.0.1"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("first IP should be limited, got %d", rec.Code)
	}
}

func TestRateLimiter_UsesForwardedFor(t *testing.T) {
	rl, _ := newTestLimiter(time.Minute, 1)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(forwarded string) int {
		req := httptest.NewRequest("GET", "/api/test", nil)
		req.RemoteAddr = "127.0.0.1:9999" // the proxy itself
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		rl.Middleware(inner).ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("203.0.113.7"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := send("203.0.113.7"); code != http.StatusTooManyRequests {
		t.Errorf("same forwarded IP should be limited, got %d", code)
	}
	if code := send("203.0.113.8"); code != http.StatusOK {
		t.Errorf("different forwarded IP should pass, got %d", code)
	}
}

// Concurrent requests from one IP never exceed the admission limit: the
// read-modify-write on the window happens under the lock.
func TestRateLimiter_ConcurrentAdmissionBound(t *testing.T) {
	const max = 50
	const attempts = 200

	rl, _ := newTestLimiter(time.Minute, max)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := rl.Middleware(inner)

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("GET", "/api/test", nil)
			req.RemoteAddr = "10.0.0.1:12345"
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)
			if rec.Code == http.StatusOK {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := admitted.Load(); got != max {
		t.Errorf("expected exactly %d admitted under concurrency, got %d", max, got)
	}
}

// --- SecurityHeaders middleware tests ---

func TestSecurityHeaders_SetsAllHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"X-XSS-Protection":       "0",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s: want %q, got %q", name, want, got)
		}
	}
	if csp := rec.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "frame-ancestors 'none'") {
		t.Errorf("CSP missing frame-ancestors directive: %s", csp)
	}
}

func TestSecurityHeaders_PassesThrough(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected inner status to pass through, got %d", rec.Code)
	}
}
