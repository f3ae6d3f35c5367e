package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plantstore_server/services"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestMiddleware(t *testing.T) (*Middleware, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &structs.Config{
		Session: &structs.SessionConfig{
			CookieName:       "plantstore_session",
			Secret:           "test-secret",
			InactivityWindow: 30 * time.Minute,
		},
		RateLimit: &structs.RateLimitConfig{
			Enabled:       true,
			LoginLimit:    3,
			LoginWindow:   time.Minute,
			GeneralLimit:  50,
			GeneralWindow: time.Hour,
		},
	}
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	cache := services.NewCacheServiceWithClient(logger, cfg, client)
	sessions := services.NewSessionService(logger, cfg, cache)

	return NewMiddleware(cfg, logger, sessions, cache), mr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitLoginWindow(t *testing.T) {
	mw, _ := newTestMiddleware(t)
	h := mw.RateLimit()(okHandler())

	for i := 1; i <= 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request: status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header on limited response")
	}
}

func TestRateLimitPerIP(t *testing.T) {
	mw, _ := newTestMiddleware(t)
	h := mw.RateLimit()(okHandler())

	for i := 1; i <= 4; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		h.ServeHTTP(rec, req)
	}

	// A different client is untouched by the first one's counter.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:50000"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("other client: status = %d, want 200", rec.Code)
	}
}

func TestRateLimitWindowResets(t *testing.T) {
	mw, mr := newTestMiddleware(t)
	h := mw.RateLimit()(okHandler())

	for i := 1; i <= 4; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		h.ServeHTTP(rec, req)
	}

	mr.FastForward(61 * time.Second)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("after window reset: status = %d, want 200", rec.Code)
	}
}

func TestRateLimitSkipsHealthAndRoot(t *testing.T) {
	mw, _ := newTestMiddleware(t)
	h := mw.RateLimit()(okHandler())

	for _, path := range []string{"/health", "/metrics", "/"} {
		for i := 0; i < 100; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.RemoteAddr = "10.0.0.1:50000"
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s request %d: status = %d, want 200", path, i+1, rec.Code)
			}
		}
	}
}

func TestRateLimitFailsOpenWhenCacheDown(t *testing.T) {
	mw, mr := newTestMiddleware(t)
	h := mw.RateLimit()(okHandler())

	mr.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("cache down: status = %d, want 200 (fail open)", rec.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw, _ := newTestMiddleware(t)
	mw.cfg.RateLimit.Enabled = false
	h := mw.RateLimit()(okHandler())

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("disabled limiter request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}

func TestClientIPHeaders(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/shop", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := mw.clientIP(req); got != "203.0.113.9" {
		t.Errorf("clientIP with XFF = %q, want 203.0.113.9", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/shop", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	req.Header.Set("X-Real-IP", "203.0.113.10")
	if got := mw.clientIP(req); got != "203.0.113.10" {
		t.Errorf("clientIP with X-Real-IP = %q, want 203.0.113.10", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/shop", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	if got := mw.clientIP(req); got != "10.0.0.1" {
		t.Errorf("clientIP from RemoteAddr = %q, want 10.0.0.1", got)
	}
}
