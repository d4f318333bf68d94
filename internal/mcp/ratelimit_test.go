package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPLimiterRejectsAfterBurst(t *testing.T) {
	l := newIPLimiter(1, 2, false)
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return frozen }

	h := l.middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("second client code = %d", rec.Code)
	}
}

func TestIPLimiterCleanupDropsIdle(t *testing.T) {
	l := newIPLimiter(1, 1, false)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(time.Hour)
	l.allow("b")
	l.cleanup()

	if _, ok := l.entries["a"]; ok {
		t.Error("idle entry should be removed")
	}
	if _, ok := l.entries["b"]; !ok {
		t.Error("recent entry should be kept")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:1234"
	if got := clientIP(req, true); got != "192.168.1.5" {
		t.Errorf("clientIP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	if got := clientIP(req, false); got != "192.168.1.5" {
		t.Errorf("untrusted XFF should be ignored, got %q", got)
	}
	if got := clientIP(req, true); got != "203.0.113.9" {
		t.Errorf("clientIP with trusted XFF = %q", got)
	}
}

func TestIPLimiterIgnoresRotatedXFF(t *testing.T) {
	l := newIPLimiter(1, 1, false)
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return frozen }

	h := l.middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 2)
	for _, xff := range []string{"198.51.100.1", "198.51.100.2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}
}
