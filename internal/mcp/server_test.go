package mcp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

func testConfig() config.Config {
	cfg := config.Config{
		Host:                   "127.0.0.1",
		Port:                   "0",
		StorageBackend:         config.BackendMemory,
		SeedMockData:           true,
		SessionStore:           config.SessionMemory,
		ApplicationDuplicates:  "reject",
		ApplicationTransitions: "any",
	}
	return cfg
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	logger := logging.NewNop()

	res, cleanup, err := InitializeResources(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("InitializeResources: %v", err)
	}
	t.Cleanup(cleanup)

	return NewServer(logger, cfg, res)
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.1.1.1:4000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	body, _ := io.ReadAll(rec.Body)
	return rec.Code, string(body)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t, testConfig())
	h := srv.Handler()

	if code, body := get(t, h, "/healthz"); code != http.StatusOK || body != "ok" {
		t.Fatalf("healthz = %d %q", code, body)
	}

	code, body := get(t, h, "/api/v1/jobs/1")
	if code != http.StatusOK || !strings.Contains(body, "Senior Frontend Developer") {
		t.Fatalf("api job = %d %q", code, body)
	}
}

func TestServerRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1
	h := newTestServer(t, cfg).Handler()

	if code, _ := get(t, h, "/healthz"); code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
	if code, _ := get(t, h, "/healthz"); code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", code)
	}
}

func TestInitializeResourcesRejectsBadPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.ApplicationDuplicates = "sometimes"

	if _, _, err := InitializeResources(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatal("expected error for unknown duplicate policy")
	}
}

func TestSheetsAdapterWithoutClient(t *testing.T) {
	a := &sheetsClientAdapter{}
	if _, err := a.Export(context.Background(), tools.SheetsExport{SpreadsheetID: "x"}); err == nil {
		t.Fatal("expected error when sheets is not configured")
	}
}
