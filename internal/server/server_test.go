package server

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"club-lineup-service/internal/config"
	"club-lineup-service/internal/store"
	"club-lineup-service/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Store:    config.StoreConfig{Backend: "memory"},
		Tactics:  config.TacticsConfig{Dir: t.TempDir()},
	}
}

func TestNewWiresHandler(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(testConfig(t), logger)

	rr := testutil.Serve(srv.Handler(), "GET", "/health", nil)
	testutil.AssertStatus(t, rr, 200)

	rr = testutil.Serve(srv.Handler(), "GET", "/formations", nil)
	testutil.AssertStatus(t, rr, 200)
}

func TestNewServesEmptySquadListBeforeRefresh(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(testConfig(t), logger)

	rr := testutil.Serve(srv.Handler(), "GET", "/squads", nil)
	testutil.AssertStatus(t, rr, 200)
}

func TestAdminRouteMountedWithToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminToken = "secret"
	logger, _ := testutil.NewBufferLogger()
	srv := New(cfg, logger)

	req := httptest.NewRequest("POST", "/admin/squads/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, 200)

	// The fixture snapshot is now served.
	rr = testutil.Serve(srv.Handler(), "GET", "/squads/ath-rovers", nil)
	testutil.AssertStatus(t, rr, 200)
}

func TestAdminRouteAbsentWithoutToken(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(testConfig(t), logger)

	rr := testutil.Serve(srv.Handler(), "POST", "/admin/squads/refresh", nil)
	testutil.AssertStatus(t, rr, 404)
}

func TestBuildStoreSQLite(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store = config.StoreConfig{
		Backend:    "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "squads.db"),
	}
	logger, _ := testutil.NewBufferLogger()

	st, closeFn := buildStore(cfg, logger)
	if _, ok := st.(*store.SQLiteStore); !ok {
		t.Fatalf("expected sqlite store, got %T", st)
	}
	if closeFn == nil {
		t.Fatalf("expected close function for sqlite store")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestBuildStoreFallsBackToMemory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store = config.StoreConfig{
		Backend:    "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "missing", "nested", "squads.db"),
	}
	logger, buf := testutil.NewBufferLogger()

	st, closeFn := buildStore(cfg, logger)
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", st)
	}
	if closeFn != nil {
		t.Fatalf("expected no close function for memory store")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected fallback warning to be logged")
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec, metricsSrv, shutdown := buildMetrics(testConfig(t), logger)

	if rec == nil {
		t.Fatalf("expected recorder even with metrics disabled")
	}
	if metricsSrv != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
	_ = shutdown
}
