package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/datefmt-service/internal/config"
	"github.com/preston-bernstein/datefmt-service/internal/domain"
	"github.com/preston-bernstein/datefmt-service/internal/testutil"
)

func TestServerServesHealthAndFormat(t *testing.T) {
	cfg := config.Config{Formatter: config.FormatterConfig{DefaultPattern: "DD/MM/YYYY"}}
	srv := newServerWithMetrics(cfg, nil, nil)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/format?date=2023-09-15", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected format 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected middleware to set X-Request-ID")
	}
	var resp domain.FormatResult
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Formatted != "15/09/2023" {
		t.Fatalf("expected configured default pattern applied, got %q", resp.Formatted)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{Port: "0", Metrics: config.MetricsConfig{Enabled: false}}
	srv := New(cfg, nil)
	if srv == nil || srv.httpServer == nil || srv.formatter == nil {
		t.Fatalf("expected server with http server and formatter")
	}
	if srv.httpServer.Addr() != ":0" {
		t.Fatalf("expected addr :0, got %s", srv.httpServer.Addr())
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestGracefulShutdownCallsShutdownAndDrains(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	rr := testutil.Serve(srv.handler, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	srv := newServerWithDeps(config.Config{ShutdownTimeout: 5 * time.Millisecond}, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestShutdownTimeoutFallsBackToDefault(t *testing.T) {
	original := defaultShutdownTimeout
	defaultShutdownTimeout = 7 * time.Millisecond
	defer func() { defaultShutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, &testutil.StubHTTPServer{})
	if got := srv.shutdownTimeout(); got != 7*time.Millisecond {
		t.Fatalf("expected default shutdown timeout, got %s", got)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{})

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, _ := testutil.NewBufferLogger()
	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, logger, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
