package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExportsFetchMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "espn-scores-test",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()
	if rec == nil || handler == nil {
		t.Fatalf("expected recorder and handler when enabled")
	}

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordFetch("football/nfl", 3*time.Millisecond, nil)
	rec.RecordFetch("football/nfl", 3*time.Millisecond, errors.New("boom"))

	srv := httptest.NewServer(handler)
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, name := range []string{"espn_fetches_total", "espn_fetch_errors_total", "http_requests_total"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("expected %s in scrape output", name)
		}
	}
	if rec.FetchErrors("football/nfl") != 1 {
		t.Fatalf("expected in-memory stats alongside otel")
	}
}

func TestSetupPropagatesExporterErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatal("expected exporter error")
	}
}

func TestSetupWithOTLPEndpointUsesReaderFactory(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	var gotEndpoint string
	var gotInsecure bool
	otlpReaderFactory = func(_ context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		gotEndpoint, gotInsecure = endpoint, insecure
		return sdkmetric.NewManualReader(), nil
	}

	_, _, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:      true,
		OtlpEndpoint: "collector:4318",
		OtlpInsecure: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_ = shutdown(context.Background())
	if gotEndpoint != "collector:4318" || !gotInsecure {
		t.Fatalf("unexpected otlp settings endpoint=%s insecure=%v", gotEndpoint, gotInsecure)
	}
}
