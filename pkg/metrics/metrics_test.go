package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/mysite/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_METRICS_ENABLED", "false")

	cfg := &metrics.Config{}
	if !cfg.IsEnabled() {
		t.Error("IsEnabled() = false for unset config")
	}

	if err := cfg.Finalize(&metrics.Env{Enabled: "TEST_METRICS_ENABLED"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.IsEnabled() {
		t.Error("IsEnabled() = true after env override")
	}
	if cfg.Namespace != "mysite" {
		t.Errorf("Namespace = %q, want %q", cfg.Namespace, "mysite")
	}
}

func TestRecorder_Middleware(t *testing.T) {
	rec := metrics.New(&metrics.Config{Namespace: "test"})

	handler := rec.Middleware(func(*http.Request) string { return "index" })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		}),
	)

	for range 3 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	expected := `
# HELP test_http_requests_total HTTP requests by route, method and status code.
# TYPE test_http_requests_total counter
test_http_requests_total{code="200",method="GET",route="index"} 3
`
	if err := testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected), "test_http_requests_total"); err != nil {
		t.Error(err)
	}
}

func TestRecorder_Handler(t *testing.T) {
	rec := metrics.New(&metrics.Config{Namespace: "test"})

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body, _ := io.ReadAll(w.Result().Body)
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("exposition missing Go runtime collector output")
	}
}
