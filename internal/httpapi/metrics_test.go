package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func scrape(t *testing.T) []byte {
	t.Helper()
	mrr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	return mrr.Body.Bytes()
}

func preview(b []byte) string {
	if len(b) > 400 {
		b = b[:400]
	}
	return string(b)
}

// TestMetricsMiddleware_UsesRoutePattern ensures the metrics middleware labels
// by the chi route pattern instead of the raw URL path.
func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/12345", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/items/{id}", http.MethodGet, "200"))
	if got < 1 {
		t.Fatalf("expected counter for route pattern, got %v", got)
	}
	body := scrape(t)
	if bytes.Contains(body, []byte("/items/12345")) {
		t.Fatalf("raw path leaked into labels: %q", preview(body))
	}
}

func TestMetricsEndpointServesHTTPMetrics(t *testing.T) {
	h := newTestMux(&mockService{})
	if w := do(t, h, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	w := do(t, h, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("ollamaapi_http_requests_total")) {
		t.Fatalf("expected ollamaapi_http_requests_total in metrics; got: %q", preview(w.Body.Bytes()))
	}
}

func TestMetrics_UnmatchedRoutesShareLabel(t *testing.T) {
	h := newTestMux(&mockService{})
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404"))
	do(t, h, http.MethodGet, "/does/not/exist/1", "")
	do(t, h, http.MethodGet, "/does/not/exist/2", "")
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404"))
	if after < before+2 {
		t.Fatalf("expected unmatched counter to grow by 2: before=%v after=%v", before, after)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 200: "200", 404: "404", 1000: "1000"}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Fatalf("itoa(%d)=%q want %q", in, got, want)
		}
	}
}
