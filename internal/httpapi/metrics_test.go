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

func TestMetricsMiddleware_EmitsRequestCounters(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rr := httptest.NewRecorder()
	MetricsMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !bytes.Contains(scrape(t), []byte("houseprice_http_requests_total")) {
		t.Fatalf("expected houseprice_http_requests_total in metrics")
	}
}

// A request routed inside chi is labelled by its route pattern.
func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/42", nil))

	c := httpRequestsTotal.WithLabelValues("/things/{id}", http.MethodGet, "418")
	if got := testutil.ToFloat64(c); got != 1 {
		t.Fatalf("pattern counter=%v", got)
	}
	if bytes.Contains(scrape(t), []byte(`path="/things/42"`)) {
		t.Fatalf("raw path leaked into labels")
	}
}

func TestIncrementBackpressure(t *testing.T) {
	before := testutil.ToFloat64(backpressureTotal.WithLabelValues("unspecified"))
	IncrementBackpressure("")
	if got := testutil.ToFloat64(backpressureTotal.WithLabelValues("unspecified")); got != before+1 {
		t.Fatalf("backpressure=%v want %v", got, before+1)
	}
}

// Unknown URLs must not mint new label values on any metric family.
func TestMetrics_UnmatchedPathsShareOneLabel(t *testing.T) {
	h := NewMux(readyService(), &fakePages{})
	for _, p := range []string{"/junk-a1", "/junk-b2", "/junk-c3"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s status=%d", p, w.Code)
		}
	}
	body := scrape(t)
	if bytes.Contains(body, []byte("/junk-")) {
		t.Fatalf("raw paths leaked into labels")
	}
	c := httpRequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404")
	if got := testutil.ToFloat64(c); got < 3 {
		t.Fatalf("unmatched counter=%v", got)
	}
	if got := testutil.ToFloat64(httpInflight); got != 0 {
		t.Fatalf("inflight=%v after requests finished", got)
	}
}
