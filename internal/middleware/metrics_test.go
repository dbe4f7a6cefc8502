package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"yenisei/internal/cache"
	"yenisei/internal/metrics"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/api/epochs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/api/epochs/1", "/api/epochs/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()

	if !strings.Contains(body, `route="/api/epochs/{id}",status="200"} 2`) {
		t.Errorf("expected two requests on the route pattern, got:\n%s", body)
	}
	if strings.Contains(body, `route="/api/epochs/1"`) {
		t.Error("raw path leaked into route label")
	}
}

func TestResponseCacheDisabledPassesThrough(t *testing.T) {
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("ok"))
	})

	var rc *cache.ResponseCache
	handler := ResponseCache(rc, nil, nil)(inner)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/epochs/", nil))
		if rr.Header().Get(CacheStatusHeader) != "" {
			t.Error("disabled cache should not set X-Cache")
		}
	}
	if calls != 2 {
		t.Errorf("handler calls: got %d, want 2", calls)
	}
}
