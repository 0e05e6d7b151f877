package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/metrics"
)

func TestObserveOutcome(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ObserveOutcome("registration", "confirm", "success")
	m.ObserveOutcome("registration", "confirm", "success")
	m.ObserveOutcome("registration", "confirm", "Link validity expired")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LinkOutcomes.WithLabelValues("registration", "confirm", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LinkOutcomes.WithLabelValues("registration", "confirm", "Link validity expired")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/user/forgotten/{token}/{email}/{expires}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/forgotten/tok/a%40b.c/1700000000", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues(http.MethodGet, "/user/forgotten/{token}/{email}/{expires}", "200")))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "kbooks_http_requests_total")
	assert.NotContains(t, string(body), "a%40b.c")
}
