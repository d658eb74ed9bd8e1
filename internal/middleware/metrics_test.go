package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelplanner/internal/metrics"
	"github.com/pkordes/travelplanner/internal/middleware"
)

func TestMetricsHandler_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := chi.NewRouter()
	r.Use(middleware.NewMetricsHandler(m))
	r.Post("/trips/{tripID}/delete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips/"+id+"/delete", nil))
		require.Equal(t, http.StatusSeeOther, rec.Code)
	}

	// Both ids collapse into one series keyed by the pattern.
	require.Equal(t, 1, promtestutil.CollectAndCount(m.HTTPLatency))

	families, err := reg.Gather()
	require.NoError(t, err)
	labels := map[string]string{}
	for _, f := range families {
		if f.GetName() != "http_requests_latency_seconds" {
			continue
		}
		for _, lp := range f.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		require.EqualValues(t, 2, f.GetMetric()[0].GetHistogram().GetSampleCount())
	}
	require.Equal(t, "/trips/{tripID}/delete", labels["route"])
	require.Equal(t, "303", labels["status"])
	require.Equal(t, http.MethodPost, labels["method"])
}

func TestMetricsHandler_NilMetricsPassesThrough(t *testing.T) {
	h := middleware.NewMetricsHandler(nil)(trivialHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
