package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/flexitout/workout-tracker/internal/observability"
)

func TestMetricsMiddleware(t *testing.T) {
	metrics := observability.NewMetrics()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	handler := MetricsMiddleware(metrics)(next)

	req := httptest.NewRequest(http.MethodPost, "/workouts", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	counter := metrics.HTTPRequestsTotal.WithLabelValues("POST", "/workouts", "201")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))

	// No request is in flight once the handler has returned
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}
