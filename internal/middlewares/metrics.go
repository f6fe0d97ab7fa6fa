package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/flexitout/workout-tracker/internal/observability"
)

// MetricsMiddleware records request counts, latencies and in-flight
// requests for every route.
func MetricsMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			endpoint := routePattern(r)

			metrics.HTTPRequestsTotal.
				WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).
				Inc()
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, endpoint).
				Observe(time.Since(start).Seconds())
		})
	}
}

// routePattern prefers the chi route pattern over the raw path so that
// metrics cardinality stays bounded.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
