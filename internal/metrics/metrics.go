// Package metrics expone contadores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK           = "ok"
	ResultInsufficient = "insufficient"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// FeedingCalculationsTotal cuenta recomendaciones por especie y resultado (ok|insufficient).
	FeedingCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feeding_calculations_total",
			Help: "Total number of daily feeding calculations",
		},
		[]string{"species", "result"},
	)

	FoodsSeededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foods_seeded_total",
			Help: "Shared catalog foods created from the seed file",
		},
	)
)

// RecordFeeding registra un cálculo de ración.
func RecordFeeding(species string, sufficient bool) {
	result := ResultOK
	if !sufficient {
		result = ResultInsufficient
	}
	if species == "" {
		species = "unknown"
	}
	FeedingCalculationsTotal.WithLabelValues(species, result).Inc()
}

// Middleware mide cada request usando el patrón de ruta de chi
// (así /pets/{petID} no explota la cardinalidad).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)

		HTTPRequestTotal.WithLabelValues(r.Method, route, code).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
	})
}
