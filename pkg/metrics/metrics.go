// Package metrics provides Prometheus instrumentation.
//
// It defines the standard HTTP metrics plus a handful of domain counters
// around order placement. Wire it once in internal/server:
//
//	r.Use(metrics.Middleware())
//	r.HandleFunc("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "warung",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "warung",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "warung",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// OrdersPlaced counts successfully committed order placements.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "warung",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of orders committed.",
	})

	// StockRejections counts placements rejected for insufficient stock.
	StockRejections = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "warung",
		Subsystem: "orders",
		Name:      "stock_rejections_total",
		Help:      "Placements rejected because stock could not cover a line.",
	})

	// CodeRetries counts collision retries while allocating unique codes.
	CodeRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "warung",
			Subsystem: "codegen",
			Name:      "retries_total",
			Help:      "Candidate-code collisions that triggered a retry.",
		},
		[]string{"policy"},
	)
)

// Registry holds all warung metrics. The process-default registry already
// carries a Go collector, so everything registers on a dedicated one.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		OrdersPlaced,
		StockRejections,
		CodeRetries,
	)
}

// statusRecorder captures the response status for labelling.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration, count and in-flight gauge per request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.status)
			RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).
				Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		})
	}
}

// Handler returns the /metrics scrape endpoint for the warung registry.
func Handler() http.HandlerFunc {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}).ServeHTTP
}
