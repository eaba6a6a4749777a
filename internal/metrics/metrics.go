// Package metrics holds the Prometheus collectors for the tracker process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "job_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "job_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	storeCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "job_tracker",
			Subsystem: "store",
			Name:      "calls_total",
			Help:      "Remote store calls by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	storeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "job_tracker",
			Subsystem: "store",
			Name:      "call_duration_seconds",
			Help:      "Duration of remote store calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"op"},
	)

	applicationsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "job_tracker",
			Subsystem: "state",
			Name:      "applications",
			Help:      "Applications currently held in memory.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		storeCalls,
		storeDuration,
		applicationsLoaded,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveStoreCall records one remote store round trip.
func ObserveStoreCall(op string, err error, d time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	storeCalls.WithLabelValues(op, outcome).Inc()
	storeDuration.WithLabelValues(op).Observe(d.Seconds())
}

func SetApplications(n int) {
	applicationsLoaded.Set(float64(n))
}
