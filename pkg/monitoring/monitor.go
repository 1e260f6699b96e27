package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// QuizzesScored counts completed attempts by series and primary archetype.
	QuizzesScored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizzes_scored_total",
			Help: "Total number of quiz attempts scored",
		},
		[]string{"series", "primary_archetype"},
	)

	StressFlagsRaised = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stress_flags_raised_total",
			Help: "Total number of results scored with the stress flag set",
		},
	)

	CompatibilityLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compatibility_lookups_total",
			Help: "Total number of compatibility pair lookups served",
		},
		[]string{"pair"},
	)

	PaymentsSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_settled_total",
			Help: "Total number of payments by final status",
		},
		[]string{"product", "status"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(QuizzesScored)
	prometheus.MustRegister(StressFlagsRaised)
	prometheus.MustRegister(CompatibilityLookups)
	prometheus.MustRegister(PaymentsSettled)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
