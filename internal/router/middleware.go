package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

const namespace = "quanlythuchi"

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by status code, method and route.",
		},
		[]string{"code", "method", "route"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds by method and route.",
			Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 5},
		},
		[]string{"method", "route"},
	)

	metrics = []prometheus.Collector{requestCount, requestDuration}
)

// registerPrometheusMetrics registers the request metrics with the
// default registry. Metrics registered by another router are reused.
func registerPrometheusMetrics() error {
	for _, c := range metrics {
		err := prometheus.Register(c)

		var are prometheus.AlreadyRegisteredError
		if err != nil && !errors.As(err, &are) {
			return fmt.Errorf("registering metrics: %w", err)
		}
	}

	return nil
}

func unregisterPrometheusMetrics() {
	for _, c := range metrics {
		prometheus.Unregister(c)
	}
}

// MetricsMiddleware counts requests and observes their latency.
//
// Requests are labeled with the route template, e.g.
// /api/transactions/:id, so that IDs do not create new series.
// Requests without a matching route are labeled "unmatched".
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		requestCount.WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, route).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
