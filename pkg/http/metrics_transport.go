package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_requests_total",
			Help: "Total outbound HTTP requests by method, host, and status. Status 0 means no response was received.",
		},
		[]string{"method", "host", "status"},
	)
	clientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Outbound HTTP request latency in seconds.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "host"},
	)
)

type metricsTransport struct {
	transport http.RoundTripper
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.transport.RoundTrip(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	clientRequestsTotal.WithLabelValues(req.Method, req.URL.Host, strconv.Itoa(status)).Inc()
	clientRequestDuration.WithLabelValues(req.Method, req.URL.Host).Observe(time.Since(start).Seconds())

	return resp, err
}

// WithClientMetrics records per-request Prometheus counters and latency
// histograms on the default registry.
func WithClientMetrics() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &metricsTransport{
			transport: rt,
		}
	})
}
