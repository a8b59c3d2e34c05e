package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "language_connect_requests_total",
			Help: "Requests handled, by handler, action and status code",
		},
		[]string{"handler", "action", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "language_connect_request_duration_seconds",
			Help:    "Request latency by handler and action",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "action"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "language_connect_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"handler"},
	)
	TranslateFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "language_connect_translate_fallbacks_total",
			Help: "Translations answered with the original text",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(Requests)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(TranslateFallbacks)
}

// ObserveRequest records one finished request.
func ObserveRequest(handler, action string, status int, elapsed time.Duration) {
	Requests.WithLabelValues(handler, action, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(handler, action).Observe(elapsed.Seconds())
}
