package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	pageRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "turadmin",
			Name:      "page_requests_total",
			Help:      "Page requests by route.",
		},
		[]string{"route"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(pageRequests)
	})
}

// IncPage increments the counter for a route label.
func IncPage(route string) {
	if route == "" {
		route = "unmatched"
	}
	pageRequests.WithLabelValues(route).Inc()
}
