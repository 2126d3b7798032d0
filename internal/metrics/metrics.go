package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SlotsServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_slots_served_total",
			Help: "Total number of slot resolutions by outcome (filled, empty, error)",
		},
		[]string{"outcome"},
	)

	EventsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_events_recorded_total",
			Help: "Total number of view/click events recorded",
		},
		[]string{"kind"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(SlotsServed)
	prometheus.MustRegister(EventsRecorded)
	prometheus.MustRegister(RequestDuration)
}
