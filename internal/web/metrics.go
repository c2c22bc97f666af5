package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the web shell's request collectors.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	themeToggles    *prometheus.CounterVec
}

// NewMetrics registers the web collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worldview",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of web shell requests",
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "worldview",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Web shell request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		themeToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worldview",
			Subsystem: "http",
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting mode",
		}, []string{"mode"}),
	}
}

func (m *Metrics) observeRequest(route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, status).Inc()
	m.requestDuration.WithLabelValues(route).Observe(seconds)
}

func (m *Metrics) observeToggle(mode string) {
	if m == nil {
		return
	}
	m.themeToggles.WithLabelValues(mode).Inc()
}
