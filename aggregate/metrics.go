package aggregate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	prometheusNamespace = "driverimages_aggregate"
	pushJobName         = "driverimages_aggregate"
)

type metrics struct {
	completionTime  prometheus.Gauge
	droppedMappings prometheus.Gauge
	duration        prometheus.Gauge
	images          prometheus.Gauge
	lookupFailures  prometheus.Gauge
	registry        *prometheus.Registry
}

func newMetrics() *metrics {
	m := &metrics{
		completionTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: prometheusNamespace,
			Name:      "last_completion_timestamp_seconds",
			Help:      "The timestamp of the last completion of an aggregation, successful or not.",
		}),
		droppedMappings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: prometheusNamespace,
			Name:      "dropped_mappings",
			Help:      "The number of block device mappings without a snapshot during the last aggregation.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: prometheusNamespace,
			Name:      "duration_seconds",
			Help:      "The duration of the last aggregation in seconds.",
		}),
		images: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: prometheusNamespace,
			Name:      "images",
			Help:      "The number of images returned by the last aggregation.",
		}),
		lookupFailures: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: prometheusNamespace,
			Name:      "snapshot_lookup_failures",
			Help:      "The number of failed snapshot lookups during the last aggregation.",
		}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.completionTime, m.droppedMappings, m.duration, m.images, m.lookupFailures)
	return m
}

func (m *metrics) reset() {
	m.droppedMappings.Set(0)
	m.images.Set(0)
	m.lookupFailures.Set(0)
}

func (m *metrics) pusher(url string) *push.Pusher {
	return push.New(url, pushJobName).Gatherer(m.registry)
}
