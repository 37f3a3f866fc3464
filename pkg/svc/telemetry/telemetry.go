// Package telemetry provides a Prometheus-backed usage sink implementing the
// host telemetry contract.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Sink records usage events as Prometheus metrics and structured log lines.
type Sink struct {
	log *logrus.Logger

	usageTotal    *prometheus.CounterVec
	usageDuration *prometheus.HistogramVec
}

// NewSink creates a Sink and registers its collectors with the given
// registerer.
func NewSink(registerer prometheus.Registerer, log *logrus.Logger) *Sink {
	if log == nil {
		log = logrus.StandardLogger()
	}

	sink := &Sink{
		log: log,
		usageTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "minc_desktop",
				Name:      "usage_total",
				Help:      "Total number of usage events by event name and result",
			},
			[]string{"event", "result"},
		),
		usageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "minc_desktop",
				Name:      "usage_duration_seconds",
				Help:      "Duration of usage events in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"event"},
		),
	}

	registerer.MustRegister(sink.usageTotal, sink.usageDuration)

	return sink
}

// LogUsage records one usage event. The "duration" property (seconds) feeds
// the duration histogram; the presence of an "error" property marks the event
// as failed.
func (s *Sink) LogUsage(event string, properties map[string]any) {
	result := "success"
	if _, failed := properties["error"]; failed {
		result = "failure"
	}

	s.usageTotal.WithLabelValues(event, result).Inc()

	if duration, ok := properties["duration"].(float64); ok {
		s.usageDuration.WithLabelValues(event).Observe(duration)
	}

	s.log.WithFields(logrus.Fields(properties)).WithField("event", event).Debug("usage")
}
