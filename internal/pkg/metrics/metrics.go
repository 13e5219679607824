// Package metrics exposes Prometheus counters for the notification
// pipeline. Emission is fire-and-forget, so publish and persistence
// failures never reach the producer; these counters are the out-of-band
// sink that makes the degradation observable.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_events_emitted_total",
		Help: "Notification events emitted, by kind.",
	}, []string{"kind"})

	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_publish_failures_total",
		Help: "Real-time publish attempts that failed.",
	})

	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_persist_failures_total",
		Help: "Durable notification writes that failed.",
	})
)
