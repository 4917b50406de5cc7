// Package observability holds the Prometheus collectors of the moderation core.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"campushub/internal/domain"
)

var (
	// StatusTransitions counts conditional transitions by entity kind and outcome.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushub_status_transitions_total",
		Help: "Total number of conditional status transitions by entity and outcome",
	}, []string{"entity", "outcome"})

	// CascadeAffected counts users and events moved by college cascades.
	CascadeAffected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushub_cascade_affected_total",
		Help: "Total number of records moved by college cascades",
	}, []string{"entity", "direction"})

	// CascadeFailures counts cascade steps that returned an error.
	CascadeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushub_cascade_failures_total",
		Help: "Total number of failed cascade steps",
	}, []string{"entity", "direction"})

	// NotificationsDispatched counts persisted notifications by kind.
	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushub_notifications_dispatched_total",
		Help: "Total number of notifications dispatched",
	}, []string{"kind"})

	// NotificationRecipients observes the recipient set size of each notification.
	NotificationRecipients = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "campushub_notification_recipients",
		Help:    "Number of recipients per dispatched notification",
		Buckets: []float64{1, 2, 3, 5, 10, 25, 50},
	})

	// AdminDirectoryLookups counts admin directory reads by source (cache, store).
	AdminDirectoryLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushub_admin_directory_lookups_total",
		Help: "Total number of admin directory lookups by source",
	}, []string{"source"})
)

// RecordTransition increments the transition counter.
func RecordTransition(kind domain.EntityKind, outcome string) {
	StatusTransitions.WithLabelValues(string(kind), outcome).Inc()
}

// RecordCascade adds n moved records for kind in direction.
func RecordCascade(kind domain.EntityKind, direction domain.CascadeDirection, n int64) {
	CascadeAffected.WithLabelValues(string(kind), string(direction)).Add(float64(n))
}

// RecordCascadeFailure increments the cascade failure counter.
func RecordCascadeFailure(kind domain.EntityKind, direction domain.CascadeDirection) {
	CascadeFailures.WithLabelValues(string(kind), string(direction)).Inc()
}

// RecordNotification records one dispatched notification with its recipient count.
func RecordNotification(kind domain.NotificationKind, recipients int) {
	NotificationsDispatched.WithLabelValues(string(kind)).Inc()
	NotificationRecipients.Observe(float64(recipients))
}

// HTTPRequestDuration observes request latency by method and status code.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "campushub_http_request_duration_seconds",
	Help:    "HTTP request latency by method and status",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "status"})
