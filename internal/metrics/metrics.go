// Package metrics exposes Prometheus collectors for the deadline subsystem.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadline_sweep_runs_total",
		Help: "Number of overdue sweeps executed.",
	})

	OverdueMarked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadline_overdue_marked_total",
		Help: "Number of deadlines reclassified as overdue by sweeps.",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deadline_notifications_sent_total",
		Help: "Deadline notifications delivered, by type.",
	}, []string{"type"})

	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deadline_notification_failures_total",
		Help: "Deadline notification deliveries that failed, by type.",
	}, []string{"type"})
)
