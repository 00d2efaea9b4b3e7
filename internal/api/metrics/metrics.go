// Package metrics defines and registers all custom Prometheus metrics for the
// club portal API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AnnouncementsCreatedTotal counts announcements posted per club namespace.
var AnnouncementsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_created_total",
		Help:      "Total number of announcements created, by club.",
	},
	[]string{"club"},
)

// AnnouncementsDeletedTotal counts announcements removed per club namespace.
var AnnouncementsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_deleted_total",
		Help:      "Total number of announcements deleted, by club.",
	},
	[]string{"club"},
)

// AuditEventsTotal counts audit events leaving the dispatcher.
// Label:
//   - result: "recorded", "error", or "dropped" (enqueued against a full
//     worker buffer)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events processed by the dispatcher, by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the current number of events waiting in each
// dispatcher worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
