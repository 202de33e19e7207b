// Package metrics defines and registers all custom Prometheus metrics for the
// taskboard API. It is the single source of truth for metric names, labels,
// and help strings. All metrics register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRegistrationsTotal counts successfully registered accounts.
var AuthRegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// TasksCreatedTotal counts created tasks.
// Label:
//   - status: the initial board column ("To Do", "In Progress", "Done")
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)

// BoardCacheTotal counts board cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from the store)
var BoardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "board_cache_total",
		Help:      "Total number of board cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ActivitiesRecordedTotal counts audit entries written by the activity workers.
// Label:
//   - action: "created", "updated", or "deleted"
var ActivitiesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_recorded_total",
		Help:      "Total number of task activity entries persisted, by action.",
	},
	[]string{"action"},
)

// ActivityQueueDepth tracks the number of entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
