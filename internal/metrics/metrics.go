// Package metrics exposes Prometheus counters for command outcomes and
// resource reconciliation.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rental"

var (
	once sync.Once

	commandOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_outcomes_total",
			Help:      "Command results by command and outcome.",
		},
		[]string{"command", "outcome"},
	)

	reconciliationRepairs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_repairs_total",
			Help:      "Resource statuses rewritten by reconciliation.",
		},
		[]string{"resource"},
	)

	reconciliationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_conflicts_total",
			Help:      "Conflicts reconciliation could not repair.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)
)

// Register registers the collectors with the default registry. Safe to call
// multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(commandOutcomes, reconciliationRepairs, reconciliationConflicts, httpRequests)
	})
}

// ObserveCommand counts one command result. outcome is the String form of
// commands.Outcome.
func ObserveCommand(command, outcome string) {
	commandOutcomes.WithLabelValues(command, outcome).Inc()
}

func ObserveReconciliation(vehiclesRepaired, driversRepaired, conflicts int) {
	reconciliationRepairs.WithLabelValues("vehicle").Add(float64(vehiclesRepaired))
	reconciliationRepairs.WithLabelValues("driver").Add(float64(driversRepaired))
	reconciliationConflicts.Add(float64(conflicts))
}

func IncHTTP(route, code string) {
	httpRequests.WithLabelValues(route, code).Inc()
}
