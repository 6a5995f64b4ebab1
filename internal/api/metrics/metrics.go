// Package metrics defines and registers all custom Prometheus metrics for
// the finance tracker API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectedTotal counts requests rejected by the token verifier.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "account_gone"
var AuthRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejected_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// RecordsCreatedTotal counts newly created financial records.
// Label:
//   - kind: "income" or "expense"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of financial records created, by kind.",
	},
	[]string{"kind"},
)

// ReportDuration measures how long a summary report takes end-to-end.
var ReportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of summary report computation.",
		Buckets:   prometheus.DefBuckets,
	},
)
