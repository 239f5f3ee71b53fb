// Package metrics defines and registers all custom Prometheus metrics for the
// quiz service. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quiz"

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SubmissionsTotal counts graded quiz submissions.
var SubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of quiz submissions graded.",
	},
)

// SubmissionScoreRatio observes score/total per submission, in [0, 1].
var SubmissionScoreRatio = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "submission_score_ratio",
		Help:      "Distribution of submission scores as a fraction of the catalog size.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11), // 0.0, 0.1, …, 1.0
	},
)
