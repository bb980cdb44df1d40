// Package metrics defines and registers the custom Prometheus metrics of the
// career guidance service. Metrics register with the default registry on
// package init through promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careerguide"

// ── Recommendation metrics ────────────────────────────────────────────────────

// RecommendationsTotal counts resolved recommendation requests.
// Label:
//   - outcome: "ok", "degraded" or "failed"
var RecommendationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_resolved_total",
		Help:      "Total number of recommendation requests, by outcome.",
	},
	[]string{"outcome"},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// ChatRequestsTotal counts advisory chat requests.
// Label:
//   - result: "ok" or "error"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of advisory chat requests, by result.",
	},
	[]string{"result"},
)

// CompletionDuration measures calls to the completion provider.
// Labels:
//   - model: configured model id
//   - result: "ok" or "error"
var CompletionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "completion_duration_seconds",
		Help:      "Duration of text-completion provider calls.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	},
	[]string{"model", "result"},
)

// CompletionTokensTotal counts tokens reported by the provider.
// Label:
//   - direction: "input" or "output"
var CompletionTokensTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_tokens_total",
		Help:      "Total number of completion tokens, by direction.",
	},
	[]string{"direction"},
)

// ── Progress metrics ──────────────────────────────────────────────────────────

// MilestonesToggledTotal counts milestone toggles.
// Label:
//   - action: "completed" or "reopened"
var MilestonesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "milestones_toggled_total",
		Help:      "Total number of roadmap milestone toggles.",
	},
	[]string{"action"},
)

// SessionsIssuedTotal counts anonymous sessions handed out.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of anonymous sessions issued.",
	},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// StorageErrorsTotal counts key-value backend failures.
// Label:
//   - op: "read", "decode" or "write"
var StorageErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Total number of key-value storage failures, by operation.",
	},
	[]string{"op"},
)
