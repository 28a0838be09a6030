package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeHandled      = "handled"
	OutcomeUnknown      = "unknown"
	OutcomeParseError   = "parse_error"
	OutcomeInvalid      = "invalid"
	OutcomeCanceled     = "canceled"
	OutcomeFailed       = "handler_error"
	OutcomeDuplicateKey = "duplicate_key"
)

// Metrics holds the router counters.
type Metrics struct {
	Messages *prometheus.CounterVec
	Issues   *prometheus.CounterVec
}

// NewMetrics creates the router counters on reg. A nil reg leaves them
// unregistered, which is what tests and one-shot CLI runs want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Messages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rpcbind",
				Name:      "messages_total",
				Help:      "Messages routed, by kind, function, and outcome",
			},
			[]string{"kind", "function", "outcome"},
		),
		Issues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rpcbind",
				Name:      "validation_issues_total",
				Help:      "Validation issues found in rejected messages, by function and code",
			},
			[]string{"function", "code"},
		),
	}
}
