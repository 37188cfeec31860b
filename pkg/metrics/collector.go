// pkg/metrics/collector.go

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zoer/tweak/pkg/tweak"
)

// Config names the exported metrics.
type Config struct {
	Namespace string
	Subsystem string
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{Namespace: "tweak"}
}

// Collector is a tweak.Observer exporting evaluation steps as Prometheus
// metrics.
//
// Metrics:
//   - <ns>_evaluations_total: case outcomes by case path and result
//   - <ns>_evaluation_duration_seconds: case evaluation duration by case path
//   - <ns>_conditions_total: condition checks by case path, condition and outcome
//   - <ns>_actions_total: leaf action executions by case path, action and outcome
type Collector struct {
	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	conditionsTotal    *prometheus.CounterVec
	actionsTotal       *prometheus.CounterVec
}

var _ tweak.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with registry.
func NewCollector(cfg Config, registry prometheus.Registerer) *Collector {
	c := &Collector{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluations_total",
				Help:      "Total number of case evaluations",
			},
			[]string{"case", "result"},
		),

		evaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of case evaluations in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 15), // 1µs to 16ms
			},
			[]string{"case"},
		),

		conditionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "conditions_total",
				Help:      "Total number of condition checks",
			},
			[]string{"case", "condition", "outcome"},
		),

		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "actions_total",
				Help:      "Total number of action executions",
			},
			[]string{"case", "action", "outcome"},
		),
	}

	registry.MustRegister(
		c.evaluationsTotal,
		c.evaluationDuration,
		c.conditionsTotal,
		c.actionsTotal,
	)

	return c
}

// Observe records s.
func (c *Collector) Observe(s tweak.Step) {
	switch s.Kind {
	case tweak.StepWhen:
		c.conditionsTotal.WithLabelValues(s.Path, s.Label, outcome(s, "matched", "unmatched")).Inc()
	case tweak.StepThen:
		c.actionsTotal.WithLabelValues(s.Path, s.Label, outcome(s, "ok", "ok")).Inc()
	case tweak.StepCase:
		c.evaluationsTotal.WithLabelValues(s.Path, outcome(s, "changed", "unchanged")).Inc()
		c.evaluationDuration.WithLabelValues(s.Path).Observe(s.Duration.Seconds())
	}
}

func outcome(s tweak.Step, ifTrue, ifFalse string) string {
	switch {
	case s.Err != nil:
		return "error"
	case s.Result:
		return ifTrue
	default:
		return ifFalse
	}
}
