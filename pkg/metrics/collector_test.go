package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoer/tweak/pkg/tweak"
)

type gauge struct {
	level int
}

func newGaugeCase(c *Collector) *tweak.Case[gauge] {
	return tweak.New[gauge]("gauge", tweak.WithObserver(c)).
		When("high", func(g *gauge) (bool, error) { return g.level > 10, nil }).
		Then("clamp", func(g *gauge) error {
			g.level = 10
			return nil
		}).
		When("negative", func(g *gauge) (bool, error) { return g.level < 0, nil }).
		ThenCase("recover", func(c *tweak.Case[gauge]) *tweak.Case[gauge] {
			return c.
				When("below floor", func(g *gauge) (bool, error) { return g.level < -100, nil }).
				Then("fail", func(*gauge) error { return errors.New("below floor") }).
				When("otherwise", func(*gauge) (bool, error) { return true, nil }).
				Then("reset", func(g *gauge) error {
					g.level = 0
					return nil
				})
		})
}

func TestCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(DefaultConfig(), registry)
	c := newGaugeCase(collector)

	for _, level := range []int{20, 5, -5} {
		g := &gauge{level: level}
		_, err := c.Run(g)
		require.NoError(t, err)
	}
	_, err := c.Run(&gauge{level: -200})
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.evaluationsTotal.WithLabelValues("gauge", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.evaluationsTotal.WithLabelValues("gauge", "unchanged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.evaluationsTotal.WithLabelValues("gauge", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.evaluationsTotal.WithLabelValues("gauge/recover", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.evaluationsTotal.WithLabelValues("gauge/recover", "error")))

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.conditionsTotal.WithLabelValues("gauge", "high", "matched")))
	assert.Equal(t, 3.0, testutil.ToFloat64(collector.conditionsTotal.WithLabelValues("gauge", "high", "unmatched")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.conditionsTotal.WithLabelValues("gauge", "negative", "matched")))

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.actionsTotal.WithLabelValues("gauge", "clamp", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.actionsTotal.WithLabelValues("gauge/recover", "reset", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.actionsTotal.WithLabelValues("gauge/recover", "fail", "error")))

	assert.Equal(t, 2, testutil.CollectAndCount(collector.evaluationDuration), "One series per case path")
}

func TestCollector_Config(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(Config{Namespace: "app", Subsystem: "rules"}, registry)

	collector.Observe(tweak.Step{Kind: tweak.StepCase, Path: "root", Label: "root", Result: true})

	families, err := registry.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "app_rules_evaluations_total")
	assert.Contains(t, names, "app_rules_evaluation_duration_seconds")
}

func TestCollector_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewCollector(DefaultConfig(), registry)

	assert.Panics(t, func() { NewCollector(DefaultConfig(), registry) })
}
