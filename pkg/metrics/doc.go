// Package metrics exports tweak evaluations as Prometheus metrics.
//
// A Collector is registered as an observer on the root case:
//
//	registry := prometheus.NewRegistry()
//	collector := metrics.NewCollector(metrics.DefaultConfig(), registry)
//	c := tweak.New[Order]("orders", tweak.WithObserver(collector))
//
// Series are labelled with the slash-joined case path and the free-form
// condition and action labels, so labels should stay low in cardinality.
package metrics
