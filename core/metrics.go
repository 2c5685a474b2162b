// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsNamespace is the namespace of all metrics.
const metricsNamespace = "arbor"

// Metrics are the Prometheus metrics of one [RenderRoot], registered on
// their own [prometheus.Registry] so that several roots can coexist.
// Expose Registry through promhttp or gather it in tests.
type Metrics struct {
	Registry *prometheus.Registry

	// PassRuns counts the runs of each pass.
	// Labels: pass (register, update, layout, compose, paint, access, anim, event)
	PassRuns *prometheus.CounterVec

	// WidgetVisits counts the widgets each pass did its work on.
	// Labels: pass
	WidgetVisits *prometheus.CounterVec

	// LayoutCacheHits counts child measurements answered from the
	// layout cache.
	LayoutCacheHits prometheus.Counter

	// LayoutCacheMisses counts child measurements that ran Layout.
	LayoutCacheMisses prometheus.Counter

	// Nodes is the number of widgets in the tree.
	Nodes prometheus.Gauge
}

// NewMetrics returns new [Metrics] on a new registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		PassRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pass_runs_total",
			Help:      "Number of runs of each pass.",
		}, []string{"pass"}),
		WidgetVisits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "widget_visits_total",
			Help:      "Number of widgets each pass did its work on.",
		}, []string{"pass"}),
		LayoutCacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "layout_cache_hits_total",
			Help:      "Number of child measurements answered from the layout cache.",
		}),
		LayoutCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "layout_cache_misses_total",
			Help:      "Number of child measurements that ran Layout.",
		}),
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "nodes",
			Help:      "Number of widgets in the tree.",
		}),
	}
}

// pass names used as metric labels.
const (
	passRegister = "register"
	passEvent    = "event"
	passUpdate   = "update"
	passAnim     = "anim"
	passLayout   = "layout"
	passCompose  = "compose"
	passPaint    = "paint"
	passAccess   = "access"
)

func (m *Metrics) passRun(pass string) {
	m.PassRuns.WithLabelValues(pass).Inc()
}

func (m *Metrics) visit(pass string) {
	m.WidgetVisits.WithLabelValues(pass).Inc()
}
