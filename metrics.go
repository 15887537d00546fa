// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the simulator's prometheus metrics.
//
// Metric names are fixed: to register several simulators on the same
// registry, wrap it with prometheus.WrapRegistererWith and a distinct label.
//
type Metrics struct {
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	Rebuilds        prometheus.Counter
	Cycles          prometheus.Counter
	RejectedChanges prometheus.Counter
	Nodes           prometheus.Gauge
	Version         prometheus.Gauge
	Results         *prometheus.CounterVec
}

// NewMetrics creates the simulator metrics and registers them with reg.
// A nil reg creates unregistered metrics.
//
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "logicsim_cache_hits_total",
			Help: "Node value lookups served from the memoization cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "logicsim_cache_misses_total",
			Help: "Node evaluations not served from the memoization cache",
		}),
		Rebuilds: f.NewCounter(prometheus.CounterOpts{
			Name: "logicsim_node_rebuilds_total",
			Help: "Number of node partition rebuilds",
		}),
		Cycles: f.NewCounter(prometheus.CounterOpts{
			Name: "logicsim_unresolved_cycles_total",
			Help: "Feedback loops resolved to error",
		}),
		RejectedChanges: f.NewCounter(prometheus.CounterOpts{
			Name: "logicsim_rejected_topology_changes_total",
			Help: "Topology changes rejected as invalid",
		}),
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "logicsim_nodes",
			Help: "Number of nodes in the current partition",
		}),
		Version: f.NewGauge(prometheus.GaugeOpts{
			Name: "logicsim_topology_version",
			Help: "Current topology version",
		}),
		Results: f.NewCounterVec(prometheus.CounterOpts{
			Name: "logicsim_query_results_total",
			Help: "Query results by logic value",
		}, []string{"value"}),
	}
}

func (m *Metrics) result(v Value) {
	m.Results.WithLabelValues(v.String()).Inc()
}
