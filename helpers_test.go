// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// pt is a shorthand for ls.Pt.
func pt(id string, pin int) ls.ConnectionPoint { return ls.Pt(ls.ElementID(id), pin) }

// wire returns a conductor joining a and b.
func wire(id string, a, b ls.ConnectionPoint) ls.Conductor { return ls.Wire(ls.ElementID(id), a, b) }

// topo builds a topology from elements and conductors.
func topo(t testing.TB, es []ls.Element, cs ...ls.Conductor) *ls.Topology {
	t.Helper()
	tp := ls.NewTopology()
	for _, e := range es {
		require.NoError(t, tp.AddElement(e))
	}
	for _, c := range cs {
		require.NoError(t, tp.AddConductor(c))
	}
	return tp
}

// metricValue returns the value of a counter or gauge registered with reg.
func metricValue(t testing.TB, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
		return sum
	}
	return 0
}
