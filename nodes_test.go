// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a and b inputs, gate g with both inputs joined to a through a chain of two
// conductors.
func chainTopology(t *testing.T) *ls.Topology {
	return topo(t,
		[]ls.Element{ls.NewInput("a"), ls.NewInput("b"), ls.NewGate("g", ls.And)},
		wire("w1", pt("a", 0), pt("g", 0)),
		wire("w2", pt("w1", 1), pt("g", 1)),
	)
}

func TestRebuildNodes(t *testing.T) {
	p, err := ls.RebuildNodes(chainTopology(t))
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())

	n, ok := p.NodeOf(pt("g", 1))
	require.True(t, ok)
	node := p.Node(n)
	assert.Equal(t, []ls.ConnectionPoint{
		pt("a", 0), pt("g", 0), pt("g", 1),
		pt("w1", 0), pt("w1", 1), pt("w2", 0), pt("w2", 1),
	}, node.Members)
	assert.Equal(t, []ls.ConnectionPoint{pt("a", 0)}, node.Drivers)

	assert.True(t, p.SameNode(pt("a", 0), pt("w2", 1)))
	assert.False(t, p.SameNode(pt("a", 0), pt("b", 0)))
	assert.False(t, p.SameNode(pt("a", 0), pt("g", 2)))
	assert.False(t, p.SameNode(pt("a", 0), pt("nope", 0)))

	out, ok := p.NodeOf(pt("g", 2))
	require.True(t, ok)
	assert.Equal(t, []ls.ConnectionPoint{pt("g", 2)}, p.Node(out).Members)
	assert.Equal(t, []ls.ConnectionPoint{pt("g", 2)}, p.Node(out).Drivers)
}

func TestRebuildNodes_dangling(t *testing.T) {
	tp := topo(t, []ls.Element{ls.NewInput("a")}, wire("w", pt("a", 0), ls.ConnectionPoint{}))
	p, err := ls.RebuildNodes(tp)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.SameNode(pt("a", 0), pt("w", 1)))
}

func TestRebuildNodes_invalid(t *testing.T) {
	for _, c := range []ls.Conductor{
		wire("w", pt("a", 0), pt("nope", 0)),
		wire("w", pt("a", 1), pt("g", 0)),
		wire("w", pt("g", 3), ls.ConnectionPoint{}),
	} {
		tp := topo(t, []ls.Element{ls.NewInput("a"), ls.NewGate("g", ls.Or)}, c)
		p, err := ls.RebuildNodes(tp)
		assert.Nil(t, p)
		assert.True(t, ls.IsInvalidTopology(err), "%v: %v", c, err)
	}
}

func TestPartition_roundTrip(t *testing.T) {
	tp := chainTopology(t)
	p0, err := ls.RebuildNodes(tp)
	require.NoError(t, err)

	w2, ok := tp.Conductor("w2")
	require.True(t, ok)
	require.True(t, tp.Remove("w2"))
	p1, err := ls.RebuildNodes(tp)
	require.NoError(t, err)
	d := p1.Diff(p0)
	assert.False(t, d.Empty())
	// the big node split into {a, g.a, w1} and {g.b}
	assert.Len(t, d.Removed, 1)
	assert.Len(t, d.Added, 2)
	assert.False(t, p1.SameNode(pt("g", 0), pt("g", 1)))

	require.NoError(t, tp.AddConductor(w2))
	p2, err := ls.RebuildNodes(tp)
	require.NoError(t, err)
	assert.True(t, p2.Diff(p0).Empty())
	assert.Equal(t, p0.Keys(), p2.Keys())
	k0, _ := p0.Key(pt("g", 1))
	k2, _ := p2.Key(pt("g", 1))
	assert.Equal(t, k0, k2)
}

func TestPartition_Diff_nil(t *testing.T) {
	p, err := ls.RebuildNodes(chainTopology(t))
	require.NoError(t, err)
	d := p.Diff(nil)
	assert.Len(t, d.Added, p.Len())
	assert.Empty(t, d.Removed)
}
