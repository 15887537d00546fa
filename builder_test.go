// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	tp, err := ls.NewBuilder().
		Inputs("__w0", "b").
		Gate("g", ls.Or, "a=__w0.out, b=b.0").
		Output("o", "g.2").
		Wire("g.a", "b.out").
		Topology()
	require.NoError(t, err)

	assert.Len(t, tp.Elements(), 4)
	cs := tp.Conductors()
	require.Len(t, cs, 4)
	// __w0 is taken by an input
	assert.Equal(t, []ls.Conductor{
		wire("__w1", pt("g", 0), pt("__w0", 0)),
		wire("__w2", pt("g", 1), pt("b", 0)),
		wire("__w3", pt("o", 0), pt("g", 2)),
		wire("__w4", pt("g", 0), pt("b", 0)),
	}, cs)
}

func TestBuilder_errors(t *testing.T) {
	td := []struct {
		name string
		b    *ls.Builder
	}{
		{"unknown element", ls.NewBuilder().Inputs("a").Output("o", "x.out")},
		{"unknown pin", ls.NewBuilder().Inputs("a").Gate("g", ls.And, "c=a.out")},
		{"pin out of range", ls.NewBuilder().Inputs("a").Gate("g", ls.And, "a=a.1")},
		{"syntax", ls.NewBuilder().Inputs("a").Gate("g", ls.And, "a=a.out b=a.out")},
		{"connected twice", ls.NewBuilder().Inputs("a").Gate("g", ls.And, "a=a.out, a=a.out")},
		{"bad wire", ls.NewBuilder().Inputs("a").Wire("a.out", "a")},
		{"duplicate id", ls.NewBuilder().Inputs("a").Gate("a", ls.And, "")},
		{"bad gate", ls.NewBuilder().Gate("g", ls.GateKind(0), "")},
	}
	for _, d := range td {
		tp, err := d.b.Topology()
		assert.Nil(t, tp, d.name)
		assert.True(t, ls.IsInvalidTopology(err), "%s: %v", d.name, err)
	}
}

func TestBuilder_sticky(t *testing.T) {
	// identical re-additions are allowed
	b := ls.NewBuilder().Inputs("a", "a").Gate("a", ls.Not, "").Inputs("b")
	_, err := b.Topology()
	require.Error(t, err)
	assert.Equal(t, ls.ErrInvalidTopology, errors.Cause(err))
	assert.Contains(t, err.Error(), "duplicate element id a")
}
