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

func xorChip(t *testing.T) *ls.Chip {
	t.Helper()
	tp, err := ls.NewBuilder().
		Inputs("a", "b").
		Gate("nandAB", ls.Nand, "a=a.out, b=b.out").
		Gate("w0", ls.Nand, "a=a.out, b=nandAB.out").
		Gate("w1", ls.Nand, "a=b.out, b=nandAB.out").
		Gate("nand", ls.Nand, "a=w0.out, b=w1.out").
		Output("out", "nand.out").
		Topology()
	require.NoError(t, err)
	c, err := ls.NewChip("XOR", tp, []ls.ElementID{"a", "b"}, []ls.ElementID{"out"})
	require.NoError(t, err)
	return c
}

func TestChip(t *testing.T) {
	xor := xorChip(t)
	assert.Equal(t, "XOR", xor.Name())
	assert.Equal(t, []string{"a", "b"}, xor.Inputs())
	assert.Equal(t, []string{"out"}, xor.Outputs())

	for i := 0; i < 4; i++ {
		a, b := ls.Bool(i&2 != 0), ls.Bool(i&1 != 0)
		assert.Equal(t, []ls.Value{ls.Evaluate(ls.Xor, a, b)}, xor.Eval([]ls.Value{a, b}))
	}
	// a=0 makes nandAB and w0 1, so out = not(w1) = not(not b)
	assert.Equal(t, []ls.Value{ls.Error}, xor.Eval([]ls.Value{ls.Zero, ls.Error}))
	assert.Equal(t, []ls.Value{ls.Error}, xor.Eval([]ls.Value{ls.Zero, ls.Pending}))
	assert.Equal(t, []ls.Value{ls.Floating}, xor.Eval([]ls.Value{ls.One}))
}

func TestChip_inCircuit(t *testing.T) {
	xor := xorChip(t)
	tp, err := ls.NewBuilder().
		Inputs("x", "y").
		Box("u0", xor, "a=x.out, b=y.out").
		Box("u1", xor, "a=u0.out, b=y.out").
		Output("o0", "u0.out").
		Output("o1", "u1.out").
		Topology()
	require.NoError(t, err)
	s := newSim(t, tp)
	for i := 0; i < 4; i++ {
		x, y := ls.Bool(i&2 != 0), ls.Bool(i&1 != 0)
		require.NoError(t, s.SetInputValue("x", x))
		require.NoError(t, s.SetInputValue("y", y))
		assert.Equal(t, ls.Evaluate(ls.Xor, x, y), output(t, s, "o0"))
		assert.Equal(t, x, output(t, s, "o1"))
	}
}

func TestChip_loop(t *testing.T) {
	tp, err := ls.NewBuilder().
		Inputs("en").
		Gate("g", ls.Nand, "a=en.out, b=g.out").
		Output("out", "g.out").
		Topology()
	require.NoError(t, err)
	c, err := ls.NewChip("osc", tp, []ls.ElementID{"en"}, []ls.ElementID{"out"})
	require.NoError(t, err)
	assert.Equal(t, []ls.Value{ls.One}, c.Eval([]ls.Value{ls.Zero}))
	assert.Equal(t, []ls.Value{ls.Error}, c.Eval([]ls.Value{ls.One}))
}

func TestNewChip_errors(t *testing.T) {
	tp := gateTopology(t, ls.And)
	td := []struct {
		ins, outs []ls.ElementID
		cause     error
	}{
		{[]ls.ElementID{"a", "b"}, nil, nil},
		{[]ls.ElementID{"a", "z"}, []ls.ElementID{"o"}, ls.ErrUnknownElement},
		{[]ls.ElementID{"a", "g"}, []ls.ElementID{"o"}, ls.ErrInvalidTopology},
		{[]ls.ElementID{"a"}, []ls.ElementID{"b"}, ls.ErrInvalidTopology},
		{[]ls.ElementID{"a", "a"}, []ls.ElementID{"o"}, ls.ErrInvalidTopology},
	}
	for _, d := range td {
		c, err := ls.NewChip("c", tp.Clone(), d.ins, d.outs)
		assert.Nil(t, c)
		require.Error(t, err)
		if d.cause != nil {
			assert.Equal(t, d.cause, errors.Cause(err), "%v", err)
		}
	}
}

func TestFuncBox(t *testing.T) {
	mux := ls.NewFuncBox("mux", []string{"a", "b", "sel"}, []string{"out"}, func(in []bool) []bool {
		if in[2] {
			return []bool{in[1]}
		}
		return []bool{in[0]}
	})
	assert.Equal(t, []ls.Value{ls.One}, mux.Eval([]ls.Value{ls.Zero, ls.One, ls.One}))
	assert.Equal(t, []ls.Value{ls.Zero}, mux.Eval([]ls.Value{ls.Zero, ls.One, ls.PullDown}))
	assert.Equal(t, []ls.Value{ls.Floating}, mux.Eval([]ls.Value{ls.Zero, ls.One}))
	assert.Equal(t, []ls.Value{ls.Error}, mux.Eval([]ls.Value{ls.Pending, ls.Floating, ls.Error}))

	short := ls.NewFuncBox("short", []string{"a"}, []string{"x", "y"}, func(in []bool) []bool { return in })
	assert.Equal(t, []ls.Value{ls.One, ls.Error}, short.Eval([]ls.Value{ls.One}))
}
