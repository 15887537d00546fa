// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/logicsim"
	"github.com/stretchr/testify/require"
)

// maxExhaustive is the maximum input count for which all input combinations
// are tried. Larger boxes get random testing.
const maxExhaustive = 12

func inputID(i int) logicsim.ElementID { return logicsim.ElementID("in" + strconv.Itoa(i)) }

func outputID(prefix string, i int) logicsim.ElementID {
	return logicsim.ElementID(prefix + strconv.Itoa(i))
}

// Harness wires a set of black boxes to shared inputs so that their outputs
// can be compared.
//
type Harness struct {
	Sim   *logicsim.Simulator
	ins   int
	boxes []logicsim.BlackBox
}

// NewHarness creates a circuit where every box gets its input pins wired to
// common input elements in0..in<n-1>, and its outputs wired to output
// elements b<box>o<pin>.
//
func NewHarness(t testing.TB, boxes ...logicsim.BlackBox) *Harness {
	t.Helper()
	require.NotEmpty(t, boxes)
	n := len(boxes[0].Inputs())
	topo := logicsim.NewTopology()
	for i := 0; i < n; i++ {
		require.NoError(t, topo.AddElement(logicsim.NewInput(inputID(i))))
	}
	w := 0
	wire := func(a, b logicsim.ConnectionPoint) {
		require.NoError(t, topo.AddConductor(logicsim.Wire(logicsim.ElementID("w"+strconv.Itoa(w)), a, b)))
		w++
	}
	for bi, box := range boxes {
		require.Len(t, box.Inputs(), n, "box %s", box.Name())
		id := logicsim.ElementID("box" + strconv.Itoa(bi))
		require.NoError(t, topo.AddElement(logicsim.NewBlackBox(id, box)))
		for i := 0; i < n; i++ {
			wire(logicsim.Pt(inputID(i), 0), logicsim.Pt(id, i))
		}
		for o := range box.Outputs() {
			oid := outputID("b"+strconv.Itoa(bi)+"o", o)
			require.NoError(t, topo.AddElement(logicsim.NewOutput(oid)))
			wire(logicsim.Pt(id, n+o), logicsim.Pt(oid, 0))
		}
	}
	sim, err := logicsim.New(topo, logicsim.DefaultConfig())
	require.NoError(t, err)
	return &Harness{Sim: sim, ins: n, boxes: boxes}
}

// Set sets all inputs.
//
func (h *Harness) Set(t testing.TB, in []bool) {
	t.Helper()
	for i, v := range in {
		require.NoError(t, h.Sim.SetInputValue(inputID(i), logicsim.Bool(v)))
	}
}

// Outputs returns the outputs of box i.
//
func (h *Harness) Outputs(t testing.TB, i int) []logicsim.Value {
	t.Helper()
	r := make([]logicsim.Value, len(h.boxes[i].Outputs()))
	for o := range r {
		v, err := h.Sim.GetOutputValue(outputID("b"+strconv.Itoa(i)+"o", o))
		require.NoError(t, err)
		r[o] = v
	}
	return r
}

func inputString(names []string, in []bool) string {
	var b strings.Builder
	for i, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(logicsim.Bool(in[i]).String())
	}
	return b.String()
}

// CompareBox takes two black boxes and compares their outputs given the same
// inputs. Both boxes must have the same input/output interface.
//
// All input combinations are tried for boxes with up to 12 inputs. Larger
// boxes are tested with all inputs at 0, all at 1, and 4096 random
// combinations.
//
func CompareBox(t testing.TB, box, ref logicsim.BlackBox) {
	t.Helper()
	require.Equal(t, ref.Inputs(), box.Inputs(), "input pins")
	require.Equal(t, ref.Outputs(), box.Outputs(), "output pins")

	h := NewHarness(t, box, ref)
	in := make([]bool, h.ins)
	check := func() {
		t.Helper()
		h.Set(t, in)
		got, exp := h.Outputs(t, 0), h.Outputs(t, 1)
		for o := range got {
			if got[o] != exp[o] {
				t.Fatalf("%s: expected %s => %s=%v, got %v", box.Name(),
					inputString(box.Inputs(), in), box.Outputs()[o], exp[o], got[o])
			}
		}
	}

	if h.ins <= maxExhaustive {
		for i := 0; i < 1<<uint(h.ins); i++ {
			for bit := range in {
				in[bit] = i&(1<<uint(bit)) != 0
			}
			check()
		}
		return
	}

	check()
	for i := range in {
		in[i] = true
	}
	check()
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1<<maxExhaustive; i++ {
		for bit := range in {
			in[bit] = rnd.Int63()&1 != 0
		}
		check()
	}
}

// TruthTable checks box against fn for all input combinations (up to 12
// inputs). fn receives one level per input and returns one level per
// output.
//
func TruthTable(t testing.TB, box logicsim.BlackBox, fn func(in []bool) []bool) {
	t.Helper()
	CompareBox(t, box, logicsim.NewFuncBox(box.Name()+"Ref", box.Inputs(), box.Outputs(), fn))
}
