// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sync"

	"github.com/pkg/errors"
)

// A Chip is a BlackBox whose function is computed by simulating a
// sub-circuit. Its input pins are input elements of the sub-circuit and its
// output pins are output elements. Pin names are the element ids.
//
// A chip can be used by several elements and simulators; evaluations are
// serialized.
//
type Chip struct {
	name string
	ins  []ElementID
	outs []ElementID
	inN  []string
	outN []string

	mu  sync.Mutex
	eng *Engine
}

// NewChip packages topology t into a chip. inputs must name input elements
// of t and outputs must name output elements of t. The chip takes ownership
// of t.
//
// An Xor chip could be created like this:
//
//	t, _ := logicsim.NewBuilder().
//		Inputs("a", "b").
//		Gate("nandAB", logicsim.Nand, "a=a.out, b=b.out").
//		Gate("w0", logicsim.Nand, "a=a.out, b=nandAB.out").
//		Gate("w1", logicsim.Nand, "a=b.out, b=nandAB.out").
//		Gate("nand", logicsim.Nand, "a=w0.out, b=w1.out").
//		Output("out", "nand.out").
//		Topology()
//	xor, err := logicsim.NewChip("XOR", t, []logicsim.ElementID{"a", "b"}, []logicsim.ElementID{"out"})
//
func NewChip(name string, t *Topology, inputs, outputs []ElementID) (*Chip, error) {
	if len(outputs) == 0 {
		return nil, errors.Errorf("chip %s: no outputs", name)
	}
	c := &Chip{name: name, ins: inputs, outs: outputs}
	seen := make(map[ElementID]bool)
	for _, id := range inputs {
		if err := checkPin(t, id, KindInput, seen); err != nil {
			return nil, errors.Wrapf(err, "chip %s", name)
		}
		c.inN = append(c.inN, string(id))
	}
	for _, id := range outputs {
		if err := checkPin(t, id, KindOutput, seen); err != nil {
			return nil, errors.Wrapf(err, "chip %s", name)
		}
		c.outN = append(c.outN, string(id))
	}
	// chip inputs always follow the outer node, so the default is never
	// observed once the chip is evaluated.
	eng, err := NewEngine(t, Floating, nil, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "chip %s", name)
	}
	c.eng = eng
	return c, nil
}

func checkPin(t *Topology, id ElementID, k Kind, seen map[ElementID]bool) error {
	e, ok := t.Element(id)
	if !ok {
		return errors.Wrapf(ErrUnknownElement, "%s", id)
	}
	if e.Kind != k {
		return topologyErrorf("pin %s: expected %v, got %v", id, k, e.Kind)
	}
	if seen[id] {
		return topologyErrorf("pin %s listed twice", id)
	}
	seen[id] = true
	return nil
}

// Name implements BlackBox.
func (c *Chip) Name() string { return c.name }

// Inputs implements BlackBox.
func (c *Chip) Inputs() []string { return c.inN }

// Outputs implements BlackBox.
func (c *Chip) Outputs() []string { return c.outN }

// Eval implements BlackBox. Pending inputs are seen as Error by the
// sub-circuit, and unresolved feedback loops in the sub-circuit yield Error.
//
func (c *Chip) Eval(in []Value) []Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, id := range c.ins {
		v := Floating
		if i < len(in) {
			v = in[i]
		}
		if v == Pending {
			v = Error
		}
		// ids were checked by NewChip.
		_, _ = c.eng.SetInput(id, v)
	}
	out := make([]Value, len(c.outs))
	for i, id := range c.outs {
		v, err := c.eng.Value(ConnectionPoint{id, 0})
		if err != nil {
			v = Error
		}
		out[i] = v
	}
	return out
}

// A FuncBox is a BlackBox backed by a Go function on digital levels. If any
// input is non-digital, all outputs are the worst non-digital input value.
//
type FuncBox struct {
	name string
	ins  []string
	outs []string
	fn   func(in []bool) []bool
}

// NewFuncBox returns a new FuncBox. fn receives one level per input and must
// return one level per output.
//
func NewFuncBox(name string, inputs, outputs []string, fn func(in []bool) []bool) *FuncBox {
	return &FuncBox{name, inputs, outputs, fn}
}

// Name implements BlackBox.
func (f *FuncBox) Name() string { return f.name }

// Inputs implements BlackBox.
func (f *FuncBox) Inputs() []string { return f.ins }

// Outputs implements BlackBox.
func (f *FuncBox) Outputs() []string { return f.outs }

// Eval implements BlackBox.
func (f *FuncBox) Eval(in []Value) []Value {
	out := make([]Value, len(f.outs))
	ls, bad, ok := levels(in, len(f.ins))
	if !ok {
		return fill(out, bad)
	}
	r := f.fn(ls)
	for i := range out {
		if i < len(r) {
			out[i] = Bool(r[i])
		} else {
			out[i] = Error
		}
	}
	return out
}

// levels returns the levels of the first n values of in, missing values being
// Floating. If any of them is non-digital, ok is false and bad is the worst
// non-digital value.
func levels(in []Value, n int) (ls []bool, bad Value, ok bool) {
	ls = make([]bool, n)
	ok = true
	for i := range ls {
		v := Floating
		if i < len(in) {
			v = in[i]
		}
		l, digital := v.Level()
		switch {
		case digital:
			ls[i] = l
		case ok:
			bad, ok = v, false
		default:
			bad = worst(bad, v)
		}
	}
	return ls, bad, ok
}

func fill(vs []Value, v Value) []Value {
	for i := range vs {
		vs[i] = v
	}
	return vs
}
