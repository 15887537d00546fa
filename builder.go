// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/db47h/logicsim/internal/pinref"
	"github.com/pkg/errors"
)

// A Builder assembles a Topology using pin names.
//
// Pin references have the form "element.pin" where pin is a pin name ("a",
// "b", "in", "out", or a black box pin name) or number. Conductors created by
// the builder get ids "__w0", "__w1", etc.
//
// A half adder can be built like this:
//
//	t, err := logicsim.NewBuilder().
//		Inputs("a", "b").
//		Gate("xor", logicsim.Xor, "a=a.out, b=b.out").
//		Gate("and", logicsim.And, "a=a.out, b=b.out").
//		Output("s", "xor.out").
//		Output("c", "and.out").
//		Topology()
//
// Errors are sticky: the first one is returned by Topology.
//
type Builder struct {
	t     *Topology
	wires [][2]pinref.Ref
	err   error
}

// NewBuilder returns a new Builder.
//
func NewBuilder() *Builder {
	return &Builder{t: NewTopology()}
}

func (b *Builder) add(e Element, conns string) *Builder {
	if b.err != nil {
		return b
	}
	if b.err = b.t.AddElement(e); b.err != nil {
		return b
	}
	cs, err := pinref.ParseConnections(conns)
	if err != nil {
		b.err = errors.Wrapf(ErrInvalidTopology, "element %s: %v", e.ID, err)
		return b
	}
	for _, c := range cs {
		b.wires = append(b.wires, [2]pinref.Ref{{Element: string(e.ID), Pin: c.Pin}, c.Ref})
	}
	return b
}

// Inputs adds input elements.
//
func (b *Builder) Inputs(ids ...ElementID) *Builder {
	for _, id := range ids {
		b.add(NewInput(id), "")
	}
	return b
}

// Output adds an output element wired to the pin referenced by from. An empty
// from leaves the output unconnected.
//
func (b *Builder) Output(id ElementID, from string) *Builder {
	if from == "" {
		return b.add(NewOutput(id), "")
	}
	return b.add(NewOutput(id), pinIn+"="+from)
}

// Gate adds a gate. conns is a connection list like "a=in1.out, b=g2.out"
// wiring the gate's pins to other pins.
//
func (b *Builder) Gate(id ElementID, g GateKind, conns string) *Builder {
	return b.add(NewGate(id, g), conns)
}

// Box adds a black box. conns is a connection list as for Gate, using the
// box's pin names.
//
func (b *Builder) Box(id ElementID, box BlackBox, conns string) *Builder {
	return b.add(NewBlackBox(id, box), conns)
}

// Wire joins two pins with a conductor.
//
func (b *Builder) Wire(from, to string) *Builder {
	if b.err != nil {
		return b
	}
	r0, err := pinref.Parse(from)
	if err != nil {
		b.err = errors.Wrap(ErrInvalidTopology, err.Error())
		return b
	}
	r1, err := pinref.Parse(to)
	if err != nil {
		b.err = errors.Wrap(ErrInvalidTopology, err.Error())
		return b
	}
	b.wires = append(b.wires, [2]pinref.Ref{r0, r1})
	return b
}

func (b *Builder) resolve(r pinref.Ref) (ConnectionPoint, error) {
	e, ok := b.t.Element(ElementID(r.Element))
	if !ok {
		return ConnectionPoint{}, topologyErrorf("unknown element in %v", r)
	}
	pin, ok := e.PinIndex(r.Pin)
	if !ok {
		return ConnectionPoint{}, topologyErrorf("unknown pin in %v", r)
	}
	return ConnectionPoint{e.ID, pin}, nil
}

// Topology resolves all pin references and returns the resulting topology.
//
func (b *Builder) Topology() (*Topology, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := b.t.Clone()
	n := 0
	for _, w := range b.wires {
		a, err := b.resolve(w[0])
		if err != nil {
			return nil, err
		}
		c, err := b.resolve(w[1])
		if err != nil {
			return nil, err
		}
		var id ElementID
		for {
			id = ElementID("__w" + strconv.Itoa(n))
			n++
			if _, taken := t.Element(id); !taken {
				break
			}
		}
		if err := t.AddConductor(Wire(id, a, c)); err != nil {
			return nil, err
		}
	}
	return t, nil
}
